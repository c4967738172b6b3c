package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLock_AcquireRelease(t *testing.T) {
	l := NewMemoryLock(time.Minute)
	ctx := context.Background()

	ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "held lock must reject a second acquirer")

	require.NoError(t, l.Release(ctx))

	ok, err = l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "released lock must be reacquirable")
}

func TestMemoryLock_StaleLockIsForceCleared(t *testing.T) {
	l := NewMemoryLock(2 * time.Minute)
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	ctx := context.Background()

	ok, _ := l.TryAcquire(ctx)
	require.True(t, ok)

	// Within the staleness window the holder keeps the lock.
	current = current.Add(time.Minute)
	ok, _ = l.TryAcquire(ctx)
	assert.False(t, ok)

	// Past the window the lock counts as abandoned.
	current = current.Add(90 * time.Second)
	ok, _ = l.TryAcquire(ctx)
	assert.True(t, ok, "stale lock must be cleared and reacquired")
}

func TestMemoryLock_ConcurrentAcquireSingleWinner(t *testing.T) {
	l := NewMemoryLock(time.Minute)
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.TryAcquire(ctx); ok {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent acquirer may win")
}

func TestMemoryLock_ReleaseUnheldIsNoop(t *testing.T) {
	l := NewMemoryLock(time.Minute)
	assert.NoError(t, l.Release(context.Background()))
}
