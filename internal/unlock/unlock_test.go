package unlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTracker_ViewLifecycle(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	viewed, err := tracker.HasViewed(ctx, "report-1")
	require.NoError(t, err)
	assert.False(t, viewed)

	require.NoError(t, tracker.MarkViewed(ctx, "report-1"))
	// Idempotent re-mark.
	require.NoError(t, tracker.MarkViewed(ctx, "report-1"))

	viewed, err = tracker.HasViewed(ctx, "report-1")
	require.NoError(t, err)
	assert.True(t, viewed)
}

func TestMemoryTracker_UnlockLifecycle(t *testing.T) {
	tracker := NewMemoryTracker()
	ctx := context.Background()

	unlocked, err := tracker.IsUnlocked(ctx, "report-1")
	require.NoError(t, err)
	assert.False(t, unlocked)

	require.NoError(t, tracker.Unlock(ctx, "report-1"))
	unlocked, err = tracker.IsUnlocked(ctx, "report-1")
	require.NoError(t, err)
	assert.True(t, unlocked)

	// Separate reports stay independent.
	unlocked, err = tracker.IsUnlocked(ctx, "report-2")
	require.NoError(t, err)
	assert.False(t, unlocked)
}
