package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances only when told to, so estimates are exact.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProgressEstimator_DiscreteSteps(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	e := newProgressEstimator(6, time.Minute, clock.now)

	assert.Equal(t, 0, e.percent())

	e.stageStarted()
	assert.Equal(t, 8, e.percent(), "half a stage of credit for the active stage")

	e.stageCompleted()
	assert.Equal(t, 16, e.percent())

	for i := 0; i < 5; i++ {
		e.stageStarted()
		e.stageCompleted()
	}
	assert.Equal(t, 99, e.percent(), "discrete completion alone never reports 100")

	e.finish()
	assert.Equal(t, 100, e.percent())
}

func TestProgressEstimator_TimeFloorWins(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	e := newProgressEstimator(6, time.Minute, clock.now)

	// No stage has completed, but half the budget has elapsed: the
	// elapsed-time floor carries the display.
	clock.advance(30 * time.Second)
	assert.Equal(t, 50, e.percent())

	// One completed stage (16%) stays below the floor.
	e.stageStarted()
	e.stageCompleted()
	assert.Equal(t, 50, e.percent())
}

func TestProgressEstimator_TimeFloorCapped(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	e := newProgressEstimator(6, time.Minute, clock.now)

	// Far past the budget: time can reach 90 but never the completion
	// range.
	clock.advance(10 * time.Minute)
	assert.Equal(t, 90, e.percent())

	clock.advance(time.Hour)
	assert.Equal(t, 90, e.percent())
}

func TestProgressEstimator_Monotone(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	e := newProgressEstimator(6, time.Minute, clock.now)

	clock.advance(30 * time.Second)
	assert.Equal(t, 50, e.percent())

	// A later sample with lower inputs must not go backwards. The clock
	// cannot rewind in practice, but a freshly completed stage dropping
	// below the previously shown value must still hold the line.
	e.stageStarted()
	e.stageCompleted()
	assert.GreaterOrEqual(t, e.percent(), 50)
}

func TestProgressEstimator_FinishIsSticky(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	e := newProgressEstimator(6, time.Minute, clock.now)

	e.finish()
	assert.Equal(t, 100, e.percent())

	clock.advance(time.Hour)
	assert.Equal(t, 100, e.percent())
}

func TestProgressEstimator_ZeroBudgetUsesDiscreteOnly(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	e := newProgressEstimator(6, 0, clock.now)

	clock.advance(time.Hour)
	assert.Equal(t, 0, e.percent())

	e.stageStarted()
	e.stageCompleted()
	assert.Equal(t, 16, e.percent())
}
