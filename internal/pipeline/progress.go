package pipeline

import (
	"sync"
	"time"
)

// activeStageCredit is the partial completion credited to the stage
// currently running, as a fraction of one stage.
const activeStageCredit = 0.5

// timeFloorCap bounds the elapsed-time progress estimate so time alone
// can never push the display into the completion range.
const timeFloorCap = 0.9

// progressEstimator blends discrete stage completion with an
// elapsed-time floor. The reported value is the max of the two,
// monotone non-decreasing, below 100 until finish() and exactly 100
// after.
type progressEstimator struct {
	mu          sync.Mutex
	totalStages int
	completed   int
	stageActive bool
	start       time.Time
	budget      time.Duration
	done        bool
	last        int
	now         func() time.Time
}

func newProgressEstimator(totalStages int, budget time.Duration, now func() time.Time) *progressEstimator {
	return &progressEstimator{
		totalStages: totalStages,
		start:       now(),
		budget:      budget,
		now:         now,
	}
}

func (e *progressEstimator) stageStarted() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stageActive = true
}

func (e *progressEstimator) stageCompleted() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stageActive = false
	if e.completed < e.totalStages {
		e.completed++
	}
}

func (e *progressEstimator) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.done = true
}

// percent returns the current displayed progress.
func (e *progressEstimator) percent() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done {
		e.last = 100
		return 100
	}

	discrete := float64(e.completed)
	if e.stageActive {
		discrete += activeStageCredit
	}
	discrete /= float64(e.totalStages)

	timeFloor := 0.0
	if e.budget > 0 {
		timeFloor = float64(e.now().Sub(e.start)) / float64(e.budget)
		if timeFloor > timeFloorCap {
			timeFloor = timeFloorCap
		}
	}

	p := discrete
	if timeFloor > p {
		p = timeFloor
	}

	value := int(p * 100)
	if value > 99 {
		value = 99
	}
	if value < e.last {
		value = e.last
	}
	e.last = value
	return value
}
