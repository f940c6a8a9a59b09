package service

import (
	"sync"
	"time"
)

// Clock reports the current time. Hook reads it when a run starts and when it
// ends to log the run's duration.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// StepClock starts at a fixed instant and moves forward by a fixed step on
// every reading, so logged durations are deterministic.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock returns a StepClock whose first reading is start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// Now returns the current reading and advances the clock by one step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
