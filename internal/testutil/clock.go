// Package testutil provides deterministic helpers for harness tests.
package testutil

import (
	"sync"
	"time"
)

// ManualClock is a thread-safe time source that advances by a fixed step on
// every reading. Injected into the runner it pins per-test durations, which
// keeps console output and report timings reproducible.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManualClock creates a clock starting at a fixed epoch that advances by
// step per Now call. A zero step freezes time entirely.
func NewManualClock(step time.Duration) *ManualClock {
	return &ManualClock{
		now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		step: step,
	}
}

// Now returns the current reading, then advances the clock by the step.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// Advance moves the clock forward by d without producing a reading.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
