package harness

import "time"

// Clock abstracts the runner's time source so tests can pin durations.
type Clock interface {
	Now() time.Time
}

// systemClock is the production clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
