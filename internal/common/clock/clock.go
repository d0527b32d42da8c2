package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/minefest/internal/common/clock Clock

// Clock supplies wall-clock time for timestamps and for deriving tick deltas
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Stopwatch turns successive clock readings into elapsed durations
type Stopwatch struct {
	clock Clock
	last  time.Time
}

// NewStopwatch starts a stopwatch at the clock's current time
func NewStopwatch(c Clock) *Stopwatch {
	return &Stopwatch{
		clock: c,
		last:  c.Now(),
	}
}

// Lap returns the time since the previous lap and restarts the stopwatch.
// A clock that goes backwards yields zero.
func (s *Stopwatch) Lap() time.Duration {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now

	if elapsed < 0 {
		return 0
	}
	return elapsed
}
