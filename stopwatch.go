package funcz

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Stopwatch measures elapsed time from its creation or last Reset.
type Stopwatch struct {
	clock clockz.Clock
	start time.Time
	mu    sync.Mutex
}

// NewStopwatch starts a stopwatch on the real clock.
func NewStopwatch() *Stopwatch {
	return NewStopwatchWithClock(clockz.RealClock)
}

// NewStopwatchWithClock starts a stopwatch on clock.
func NewStopwatchWithClock(clock clockz.Clock) *Stopwatch {
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the time since the stopwatch started.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Since(s.start)
}

// Reset restarts the stopwatch and returns the time elapsed before the reset.
func (s *Stopwatch) Reset() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	elapsed := now.Sub(s.start)
	s.start = now
	return elapsed
}
