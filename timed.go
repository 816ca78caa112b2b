package funcz

import (
	"fmt"
	"strconv"
	"time"

	"github.com/zoobzio/clockz"
)

// Timed pairs a value with the time it took to compute.
type Timed[T any] struct {
	value   T
	elapsed time.Duration
}

// NewTimed wraps v with elapsed.
func NewTimed[T any](v T, elapsed time.Duration) Timed[T] {
	return Timed[T]{value: v, elapsed: elapsed}
}

// Get returns the value.
func (t Timed[T]) Get() T {
	return t.value
}

// Elapsed returns the measured duration.
func (t Timed[T]) Elapsed() time.Duration {
	return t.elapsed
}

// String renders the value with its duration in milliseconds, e.g.
// "42 (1000ms)".
func (t Timed[T]) String() string {
	ms := float64(t.elapsed) / float64(time.Millisecond)
	return fmt.Sprintf("%v (%sms)", t.value, strconv.FormatFloat(ms, 'f', -1, 64))
}

// MakeTimed returns a version of f that also reports how long each call
// took.
func MakeTimed[A, R any](f func(A) R) func(A) Timed[R] {
	return MakeTimedWithClock(clockz.RealClock, f)
}

// MakeTimedWithClock is MakeTimed measuring with clock.
func MakeTimedWithClock[A, R any](clock clockz.Clock, f func(A) R) func(A) Timed[R] {
	return func(a A) Timed[R] {
		start := clock.Now()
		r := f(a)
		return Timed[R]{value: r, elapsed: clock.Since(start)}
	}
}

// MakeTimedVoid returns a version of f that reports how long each call took.
func MakeTimedVoid[A any](clock clockz.Clock, f func(A)) func(A) time.Duration {
	return func(a A) time.Duration {
		start := clock.Now()
		f(a)
		return clock.Since(start)
	}
}
