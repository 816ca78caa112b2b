// Package testing provides mocks and assertion helpers for code built on
// funcz.
//
// MockFunc is a call-counting unary callable. Its Call method makes it a
// functor, so it can be handed directly to funcz.Compose, funcz.Invoke or
// funcz.NewVisitor. MockStage satisfies funcz.Stage for pipeline tests.
//
// Example usage:
//
//	func TestVisit(t *testing.T) {
//		onInt := ftesting.NewMockFunc[int, string](t, "on-int").WithReturn("int")
//		onString := ftesting.NewMockFunc[string, string](t, "on-string")
//
//		got, err := funcz.Visit[string](v, onInt, onString)
//
//		ftesting.AssertCalled(t, onInt, 1)
//		ftesting.AssertNotCalled(t, onString)
//	}
package testing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// MockCall represents a single recorded call.
type MockCall[A any] struct {
	Input     A
	Timestamp time.Time
}

type recorder[A any] struct {
	lastInput   A
	callHistory []MockCall[A]
	maxHistory  int
	callCount   int64
	mu          sync.RWMutex
}

func (r *recorder[A]) record(in A) {
	atomic.AddInt64(&r.callCount, 1)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastInput = in
	if r.maxHistory > 0 {
		r.callHistory = append(r.callHistory, MockCall[A]{Input: in, Timestamp: time.Now()})
		if len(r.callHistory) > r.maxHistory {
			r.callHistory = r.callHistory[1:]
		}
	}
}

// CallCount returns the number of recorded calls.
func (r *recorder[A]) CallCount() int {
	return int(atomic.LoadInt64(&r.callCount))
}

// LastInput returns the input of the most recent call.
func (r *recorder[A]) LastInput() A {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastInput
}

// CallHistory returns a copy of the recorded calls, oldest first.
func (r *recorder[A]) CallHistory() []MockCall[A] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.maxHistory == 0 {
		return nil
	}
	history := make([]MockCall[A], len(r.callHistory))
	copy(history, r.callHistory)
	return history
}

func (r *recorder[A]) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	atomic.StoreInt64(&r.callCount, 0)
	r.lastInput = *new(A)
	r.callHistory = nil
}

// MockFunc is a configurable unary callable that records its calls.
type MockFunc[A, R any] struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	t         *testing.T
	name      string
	fn        func(A) R
	returnVal R
	panicMsg  string
	recorder[A]
}

// NewMockFunc creates a mock returning the zero R until configured.
func NewMockFunc[A, R any](t *testing.T, name string) *MockFunc[A, R] {
	m := &MockFunc[A, R]{t: t, name: name}
	m.maxHistory = 100
	return m
}

// WithReturn makes every call return val.
func (m *MockFunc[A, R]) WithReturn(val R) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = val
	m.fn = nil
	return m
}

// WithFunc makes every call delegate to fn.
func (m *MockFunc[A, R]) WithFunc(fn func(A) R) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn = fn
	return m
}

// WithPanic makes every call panic with msg.
func (m *MockFunc[A, R]) WithPanic(msg string) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panicMsg = msg
	return m
}

// WithHistorySize sets how many calls to keep. Zero disables history.
func (m *MockFunc[A, R]) WithHistorySize(size int) *MockFunc[A, R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxHistory = size
	if size == 0 {
		m.callHistory = nil
	} else if len(m.callHistory) > size {
		m.callHistory = m.callHistory[len(m.callHistory)-size:]
	}
	return m
}

// Name returns the mock's name.
func (m *MockFunc[A, R]) Name() string {
	return m.name
}

// Call records the call and returns the configured result.
func (m *MockFunc[A, R]) Call(in A) R {
	m.record(in)

	m.mu.RLock()
	fn, val, panicMsg := m.fn, m.returnVal, m.panicMsg
	m.mu.RUnlock()

	if panicMsg != "" {
		panic(panicMsg)
	}
	if fn != nil {
		return fn(in)
	}
	return val
}

// Func returns the mock as a plain func.
func (m *MockFunc[A, R]) Func() func(A) R {
	return m.Call
}

// Reset clears the recorded calls.
func (m *MockFunc[A, R]) Reset() {
	m.reset()
}

// MockStage is a configurable pipeline stage that records its calls. It
// satisfies funcz.Stage.
type MockStage[T any] struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	t         *testing.T
	name      string
	returnVal T
	returnErr error
	passThru  bool
	delay     time.Duration
	panicMsg  string
	recorder[T]
}

// NewMockStage creates a stage that passes its input through until
// configured.
func NewMockStage[T any](t *testing.T, name string) *MockStage[T] {
	m := &MockStage[T]{t: t, name: name, passThru: true}
	m.maxHistory = 100
	return m
}

// WithReturn makes every call return val and err.
func (m *MockStage[T]) WithReturn(val T, err error) *MockStage[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = val
	m.returnErr = err
	m.passThru = false
	return m
}

// WithDelay delays every call by d, or until the context is done.
func (m *MockStage[T]) WithDelay(d time.Duration) *MockStage[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	return m
}

// WithPanic makes every call panic with msg.
func (m *MockStage[T]) WithPanic(msg string) *MockStage[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panicMsg = msg
	return m
}

// Name returns the stage name.
func (m *MockStage[T]) Name() string {
	return m.name
}

// Process records the call and returns the configured values.
func (m *MockStage[T]) Process(ctx context.Context, data T) (T, error) {
	m.record(data)

	m.mu.RLock()
	delay, val, err, passThru, panicMsg := m.delay, m.returnVal, m.returnErr, m.passThru, m.panicMsg
	m.mu.RUnlock()

	if panicMsg != "" {
		panic(panicMsg)
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return data, ctx.Err()
		}
	}
	if passThru {
		return data, nil
	}
	return val, err
}

// Reset clears the recorded calls.
func (m *MockStage[T]) Reset() {
	m.reset()
}

// Assertion Helpers

// Counted is implemented by every mock in this package.
type Counted interface {
	Name() string
	CallCount() int
}

// AssertCalled verifies that mock was called exactly n times.
func AssertCalled(t *testing.T, mock Counted, n int) {
	t.Helper()
	if got := mock.CallCount(); got != n {
		t.Errorf("expected mock %s to be called %d times, but was called %d times", mock.Name(), n, got)
	}
}

// AssertNotCalled verifies that mock was never called.
func AssertNotCalled(t *testing.T, mock Counted) {
	t.Helper()
	AssertCalled(t, mock, 0)
}

// AssertCalledWith verifies the input of the most recent call.
func AssertCalledWith[A comparable, R any](t *testing.T, mock *MockFunc[A, R], want A) {
	t.Helper()
	if mock.CallCount() == 0 {
		t.Errorf("expected mock %s to be called with %v, but it was never called", mock.name, want)
		return
	}
	if got := mock.LastInput(); got != want {
		t.Errorf("expected mock %s to be called with %v, but was called with %v", mock.name, want, got)
	}
}

// AssertErrorIs verifies that errors.Is(err, target) holds.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("expected error matching %v, got %v", target, err)
	}
}

// AssertPanics verifies that fn panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	fn()
}
