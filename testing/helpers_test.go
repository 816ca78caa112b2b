package testing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/funcz"
)

func TestMockFunc(t *testing.T) {
	t.Run("Returns Zero Until Configured", func(t *testing.T) {
		mock := NewMockFunc[int, string](t, "mock-zero")
		if got := mock.Call(1); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("Returns Configured Value", func(t *testing.T) {
		mock := NewMockFunc[int, string](t, "mock-return").WithReturn("mocked")
		if got := mock.Call(1); got != "mocked" {
			t.Errorf("expected 'mocked', got %q", got)
		}
	})

	t.Run("Delegates To Func", func(t *testing.T) {
		mock := NewMockFunc[int, int](t, "mock-func").WithFunc(func(n int) int { return n * 2 })
		if got := mock.Call(21); got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
	})

	t.Run("Tracks Calls", func(t *testing.T) {
		mock := NewMockFunc[string, int](t, "mock-count")
		mock.Call("first")
		mock.Call("second")
		mock.Call("third")

		AssertCalled(t, mock, 3)
		AssertCalledWith(t, mock, "third")
		if n := len(mock.CallHistory()); n != 3 {
			t.Errorf("expected 3 history entries, got %d", n)
		}
	})

	t.Run("History Size Limit", func(t *testing.T) {
		mock := NewMockFunc[int, int](t, "mock-history").WithHistorySize(2)
		for i := 0; i < 5; i++ {
			mock.Call(i)
		}
		history := mock.CallHistory()
		if len(history) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(history))
		}
		if history[0].Input != 3 || history[1].Input != 4 {
			t.Errorf("expected inputs 3 and 4, got %d and %d", history[0].Input, history[1].Input)
		}
	})

	t.Run("Disabled History", func(t *testing.T) {
		mock := NewMockFunc[int, int](t, "mock-nohistory").WithHistorySize(0)
		mock.Call(1)
		if mock.CallHistory() != nil {
			t.Error("expected nil history")
		}
		AssertCalled(t, mock, 1)
	})

	t.Run("Panics When Configured", func(t *testing.T) {
		mock := NewMockFunc[int, int](t, "mock-panic").WithPanic("boom")
		AssertPanics(t, func() { mock.Call(1) })
		AssertCalled(t, mock, 1)
	})

	t.Run("Reset", func(t *testing.T) {
		mock := NewMockFunc[int, int](t, "mock-reset")
		mock.Call(7)
		mock.Reset()
		AssertNotCalled(t, mock)
		if mock.LastInput() != 0 {
			t.Errorf("expected zero last input, got %d", mock.LastInput())
		}
	})

	t.Run("Concurrent Calls", func(t *testing.T) {
		mock := NewMockFunc[int, int](t, "mock-concurrent")
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				mock.Call(n)
			}(i)
		}
		wg.Wait()
		AssertCalled(t, mock, 50)
	})

	t.Run("Usable As Functor", func(t *testing.T) {
		double := NewMockFunc[int, int](t, "double").WithFunc(func(n int) int { return n * 2 })
		show := NewMockFunc[int, string](t, "show").WithReturn("shown")

		c, err := funcz.Compose(double, show)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := c.Call(4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "shown" {
			t.Errorf("expected 'shown', got %v", got)
		}
		AssertCalledWith(t, double, 4)
		AssertCalledWith(t, show, 8)
	})
}

func TestMockStage(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes Through By Default", func(t *testing.T) {
		mock := NewMockStage[string](t, "stage-pass")
		got, err := mock.Process(ctx, "input")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "input" {
			t.Errorf("expected 'input', got %q", got)
		}
	})

	t.Run("Returns Configured Error", func(t *testing.T) {
		expected := errors.New("test error")
		mock := NewMockStage[string](t, "stage-error").WithReturn("", expected)
		_, err := mock.Process(ctx, "input")
		AssertErrorIs(t, err, expected)
	})

	t.Run("Respects Context Cancellation During Delay", func(t *testing.T) {
		mock := NewMockStage[int](t, "stage-delay").WithDelay(time.Second)
		cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		_, err := mock.Process(cctx, 1)
		AssertErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Runs In Pipeline", func(t *testing.T) {
		first := NewMockStage[int](t, "first")
		second := NewMockStage[int](t, "second").WithReturn(99, nil)
		p := funcz.NewPipeline[int]("mocked", first, second)
		defer p.Close()

		got, err := p.Process(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 99 {
			t.Errorf("expected 99, got %d", got)
		}
		AssertCalled(t, first, 1)
		AssertCalled(t, second, 1)
	})

	t.Run("Failure Stops Pipeline", func(t *testing.T) {
		expected := errors.New("stage failed")
		failing := NewMockStage[int](t, "failing").WithReturn(0, expected)
		after := NewMockStage[int](t, "after")
		p := funcz.NewPipeline[int]("stopping", failing, after)
		defer p.Close()

		_, err := p.Process(ctx, 1)
		AssertErrorIs(t, err, expected)
		AssertNotCalled(t, after)
	})
}
