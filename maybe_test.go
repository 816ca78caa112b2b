package funcz

import (
	"strconv"
	"testing"
)

func TestMaybe(t *testing.T) {
	t.Run("Zero Value Is Nothing", func(t *testing.T) {
		var m Maybe[int]
		if m.IsJust() || !m.IsNothing() {
			t.Error("expected Nothing")
		}
		if got := m.OrElse(7); got != 7 {
			t.Errorf("expected default 7, got %d", got)
		}
	})

	t.Run("Just", func(t *testing.T) {
		m := Just("x")
		v, ok := m.Get()
		if !ok || v != "x" {
			t.Errorf("expected x, true; got %q, %t", v, ok)
		}
		if m.Unsafe() != "x" {
			t.Error("Unsafe returned the wrong value")
		}
		if m.String() != "Just x" {
			t.Errorf("unexpected string %q", m.String())
		}
	})

	t.Run("Unsafe On Nothing Panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Nothing[int]().Unsafe()
	})

	t.Run("Equal", func(t *testing.T) {
		if !Just(1).Equal(Just(1)) || Just(1).Equal(Just(2)) {
			t.Error("Just equality mismatch")
		}
		if !Nothing[int]().Equal(Nothing[int]()) || Just(0).Equal(Nothing[int]()) {
			t.Error("Nothing equality mismatch")
		}
		if !Just([]int{1, 2}).Equal(Just([]int{1, 2})) {
			t.Error("expected deep equality for slices")
		}
	})

	t.Run("MapMaybe And Lift", func(t *testing.T) {
		if got := MapMaybe(Just(4), strconv.Itoa); !got.Equal(Just("4")) {
			t.Errorf("expected Just 4, got %v", got)
		}
		if got := LiftMaybe(strconv.Itoa)(Nothing[int]()); got.IsJust() {
			t.Errorf("expected Nothing, got %v", got)
		}
	})

	t.Run("AndThenMaybe", func(t *testing.T) {
		parse := func(s string) Maybe[int] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Nothing[int]()
			}
			return Just(n)
		}
		if got := AndThenMaybe(Just("12"), parse); !got.Equal(Just(12)) {
			t.Errorf("expected Just 12, got %v", got)
		}
		if got := AndThenMaybe(Just("x"), parse); got.IsJust() {
			t.Errorf("expected Nothing, got %v", got)
		}
	})

	t.Run("Justs", func(t *testing.T) {
		got := Justs([]Maybe[int]{Just(1), Nothing[int](), Just(3)})
		if len(got) != 2 || got[0] != 1 || got[1] != 3 {
			t.Errorf("expected [1 3], got %v", got)
		}
	})
}
