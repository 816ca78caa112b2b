package funcz

import (
	"fmt"
	"reflect"
)

// Maybe holds either a value (Just) or nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// IsNothing reports whether m is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// Get returns the value and whether there was one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// Unsafe returns the value and panics on Nothing.
func (m Maybe[T]) Unsafe() T {
	if !m.ok {
		panic("funcz: Unsafe called on Nothing")
	}
	return m.value
}

// OrElse returns the value, or def when m is Nothing.
func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Equal reports whether both are Nothing, or both hold equal values.
func (m Maybe[T]) Equal(o Maybe[T]) bool {
	if m.ok != o.ok {
		return false
	}
	return !m.ok || equalValues(m.value, o.value)
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Just %v", m.value)
}

// MapMaybe applies f to the value of m, if any.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

// AndThenMaybe chains a Maybe-returning f onto m.
func AndThenMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return f(m.value)
}

// LiftMaybe turns f into a function over Maybe values.
func LiftMaybe[A, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		return MapMaybe(m, f)
	}
}

// Justs collects the values of the Just elements, in order.
func Justs[T any](ms []Maybe[T]) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.ok {
			out = append(out, m.value)
		}
	}
	return out
}

// equalValues compares with == when the dynamic types allow it and falls
// back to reflect.DeepEqual otherwise.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
