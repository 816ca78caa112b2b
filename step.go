package funcz

import (
	"context"
	"reflect"
)

// Processor is a named Stage built from a plain function by one of the
// adapters below. The function is private so that every Processor comes
// from an adapter.
type Processor[T any] struct {
	fn   func(context.Context, T) (T, error)
	name Name
}

// Process runs the wrapped function.
func (p Processor[T]) Process(ctx context.Context, value T) (T, error) {
	return p.fn(ctx, value)
}

// Name returns the stage name.
func (p Processor[T]) Name() Name {
	return p.name
}

// Map wraps a transformation that cannot fail.
func Map[T any](name Name, fn func(T) T) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(_ context.Context, value T) (T, error) {
			return fn(value), nil
		},
	}
}

// Apply wraps a transformation that can fail. On error the stage yields the
// zero value.
func Apply[T any](name Name, fn func(context.Context, T) (T, error)) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			result, err := fn(ctx, value)
			if err != nil {
				var zero T
				return zero, err
			}
			return result, nil
		},
	}
}

// Effect wraps a side effect. The value passes through unchanged unless fn
// fails.
func Effect[T any](name Name, fn func(context.Context, T) error) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			if err := fn(ctx, value); err != nil {
				var zero T
				return zero, err
			}
			return value, nil
		},
	}
}

// FromComposed adapts a checked composition to a Stage. c must take a single
// T and produce a T, optionally with an error.
func FromComposed[T any](name Name, c *Composed) (Processor[T], error) {
	t := TypeOf[T]()
	in := c.In()
	if len(in) != 1 || c.Signature().Variadic() || !t.AssignableTo(in[0]) {
		return Processor[T]{}, contractErr("stage", -1, c.fn.Type(), ErrTypeMismatch, "composition does not accept %s", t)
	}
	if c.Out() == nil || !c.Out().AssignableTo(t) {
		return Processor[T]{}, contractErr("stage", -1, c.fn.Type(), ErrTypeMismatch, "composition does not produce %s", t)
	}
	return Processor[T]{
		name: name,
		fn: func(_ context.Context, value T) (T, error) {
			v, err := c.run([]reflect.Value{reflect.ValueOf(&value).Elem()}, false)
			if err != nil {
				var zero T
				return zero, err
			}
			var out T
			reflect.ValueOf(&out).Elem().Set(v)
			return out, nil
		},
	}, nil
}
