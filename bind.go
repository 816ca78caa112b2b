package funcz

import (
	"reflect"
	"sort"
)

// BindUnary fixes the only argument of f.
func BindUnary[A, R any](f func(A) R, a A) func() R {
	return func() R {
		return f(a)
	}
}

// Bind1stOf2 fixes the first argument of f: Bind1stOf2(f, a)(b) == f(a, b).
func Bind1stOf2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Bind2ndOf2 fixes the second argument of f: Bind2ndOf2(f, b)(a) == f(a, b).
func Bind2ndOf2[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R {
		return f(a, b)
	}
}

// Bind1stOf3 fixes the first argument of a ternary f.
func Bind1stOf3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Bind1stAnd2ndOf3 fixes the first two arguments of a ternary f.
func Bind1stAnd2ndOf3[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}

// Flip swaps the parameters of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Curry2 turns a binary function into a chain of unary ones.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Lazy defers f(a) until the returned thunk is called. Each call runs f again.
func Lazy[A, R any](f func(A) R, a A) func() R {
	return func() R {
		return f(a)
	}
}

// Fixed returns a thunk that always yields v.
func Fixed[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Identity returns its argument.
func Identity[T any](v T) T {
	return v
}

// Const returns a unary function that ignores its argument and yields v.
func Const[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// BindAt fixes the arguments of fn at the positions in bound and returns a
// func over the remaining parameters, in their original order, with fn's
// results. For a variadic fn the last position takes the whole slice.
//
// Positions and value types are checked here. Binding no position, or every
// position, is rejected with ErrArity.
func BindAt(fn any, bound map[int]any) (any, error) {
	v, err := callableValue("bind", -1, fn)
	if err != nil {
		return nil, err
	}
	t := v.Type()
	n := t.NumIn()
	if len(bound) == 0 || len(bound) >= n {
		return nil, contractErr("bind", -1, t, ErrArity, "must leave between 1 and %d of %d parameters open", n-1, n)
	}

	positions := make([]int, 0, len(bound))
	for pos := range bound {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	fixed := make([]reflect.Value, n)
	for _, pos := range positions {
		if pos < 0 || pos >= n {
			return nil, contractErr("bind", pos, t, ErrArity, "no parameter at this position")
		}
		av, err := argValue("bind", pos, t.In(pos), bound[pos])
		if err != nil {
			return nil, err
		}
		fixed[pos] = av
	}

	var open []int
	var ins []reflect.Type
	for i := 0; i < n; i++ {
		if !fixed[i].IsValid() {
			open = append(open, i)
			ins = append(ins, t.In(i))
		}
	}
	outs := make([]reflect.Type, t.NumOut())
	for i := range outs {
		outs[i] = t.Out(i)
	}
	variadic := t.IsVariadic() && !fixed[n-1].IsValid()

	ft := reflect.FuncOf(ins, outs, variadic)
	return reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		full := make([]reflect.Value, n)
		copy(full, fixed)
		for i, pos := range open {
			full[pos] = args[i]
		}
		if t.IsVariadic() {
			return v.CallSlice(full)
		}
		return v.Call(full)
	}).Interface(), nil
}
