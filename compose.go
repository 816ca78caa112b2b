package funcz

import (
	"reflect"
)

// Compose2 chains f and g left to right: Compose2(f, g)(x) == g(f(x)).
//
// Data flows through the first function first. This is the reverse of the
// mathematical notation and every helper in funcz assumes it.
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 chains three functions left to right.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Compose4 chains four functions left to right.
func Compose4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return func(a A) E {
		return i(h(g(f(a))))
	}
}

// Compose5 chains five functions left to right.
func Compose5[A, B, C, D, E, F any](f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F) func(A) F {
	return func(a A) F {
		return j(i(h(g(f(a)))))
	}
}

// Compose6 chains six functions left to right.
func Compose6[A, B, C, D, E, F, G any](f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F, k func(F) G) func(A) G {
	return func(a A) G {
		return k(j(i(h(g(f(a))))))
	}
}

// ComposeBinary chains a binary first step with a unary second step.
func ComposeBinary[A1, A2, B, C any](f func(A1, A2) B, g func(B) C) func(A1, A2) C {
	return func(a1 A1, a2 A2) C {
		return g(f(a1, a2))
	}
}

// Chain composes any number of same-typed steps left to right. With no
// steps it is the identity.
func Chain[T any](fns ...func(T) T) func(T) T {
	steps := make([]func(T) T, len(fns))
	copy(steps, fns)
	return func(v T) T {
		for _, fn := range steps {
			v = fn(v)
		}
		return v
	}
}

// ForwardApply applies f to x. It reads left to right in the same order as
// the pipelines built with Compose.
func ForwardApply[X, Y any](x X, f func(X) Y) Y {
	return f(x)
}

// Composed is a pipeline of heterogeneous callables whose shape was checked
// when it was built. It is itself a callable: Func returns a real Go func of
// the synthesized type, and a *Composed may be passed to Compose, Invoke or
// NewVisitor wherever a callable is expected.
type Composed struct {
	fn       reflect.Value
	out      reflect.Type
	steps    []Signature
	fallible bool
}

// Compose builds a pipeline from two or more callables applied left to
// right: Compose(f1, f2, f3) computes f3(f2(f1(args...))).
//
// The first callable may take any number of parameters. Every later one must
// be unary and accept the value produced by its predecessor. Any step may
// return (value, error); a non-nil error stops the pipeline and is returned
// unmodified. Only the last step may return no value.
//
// All of this is verified here, so a returned *Composed never fails for a
// structural reason once called with arguments that match its first step.
func Compose(fns ...any) (*Composed, error) {
	if len(fns) < 2 {
		return nil, contractErr("compose", -1, nil, ErrArity, "need at least 2 functions, got %d", len(fns))
	}

	steps := make([]Signature, len(fns))
	fallible := false
	for i, f := range fns {
		v, err := callableValue("compose", i, f)
		if err != nil {
			return nil, err
		}
		sig := Signature{fn: v}
		if i > 0 {
			if !sig.IsUnary() {
				return nil, contractErr("compose", i, sig.Type(), ErrArity, "step must take exactly one parameter")
			}
			prev := steps[i-1].Out()
			if !prev.AssignableTo(sig.In(0)) {
				return nil, contractErr("compose", i, sig.Type(), ErrTypeMismatch, "%s does not accept %s", sig.In(0), prev)
			}
		}
		if sig.NumOut() > 1 && !sig.Fallible() {
			return nil, contractErr("compose", i, sig.Type(), ErrArity, "results must be a value or (value, error)")
		}
		if sig.Out() == nil && i < len(fns)-1 {
			return nil, contractErr("compose", i, sig.Type(), ErrVoidResult, "only the last step may return nothing")
		}
		fallible = fallible || sig.Fallible()
		steps[i] = sig
	}

	first := steps[0].Type()
	ins := make([]reflect.Type, first.NumIn())
	for i := range ins {
		ins[i] = first.In(i)
	}
	out := steps[len(steps)-1].Out()
	var outs []reflect.Type
	if out != nil {
		outs = append(outs, out)
	}
	if fallible {
		outs = append(outs, errorType)
	}

	c := &Composed{
		steps:    steps,
		out:      out,
		fallible: fallible,
	}
	ft := reflect.FuncOf(ins, outs, first.IsVariadic())
	c.fn = reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		v, err := c.run(args, first.IsVariadic())
		return c.results(v, err)
	})
	return c, nil
}

func (c *Composed) run(args []reflect.Value, spread bool) (reflect.Value, error) {
	var cur reflect.Value
	for i, step := range c.steps {
		var out []reflect.Value
		switch {
		case i > 0:
			out = step.fn.Call([]reflect.Value{cur})
		case spread:
			out = step.fn.CallSlice(args)
		default:
			out = step.fn.Call(args)
		}
		if step.Fallible() && !out[1].IsNil() {
			return reflect.Value{}, out[1].Interface().(error)
		}
		cur = reflect.Value{}
		if len(out) > 0 {
			cur = out[0]
		}
	}
	return cur, nil
}

func (c *Composed) results(v reflect.Value, err error) []reflect.Value {
	var res []reflect.Value
	if c.out != nil {
		if err != nil || !v.IsValid() {
			v = reflect.Zero(c.out)
		}
		res = append(res, v)
	}
	if c.fallible {
		if err == nil {
			res = append(res, reflect.Zero(errorType))
		} else {
			res = append(res, reflect.ValueOf(&err).Elem())
		}
	}
	return res
}

// Call runs the pipeline. The arguments are checked against the first
// step's parameters before anything runs.
func (c *Composed) Call(args ...any) (any, error) {
	in, err := prepareArgs("compose", c.steps[0].Type(), args)
	if err != nil {
		return nil, err
	}
	v, err := c.run(in, false)
	if err != nil {
		return nil, err
	}
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

// Func returns the pipeline as a Go func value. Its type takes the first
// step's parameters and returns the last step's value, plus an error when
// any step is fallible.
func (c *Composed) Func() any {
	return c.fn.Interface()
}

// Signature returns the signature of the synthesized func.
func (c *Composed) Signature() Signature {
	return Signature{fn: c.fn}
}

// Len returns the number of steps.
func (c *Composed) Len() int {
	return len(c.steps)
}

// In returns the parameter types of the pipeline.
func (c *Composed) In() []reflect.Type {
	t := c.fn.Type()
	ins := make([]reflect.Type, t.NumIn())
	for i := range ins {
		ins[i] = t.In(i)
	}
	return ins
}

// Out returns the value type the pipeline produces, or nil.
func (c *Composed) Out() reflect.Type {
	return c.out
}

func (c *Composed) String() string {
	return c.fn.Type().String()
}

// As returns the pipeline as the func type F. F must have the same shape as
// the synthesized func.
func As[F any](c *Composed) (F, error) {
	var zero F
	want := TypeOf[F]()
	if want.Kind() != reflect.Func || !c.fn.Type().ConvertibleTo(want) {
		return zero, contractErr("compose", -1, want, ErrTypeMismatch, "pipeline is %s", c.fn.Type())
	}
	return c.fn.Convert(want).Interface().(F), nil
}

// ApplyAll runs x through fns left to right without keeping the pipeline.
// A single function is applied directly; two or more are composed first,
// with the same checks as Compose.
func ApplyAll(x any, fns ...any) (any, error) {
	if len(fns) != 1 {
		c, err := Compose(fns...)
		if err != nil {
			return nil, err
		}
		return c.Call(x)
	}
	v, err := callableValue("apply", 0, fns[0])
	if err != nil {
		return nil, err
	}
	sig := Signature{fn: v}
	if !sig.IsUnary() {
		return nil, contractErr("apply", 0, sig.Type(), ErrArity, "function must take exactly one parameter")
	}
	in, err := prepareArgs("apply", sig.Type(), []any{x})
	if err != nil {
		return nil, err
	}
	out := v.Call(in)
	if sig.Fallible() && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
