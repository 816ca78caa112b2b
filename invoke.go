package funcz

import (
	"reflect"
)

// Invoke calls fn with args and returns its results.
//
// fn may be any callable accepted by SignatureOf. A method expression such as
// (*T).M takes its receiver as the first argument; passing a T where *T is
// declared is rejected, as is any other argument that is not assignable to
// its parameter. All checks complete before fn runs, so a rejected call has
// no side effects.
//
// Panics raised by fn propagate unchanged.
func Invoke(fn any, args ...any) ([]any, error) {
	v, err := callableValue("invoke", -1, fn)
	if err != nil {
		return nil, err
	}
	in, err := prepareArgs("invoke", v.Type(), args)
	if err != nil {
		return nil, err
	}
	out := v.Call(in)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

// InvokeAs calls fn like Invoke and returns its single value result as R.
// A (value, error) callable has its error returned as is.
func InvokeAs[R any](fn any, args ...any) (R, error) {
	var zero R
	v, err := callableValue("invoke", -1, fn)
	if err != nil {
		return zero, err
	}
	sig := Signature{fn: v}
	want := TypeOf[R]()
	if out := sig.Out(); out == nil || !out.AssignableTo(want) {
		return zero, contractErr("invoke", -1, v.Type(), ErrTypeMismatch, "result is not assignable to %s", want)
	}
	in, err := prepareArgs("invoke", v.Type(), args)
	if err != nil {
		return zero, err
	}
	out := v.Call(in)
	if sig.Fallible() && !out[1].IsNil() {
		return zero, out[1].Interface().(error)
	}
	if r, ok := out[0].Interface().(R); ok {
		return r, nil
	}
	return zero, nil
}

// prepareArgs checks args against the parameters of t and converts them to
// reflect values ready for Call.
func prepareArgs(op string, t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, contractErr(op, -1, t, ErrArity, "expected at least %d arguments, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, contractErr(op, -1, t, ErrArity, "expected %d arguments, got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if t.IsVariadic() && i >= n-1 {
			param = t.In(n - 1).Elem()
		} else {
			param = t.In(i)
		}
		v, err := argValue(op, i, param, arg)
		if err != nil {
			return nil, err
		}
		in[i] = v
	}
	return in, nil
}

func argValue(op string, pos int, param reflect.Type, arg any) (reflect.Value, error) {
	if arg == nil {
		if nillable(param) {
			return reflect.Zero(param), nil
		}
		return reflect.Value{}, contractErr(op, pos, param, ErrTypeMismatch, "nil argument for non-nillable parameter")
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(param) {
		return reflect.Value{}, contractErr(op, pos, param, ErrTypeMismatch, "cannot use %s as %s", v.Type(), param)
	}
	return v, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}

// FieldGetter returns an accessor for the exported field name of S, where S
// is a struct type or a pointer to one. The field's existence and its
// assignability to F are checked once, here.
//
// The accessor panics when called with a nil pointer, like a direct field
// access would.
func FieldGetter[S, F any](name string) (func(S) F, error) {
	st := TypeOf[S]()
	ptr := st.Kind() == reflect.Pointer
	base := st
	if ptr {
		base = st.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, contractErr("field", -1, st, ErrTypeMismatch, "not a struct")
	}
	field, ok := base.FieldByName(name)
	if !ok || !field.IsExported() {
		return nil, contractErr("field", -1, st, ErrTypeMismatch, "no exported field %q", name)
	}
	if !field.Type.AssignableTo(TypeOf[F]()) {
		return nil, contractErr("field", -1, st, ErrTypeMismatch, "field %q is %s, not %s", name, field.Type, TypeOf[F]())
	}
	index := field.Index
	return func(s S) F {
		v := reflect.ValueOf(&s).Elem()
		if ptr {
			v = v.Elem()
		}
		var f F
		reflect.ValueOf(&f).Elem().Set(v.FieldByIndex(index))
		return f
	}, nil
}
