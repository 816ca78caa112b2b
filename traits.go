package funcz

import (
	"reflect"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// TypeOf returns the static type T, including interface types, which
// reflect.TypeOf cannot recover from a value.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Signature is the introspected shape of a callable: its arity, the type of
// each parameter by position and its results.
//
// A Signature is obtained through SignatureOf, which accepts plain funcs,
// method values, method expressions, functors (values whose type has an
// exported Call method) and composed pipelines.
type Signature struct {
	fn reflect.Value
}

// SignatureOf resolves the signature of fn. A nil callable, or a value that
// is neither a func nor a functor, yields ErrNoSignature.
func SignatureOf(fn any) (Signature, error) {
	v, err := callableValue("signature", -1, fn)
	if err != nil {
		return Signature{}, err
	}
	return Signature{fn: v}, nil
}

func callableValue(op string, pos int, fn any) (reflect.Value, error) {
	if fn == nil {
		return reflect.Value{}, contractErr(op, pos, nil, ErrNoSignature, "nil callable")
	}
	if c, ok := fn.(*Composed); ok {
		if c == nil {
			return reflect.Value{}, contractErr(op, pos, nil, ErrNoSignature, "nil composition")
		}
		return c.fn, nil
	}
	v := reflect.ValueOf(fn)
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return reflect.Value{}, contractErr(op, pos, v.Type(), ErrNoSignature, "nil func")
		}
		return v, nil
	}
	if m := v.MethodByName("Call"); m.IsValid() {
		return m, nil
	}
	return reflect.Value{}, contractErr(op, pos, v.Type(), ErrNoSignature, "not a func and has no Call method")
}

// Type returns the func type of the callable.
func (s Signature) Type() reflect.Type {
	return s.fn.Type()
}

// Value returns the callable as a reflect.Value of kind Func.
func (s Signature) Value() reflect.Value {
	return s.fn
}

// Arity returns the number of declared parameters. A variadic parameter
// counts as one.
func (s Signature) Arity() int {
	return s.fn.Type().NumIn()
}

// In returns the type of the i-th parameter.
func (s Signature) In(i int) reflect.Type {
	return s.fn.Type().In(i)
}

// NumOut returns the number of results.
func (s Signature) NumOut() int {
	return s.fn.Type().NumOut()
}

// Out returns the value result type: the only result, or the first of a
// (value, error) pair. It returns nil for funcs without a value result.
func (s Signature) Out() reflect.Type {
	t := s.fn.Type()
	switch {
	case t.NumOut() == 1:
		return t.Out(0)
	case s.Fallible():
		return t.Out(0)
	}
	return nil
}

// Fallible reports whether the callable returns (value, error).
func (s Signature) Fallible() bool {
	t := s.fn.Type()
	return t.NumOut() == 2 && t.Out(1) == errorType
}

// Variadic reports whether the last parameter is variadic.
func (s Signature) Variadic() bool {
	return s.fn.Type().IsVariadic()
}

// IsUnary reports whether the callable takes exactly one non-variadic
// parameter.
func (s Signature) IsUnary() bool {
	return s.Arity() == 1 && !s.Variadic()
}

func (s Signature) String() string {
	if !s.fn.IsValid() {
		return "<invalid>"
	}
	return s.fn.Type().String()
}

// typeNames renders a type list for diagnostics.
func typeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
