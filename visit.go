package funcz

import (
	"fmt"
	"reflect"
)

// dispatch maps each alternative of a union to exactly one handler.
type dispatch struct {
	union *Union
	table []reflect.Value
	outs  []reflect.Type
}

// buildDispatch validates handlers against u. The checks run in a fixed
// order and all of them complete before any handler can run.
func buildDispatch(op string, u *Union, handlers []any) (*dispatch, error) {
	if u == nil {
		return nil, contractErr(op, -1, nil, ErrNoTypes, "nil union")
	}
	d := &dispatch{
		union: u,
		table: make([]reflect.Value, u.Len()),
		outs:  make([]reflect.Type, len(handlers)),
	}
	owner := make([]int, u.Len())
	for i, h := range handlers {
		fn, err := callableValue(op, i, h)
		if err != nil {
			return nil, err
		}
		sig := Signature{fn: fn}
		if !sig.IsUnary() {
			return nil, contractErr(op, i, sig.Type(), ErrArity, "handler must take exactly one parameter")
		}
		in := sig.In(0)
		alt := u.IndexOf(in)
		if alt < 0 {
			return nil, contractErr(op, i, sig.Type(), ErrForeignType, "%s is not in %s", in, u)
		}
		if d.table[alt].IsValid() {
			return nil, contractErr(op, i, sig.Type(), ErrDuplicateHandler, "%s already handled at position %d", in, owner[alt])
		}
		if sig.NumOut() != 1 {
			return nil, contractErr(op, i, sig.Type(), ErrVoidResult, "handler must return exactly one value")
		}
		d.table[alt] = fn
		d.outs[i] = sig.Out()
		owner[alt] = i
	}
	return d, nil
}

func (d *dispatch) checkCovered(op string) error {
	covered := make([]bool, len(d.table))
	first := -1
	for i, h := range d.table {
		covered[i] = h.IsValid()
		if !covered[i] && first < 0 {
			first = i
		}
	}
	if first < 0 {
		return nil
	}
	missing := d.union.missing(covered)
	return contractErr(op, -1, d.union.Type(first), ErrMissingHandler, "no handler for %s", joinNames(missing))
}

func (d *dispatch) call(op string, v Variant) (reflect.Value, error) {
	if v.IsEmpty() {
		return reflect.Value{}, contractErr(op, -1, nil, ErrEmptyVariant, "")
	}
	if !d.union.sameAs(v.union) {
		return reflect.Value{}, contractErr(op, -1, nil, ErrForeignUnion, "visitor is for %s, variant is %s", d.union, v.union)
	}
	h := d.table[v.index]
	if !h.IsValid() {
		panic(fmt.Sprintf("funcz: no handler for alternative %d of %s", v.index, d.union))
	}
	return h.Call([]reflect.Value{reflect.ValueOf(v.value)})[0], nil
}

// Visitor dispatches a variant to the one handler registered for its active
// alternative. It is built and validated once and can be reused on any
// variant of the same union.
type Visitor[R any] struct {
	d *dispatch
}

// NewVisitor validates handlers against u and builds the dispatch table.
//
// Each handler must be a unary callable whose parameter is an alternative of
// u, with no two handlers sharing a parameter type. Every handler must
// return the same single type, assignable to R, and every alternative must
// be covered.
func NewVisitor[R any](u *Union, handlers ...any) (*Visitor[R], error) {
	d, err := buildDispatch("visit", u, handlers)
	if err != nil {
		return nil, err
	}
	for i, out := range d.outs {
		if out != d.outs[0] {
			return nil, contractErr("visit", i, out, ErrResultMismatch, "handler 0 returns %s", d.outs[0])
		}
	}
	if want := TypeOf[R](); len(d.outs) > 0 && !d.outs[0].AssignableTo(want) {
		return nil, contractErr("visit", 0, d.outs[0], ErrResultMismatch, "not assignable to %s", want)
	}
	if err := d.checkCovered("visit"); err != nil {
		return nil, err
	}
	return &Visitor[R]{d: d}, nil
}

// Visit calls the handler for the active alternative of v and returns its
// result. Exactly one handler runs.
func (vis *Visitor[R]) Visit(v Variant) (R, error) {
	var zero R
	out, err := vis.d.call("visit", v)
	if err != nil {
		return zero, err
	}
	if r, ok := out.Interface().(R); ok {
		return r, nil
	}
	return zero, nil
}

// Union returns the union the visitor was built for.
func (vis *Visitor[R]) Union() *Union {
	return vis.d.union
}

// Visit is the one-shot form of NewVisitor followed by Visit.
func Visit[R any](v Variant, handlers ...any) (R, error) {
	var zero R
	if v.IsEmpty() {
		return zero, contractErr("visit", -1, nil, ErrEmptyVariant, "")
	}
	vis, err := NewVisitor[R](v.union, handlers...)
	if err != nil {
		return zero, err
	}
	return vis.Visit(v)
}

// VisitOne calls h only when T is the active alternative of v. A different
// active alternative yields Nothing. T must be an alternative.
func VisitOne[T, R any](v Variant, h func(T) R) (Maybe[R], error) {
	if v.IsEmpty() {
		return Nothing[R](), contractErr("visit", -1, nil, ErrEmptyVariant, "")
	}
	t := TypeOf[T]()
	i := v.union.IndexOf(t)
	if i < 0 {
		return Nothing[R](), contractErr("visit", -1, t, ErrForeignType, "%s", v.union)
	}
	if i != v.index {
		return Nothing[R](), nil
	}
	return Just(h(v.value.(T))), nil
}

// Match2 visits a two-alternative variant with typed handlers.
func Match2[A, B, R any](v Variant, fa func(A) R, fb func(B) R) (R, error) {
	return Visit[R](v, fa, fb)
}

// Match3 visits a three-alternative variant with typed handlers.
func Match3[A, B, C, R any](v Variant, fa func(A) R, fb func(B) R, fc func(C) R) (R, error) {
	return Visit[R](v, fa, fb, fc)
}

// Match4 visits a four-alternative variant with typed handlers.
func Match4[A, B, C, D, R any](v Variant, fa func(A) R, fb func(B) R, fc func(C) R, fd func(D) R) (R, error) {
	return Visit[R](v, fa, fb, fc, fd)
}

// Transformer maps a variant to another variant of the same union. All
// handlers return the same alternative.
type Transformer struct {
	d *dispatch
}

// NewTransformer validates handlers like NewVisitor. The common result type
// must also be an alternative of u, otherwise it fails with ErrNotClosed.
func NewTransformer(u *Union, handlers ...any) (*Transformer, error) {
	d, err := buildDispatch("transform", u, handlers)
	if err != nil {
		return nil, err
	}
	if err := d.checkCovered("transform"); err != nil {
		return nil, err
	}
	for i, out := range d.outs {
		if out != d.outs[0] {
			return nil, contractErr("transform", i, out, ErrResultMismatch, "handler 0 returns %s", d.outs[0])
		}
	}
	for i, out := range d.outs {
		if !u.Contains(out) {
			return nil, contractErr("transform", i, out, ErrNotClosed, "%s", u)
		}
	}
	return &Transformer{d: d}, nil
}

// Transform applies the handler for the active alternative of v.
func (tr *Transformer) Transform(v Variant) (Variant, error) {
	out, err := tr.d.call("transform", v)
	if err != nil {
		return Variant{}, err
	}
	return Variant{
		union: v.union,
		index: v.union.IndexOf(out.Type()),
		value: out.Interface(),
	}, nil
}

// Transform is the one-shot form of NewTransformer followed by Transform.
func Transform(v Variant, handlers ...any) (Variant, error) {
	if v.IsEmpty() {
		return Variant{}, contractErr("transform", -1, nil, ErrEmptyVariant, "")
	}
	tr, err := NewTransformer(v.union, handlers...)
	if err != nil {
		return Variant{}, err
	}
	return tr.Transform(v)
}
