package funcz

import (
	"fmt"
	"reflect"
)

// Variant holds exactly one value whose type is an alternative of its
// Union. Variants are values: copying one copies the active value the way
// assigning an interface does.
//
// The zero Variant is empty. It belongs to no union, holds nothing and
// cannot be visited. No constructor returns an empty Variant.
type Variant struct {
	union *Union
	value any
	index int
}

// New builds a variant holding v as the alternative T.
func New[T any](u *Union, v T) (Variant, error) {
	t := TypeOf[T]()
	if u == nil {
		return Variant{}, contractErr("new", -1, t, ErrNoTypes, "nil union")
	}
	i := u.IndexOf(t)
	if i < 0 {
		return Variant{}, contractErr("new", -1, t, ErrForeignType, "%s", u)
	}
	return Variant{union: u, index: i, value: v}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](u *Union, v T) Variant {
	vr, err := New(u, v)
	if err != nil {
		panic(err)
	}
	return vr
}

// Wrap builds a variant from the dynamic type of v.
func (u *Union) Wrap(v any) (Variant, error) {
	t := reflect.TypeOf(v)
	if u == nil {
		return Variant{}, contractErr("wrap", -1, t, ErrNoTypes, "nil union")
	}
	i := u.IndexOf(t)
	if i < 0 {
		return Variant{}, contractErr("wrap", -1, t, ErrForeignType, "%s", u)
	}
	return Variant{union: u, index: i, value: v}, nil
}

// Assign makes x, as the alternative T, the active value of v. On error v is
// left unchanged.
func Assign[T any](v *Variant, x T) error {
	if v.union == nil {
		return contractErr("assign", -1, nil, ErrEmptyVariant, "")
	}
	nv, err := New(v.union, x)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// Set makes x the active value of v, selecting the alternative by the
// dynamic type of x. On error v is left unchanged.
func (v *Variant) Set(x any) error {
	if v.union == nil {
		return contractErr("set", -1, nil, ErrEmptyVariant, "")
	}
	nv, err := v.union.Wrap(x)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// Is reports whether T is the active alternative of v. Asking about a type
// that is not an alternative is a programming error and panics with a
// *ContractError. An empty variant holds nothing, so Is returns false.
func Is[T any](v Variant) bool {
	if v.union == nil {
		return false
	}
	t := TypeOf[T]()
	i := v.union.IndexOf(t)
	if i < 0 {
		panic(contractErr("is", -1, t, ErrForeignType, "%s", v.union))
	}
	return i == v.index
}

// Holds is the reflective form of Is. It reports a foreign type as an error
// instead of panicking.
func (v Variant) Holds(t reflect.Type) (bool, error) {
	if v.union == nil {
		return false, contractErr("holds", -1, t, ErrEmptyVariant, "")
	}
	i := v.union.IndexOf(t)
	if i < 0 {
		return false, contractErr("holds", -1, t, ErrForeignType, "%s", v.union)
	}
	return i == v.index, nil
}

// Get returns the active value as T, if T is the active alternative.
func Get[T any](v Variant) (T, bool) {
	var zero T
	if v.union == nil || v.union.types[v.index] != TypeOf[T]() {
		return zero, false
	}
	return v.value.(T), true
}

// Union returns the union v belongs to, or nil when empty.
func (v Variant) Union() *Union {
	return v.union
}

// Type returns the active alternative, or nil when empty.
func (v Variant) Type() reflect.Type {
	if v.union == nil {
		return nil
	}
	return v.union.types[v.index]
}

// Index returns the position of the active alternative, or -1 when empty.
func (v Variant) Index() int {
	if v.union == nil {
		return -1
	}
	return v.index
}

// Value returns the active value.
func (v Variant) Value() any {
	return v.value
}

// IsEmpty reports whether v is the zero Variant.
func (v Variant) IsEmpty() bool {
	return v.union == nil
}

// Equal reports whether v and o have the same alternatives, the same active
// alternative and equal values. Empty variants are equal to each other only.
func (v Variant) Equal(o Variant) bool {
	if v.IsEmpty() || o.IsEmpty() {
		return v.IsEmpty() && o.IsEmpty()
	}
	if !v.union.sameAs(o.union) || v.index != o.index {
		return false
	}
	return equalValues(v.value, o.value)
}

func (v Variant) String() string {
	if v.union == nil {
		return "Variant(empty)"
	}
	return fmt.Sprintf("Variant[%s](%v)", v.union.types[v.index], v.value)
}
