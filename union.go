package funcz

import (
	"reflect"
	"strings"
)

// Union is a closed, ordered set of alternative types. It is immutable once
// built and may be shared freely.
//
// Alternatives are concrete types. Interface types are rejected because a
// value could then satisfy more than one slot and dispatch would have to
// guess.
type Union struct {
	index map[reflect.Type]int
	types []reflect.Type
}

// NewUnion builds a union from one or more distinct types.
//
//	u, err := funcz.NewUnion(funcz.TypeOf[int](), funcz.TypeOf[string]())
func NewUnion(types ...reflect.Type) (*Union, error) {
	if len(types) == 0 {
		return nil, contractErr("union", -1, nil, ErrNoTypes, "")
	}
	u := &Union{
		types: make([]reflect.Type, len(types)),
		index: make(map[reflect.Type]int, len(types)),
	}
	for i, t := range types {
		if t == nil {
			return nil, contractErr("union", i, nil, ErrNilType, "")
		}
		if t.Kind() == reflect.Interface {
			return nil, contractErr("union", i, t, ErrInterfaceType, "")
		}
		if prev, dup := u.index[t]; dup {
			return nil, contractErr("union", i, t, ErrDuplicateType, "already at position %d", prev)
		}
		u.types[i] = t
		u.index[t] = i
	}
	return u, nil
}

// MustUnion is like NewUnion but panics on error.
func MustUnion(types ...reflect.Type) *Union {
	u, err := NewUnion(types...)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the number of alternatives.
func (u *Union) Len() int {
	return len(u.types)
}

// Types returns a copy of the alternatives in declaration order.
func (u *Union) Types() []reflect.Type {
	out := make([]reflect.Type, len(u.types))
	copy(out, u.types)
	return out
}

// Type returns the i-th alternative.
func (u *Union) Type(i int) reflect.Type {
	return u.types[i]
}

// IndexOf returns the position of t, or -1.
func (u *Union) IndexOf(t reflect.Type) int {
	if i, ok := u.index[t]; ok {
		return i
	}
	return -1
}

// Contains reports whether t is an alternative.
func (u *Union) Contains(t reflect.Type) bool {
	_, ok := u.index[t]
	return ok
}

func (u *Union) String() string {
	return "Union[" + typeNames(u.types) + "]"
}

// sameAs reports whether both unions declare the same alternatives in the
// same order.
func (u *Union) sameAs(o *Union) bool {
	if u == o {
		return true
	}
	if u == nil || o == nil || len(u.types) != len(o.types) {
		return false
	}
	for i, t := range u.types {
		if o.types[i] != t {
			return false
		}
	}
	return true
}

func (u *Union) missing(covered []bool) []string {
	var names []string
	for i, ok := range covered {
		if !ok {
			names = append(names, u.types[i].String())
		}
	}
	return names
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
