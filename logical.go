package funcz

// Not negates a predicate.
func Not[X any](p func(X) bool) func(X) bool {
	return func(x X) bool {
		return !p(x)
	}
}

// And is true when both predicates hold. q is not evaluated when p fails.
func And[X any](p, q func(X) bool) func(X) bool {
	return func(x X) bool {
		return p(x) && q(x)
	}
}

// Or is true when either predicate holds. q is not evaluated when p holds.
func Or[X any](p, q func(X) bool) func(X) bool {
	return func(x X) bool {
		return p(x) || q(x)
	}
}

// Xor is true when exactly one predicate holds. Both are always evaluated.
func Xor[X any](p, q func(X) bool) func(X) bool {
	return func(x X) bool {
		a := p(x)
		b := q(x)
		return a != b
	}
}
