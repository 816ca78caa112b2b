// Package seq provides generic combinators over slices.
//
// Every function takes the slice it works on as its last argument, so that
// the fwd package can bind the leading arguments and leave a unary step:
//
//	seq.KeepIf(isEven, xs) == fwd.KeepIf(isEven)(xs)
//
// Functions never modify their inputs. Results are freshly allocated.
package seq

import (
	"cmp"
	"math"
	"slices"

	"github.com/zoobzio/funcz"
)

// Number is satisfied by the built-in integer and floating point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Pair is the element type produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Transform applies f to every element.
func Transform[A, B any](f func(A) B, xs []A) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// TransformWithIdx applies f to every element and its index.
func TransformWithIdx[A, B any](f func(int, A) B, xs []A) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(i, x)
	}
	return out
}

// KeepIf keeps the elements satisfying p.
func KeepIf[T any](p func(T) bool, xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if p(x) {
			out = append(out, x)
		}
	}
	return out
}

// DropIf removes the elements satisfying p.
func DropIf[T any](p func(T) bool, xs []T) []T {
	return KeepIf(func(x T) bool { return !p(x) }, xs)
}

// Reverse returns the elements in reverse order.
func Reverse[T any](xs []T) []T {
	out := slices.Clone(xs)
	slices.Reverse(out)
	return out
}

// Sort returns the elements in ascending order.
func Sort[T cmp.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

// SortBy returns the elements ordered by less. The sort is stable.
func SortBy[T any](less func(a, b T) bool, xs []T) []T {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return out
}

// SortOn returns the elements ordered by the key f computes. The sort is
// stable.
func SortOn[T any, K cmp.Ordered](f func(T) K, xs []T) []T {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(f(a), f(b))
	})
	return out
}

// Unique collapses runs of equal adjacent elements into one. Sort first to
// remove all duplicates.
func Unique[T comparable](xs []T) []T {
	return slices.Compact(slices.Clone(xs))
}

// Take returns the first n elements, or all of them when there are fewer.
func Take[T any](n int, xs []T) []T {
	n = max(0, min(n, len(xs)))
	return slices.Clone(xs[:n])
}

// Drop returns everything after the first n elements.
func Drop[T any](n int, xs []T) []T {
	n = max(0, min(n, len(xs)))
	return slices.Clone(xs[n:])
}

// Append returns xs followed by ys.
func Append[T any](xs, ys []T) []T {
	out := make([]T, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}

// Concat flattens one level of nesting.
func Concat[T any](xss [][]T) []T {
	return slices.Concat(xss...)
}

// Intersperse puts sep between every two elements.
func Intersperse[T any](sep T, xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}
	out := make([]T, 0, 2*len(xs)-1)
	for i, x := range xs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, x)
	}
	return out
}

// Replicate returns n copies of x.
func Replicate[T any](n int, x T) []T {
	out := make([]T, max(0, n))
	for i := range out {
		out[i] = x
	}
	return out
}

// FoldLeft combines the elements from the left: f(f(f(init, x0), x1), x2).
func FoldLeft[T, Acc any](f func(Acc, T) Acc, init Acc, xs []T) Acc {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight combines the elements from the right: f(x0, f(x1, f(x2, init))).
func FoldRight[T, Acc any](f func(T, Acc) Acc, init Acc, xs []T) Acc {
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Sum adds the elements. The sum of nothing is zero.
func Sum[T Number](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

// Product multiplies the elements. The product of nothing is one.
func Product[T Number](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}

// Count returns how many elements equal x.
func Count[T comparable](x T, xs []T) int {
	return CountIf(func(y T) bool { return y == x }, xs)
}

// CountIf returns how many elements satisfy p.
func CountIf[T any](p func(T) bool, xs []T) int {
	n := 0
	for _, x := range xs {
		if p(x) {
			n++
		}
	}
	return n
}

// AllBy reports whether every element satisfies p. It is true for an empty
// slice.
func AllBy[T any](p func(T) bool, xs []T) bool {
	for _, x := range xs {
		if !p(x) {
			return false
		}
	}
	return true
}

// AnyBy reports whether some element satisfies p.
func AnyBy[T any](p func(T) bool, xs []T) bool {
	return slices.ContainsFunc(xs, p)
}

// IsElemOf reports whether x occurs in xs.
func IsElemOf[T comparable](x T, xs []T) bool {
	return slices.Contains(xs, x)
}

// Head returns the first element.
func Head[T any](xs []T) funcz.Maybe[T] {
	if len(xs) == 0 {
		return funcz.Nothing[T]()
	}
	return funcz.Just(xs[0])
}

// Last returns the last element.
func Last[T any](xs []T) funcz.Maybe[T] {
	if len(xs) == 0 {
		return funcz.Nothing[T]()
	}
	return funcz.Just(xs[len(xs)-1])
}

// FindFirstBy returns the first element satisfying p.
func FindFirstBy[T any](p func(T) bool, xs []T) funcz.Maybe[T] {
	if i := slices.IndexFunc(xs, p); i >= 0 {
		return funcz.Just(xs[i])
	}
	return funcz.Nothing[T]()
}

// Numbers returns start, start+1, ... up to but excluding end.
func Numbers[T Number](start, end T) []T {
	var out []T
	for n := start; n < end; n++ {
		out = append(out, n)
	}
	return out
}

// GroupBy splits xs into runs of adjacent elements for which eq holds
// between neighbours.
func GroupBy[T any](eq func(a, b T) bool, xs []T) [][]T {
	var groups [][]T
	for i, x := range xs {
		if i == 0 || !eq(xs[i-1], x) {
			groups = append(groups, []T{x})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], x)
	}
	return groups
}

// SplitEvery cuts xs into chunks of n. The last chunk may be shorter. n
// must be positive.
func SplitEvery[T any](n int, xs []T) [][]T {
	if n <= 0 {
		panic("seq: SplitEvery needs a positive chunk size")
	}
	var out [][]T
	for start := 0; start < len(xs); start += n {
		out = append(out, slices.Clone(xs[start:min(start+n, len(xs))]))
	}
	return out
}

// CreateMapWith maps every key to f(key).
func CreateMapWith[K comparable, V any](f func(K) V, keys []K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		out[k] = f(k)
	}
	return out
}

// Zip pairs up elements by position. The result is as long as the shorter
// input.
func Zip[A, B any](xs []A, ys []B) []Pair[A, B] {
	n := min(len(xs), len(ys))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: xs[i], Second: ys[i]}
	}
	return out
}

// SetUnion returns the distinct elements of xs followed by those of ys not
// already present, in order of first appearance.
func SetUnion[T comparable](xs, ys []T) []T {
	seen := make(map[T]struct{}, len(xs)+len(ys))
	out := make([]T, 0, len(xs)+len(ys))
	for _, x := range slices.Concat(xs, ys) {
		if _, ok := seen[x]; !ok {
			seen[x] = struct{}{}
			out = append(out, x)
		}
	}
	return out
}

// SetIntersection returns the distinct elements of xs that also occur in ys.
func SetIntersection[T comparable](xs, ys []T) []T {
	in := setOf(ys)
	return SetUnion(nil, KeepIf(func(x T) bool { _, ok := in[x]; return ok }, xs))
}

// SetDifference returns the distinct elements of xs that do not occur in ys.
func SetDifference[T comparable](xs, ys []T) []T {
	in := setOf(ys)
	return SetUnion(nil, DropIf(func(x T) bool { _, ok := in[x]; return ok }, xs))
}

func setOf[T comparable](xs []T) map[T]struct{} {
	set := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}
	return set
}

// MeanStddev returns the mean and the population standard deviation. Both
// are zero for an empty slice.
func MeanStddev[T Number](xs []T) (mean, stddev float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += float64(x)
	}
	mean /= float64(len(xs))
	var sq float64
	for _, x := range xs {
		d := float64(x) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(xs)))
}
