// Package fwd provides deferred forms of the seq combinators for building
// left-to-right pipelines.
//
// Each function binds every argument except the slice and returns a unary
// step:
//
//	digits := fwd.Apply4(seq.Numbers(0, 10),
//	    fwd.Transform(func(n int) int { return 3 * n }),
//	    fwd.DropIf(isOdd),
//	    fwd.Transform(digitCount),
//	    fwd.Sum[int](),
//	)
//
// For any step, fwd.Op(args...)(xs) == seq.Op(args..., xs).
package fwd

import (
	"cmp"

	"github.com/zoobzio/funcz"
	"github.com/zoobzio/funcz/seq"
)

// Compose2 chains two steps left to right.
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return funcz.Compose2(f, g)
}

// Compose3 chains three steps left to right.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return funcz.Compose3(f, g, h)
}

// Compose4 chains four steps left to right.
func Compose4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, i func(D) E) func(A) E {
	return funcz.Compose4(f, g, h, i)
}

// Compose5 chains five steps left to right.
func Compose5[A, B, C, D, E, F any](f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F) func(A) F {
	return funcz.Compose5(f, g, h, i, j)
}

// Compose6 chains six steps left to right.
func Compose6[A, B, C, D, E, F, G any](f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F, k func(F) G) func(A) G {
	return funcz.Compose6(f, g, h, i, j, k)
}

// Apply1 runs x through f.
func Apply1[A, B any](x A, f func(A) B) B {
	return f(x)
}

// Apply2 runs x through f then g.
func Apply2[A, B, C any](x A, f func(A) B, g func(B) C) C {
	return g(f(x))
}

// Apply3 runs x through three steps.
func Apply3[A, B, C, D any](x A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(x)))
}

// Apply4 runs x through four steps.
func Apply4[A, B, C, D, E any](x A, f func(A) B, g func(B) C, h func(C) D, i func(D) E) E {
	return i(h(g(f(x))))
}

// Apply5 runs x through five steps.
func Apply5[A, B, C, D, E, F any](x A, f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F) F {
	return j(i(h(g(f(x)))))
}

// Apply6 runs x through six steps.
func Apply6[A, B, C, D, E, F, G any](x A, f func(A) B, g func(B) C, h func(C) D, i func(D) E, j func(E) F, k func(F) G) G {
	return k(j(i(h(g(f(x))))))
}

// ApplyAny runs x through any number of steps whose types are only known at
// run time. The steps are checked like funcz.Compose before any of them
// runs.
func ApplyAny(x any, steps ...any) (any, error) {
	return funcz.ApplyAll(x, steps...)
}

// AndThenMaybe is the deferred form of funcz.AndThenMaybe.
func AndThenMaybe[A, B any](f func(A) funcz.Maybe[B]) func(funcz.Maybe[A]) funcz.Maybe[B] {
	return func(m funcz.Maybe[A]) funcz.Maybe[B] {
		return funcz.AndThenMaybe(m, f)
	}
}

// LiftMaybe is the deferred form of funcz.LiftMaybe.
func LiftMaybe[A, B any](f func(A) B) func(funcz.Maybe[A]) funcz.Maybe[B] {
	return funcz.LiftMaybe(f)
}

// Transform is the deferred form of seq.Transform.
func Transform[A, B any](f func(A) B) func([]A) []B {
	return func(xs []A) []B { return seq.Transform(f, xs) }
}

// TransformWithIdx is the deferred form of seq.TransformWithIdx.
func TransformWithIdx[A, B any](f func(int, A) B) func([]A) []B {
	return func(xs []A) []B { return seq.TransformWithIdx(f, xs) }
}

// KeepIf is the deferred form of seq.KeepIf.
func KeepIf[T any](p func(T) bool) func([]T) []T {
	return func(xs []T) []T { return seq.KeepIf(p, xs) }
}

// DropIf is the deferred form of seq.DropIf.
func DropIf[T any](p func(T) bool) func([]T) []T {
	return func(xs []T) []T { return seq.DropIf(p, xs) }
}

// Reverse is the deferred form of seq.Reverse.
func Reverse[T any]() func([]T) []T {
	return seq.Reverse[T]
}

// Sort is the deferred form of seq.Sort.
func Sort[T cmp.Ordered]() func([]T) []T {
	return seq.Sort[T]
}

// SortBy is the deferred form of seq.SortBy.
func SortBy[T any](less func(a, b T) bool) func([]T) []T {
	return func(xs []T) []T { return seq.SortBy(less, xs) }
}

// SortOn is the deferred form of seq.SortOn.
func SortOn[T any, K cmp.Ordered](f func(T) K) func([]T) []T {
	return func(xs []T) []T { return seq.SortOn(f, xs) }
}

// Unique is the deferred form of seq.Unique.
func Unique[T comparable]() func([]T) []T {
	return seq.Unique[T]
}

// Take is the deferred form of seq.Take.
func Take[T any](n int) func([]T) []T {
	return func(xs []T) []T { return seq.Take(n, xs) }
}

// Drop is the deferred form of seq.Drop.
func Drop[T any](n int) func([]T) []T {
	return func(xs []T) []T { return seq.Drop(n, xs) }
}

// Append binds the leading slice: Append(xs)(ys) is xs followed by ys.
func Append[T any](xs []T) func([]T) []T {
	return func(ys []T) []T { return seq.Append(xs, ys) }
}

// Concat is the deferred form of seq.Concat.
func Concat[T any]() func([][]T) []T {
	return seq.Concat[T]
}

// Intersperse is the deferred form of seq.Intersperse.
func Intersperse[T any](sep T) func([]T) []T {
	return func(xs []T) []T { return seq.Intersperse(sep, xs) }
}

// Replicate is the deferred form of seq.Replicate.
func Replicate[T any](n int) func(T) []T {
	return func(x T) []T { return seq.Replicate(n, x) }
}

// FoldLeft is the deferred form of seq.FoldLeft.
func FoldLeft[T, Acc any](f func(Acc, T) Acc, init Acc) func([]T) Acc {
	return func(xs []T) Acc { return seq.FoldLeft(f, init, xs) }
}

// FoldRight is the deferred form of seq.FoldRight.
func FoldRight[T, Acc any](f func(T, Acc) Acc, init Acc) func([]T) Acc {
	return func(xs []T) Acc { return seq.FoldRight(f, init, xs) }
}

// Sum is the deferred form of seq.Sum.
func Sum[T seq.Number]() func([]T) T {
	return seq.Sum[T]
}

// Product is the deferred form of seq.Product.
func Product[T seq.Number]() func([]T) T {
	return seq.Product[T]
}

// Count is the deferred form of seq.Count.
func Count[T comparable](x T) func([]T) int {
	return func(xs []T) int { return seq.Count(x, xs) }
}

// CountIf is the deferred form of seq.CountIf.
func CountIf[T any](p func(T) bool) func([]T) int {
	return func(xs []T) int { return seq.CountIf(p, xs) }
}

// AllBy is the deferred form of seq.AllBy.
func AllBy[T any](p func(T) bool) func([]T) bool {
	return func(xs []T) bool { return seq.AllBy(p, xs) }
}

// AnyBy is the deferred form of seq.AnyBy.
func AnyBy[T any](p func(T) bool) func([]T) bool {
	return func(xs []T) bool { return seq.AnyBy(p, xs) }
}

// IsElemOf is the deferred form of seq.IsElemOf.
func IsElemOf[T comparable](x T) func([]T) bool {
	return func(xs []T) bool { return seq.IsElemOf(x, xs) }
}

// Head is the deferred form of seq.Head.
func Head[T any]() func([]T) funcz.Maybe[T] {
	return seq.Head[T]
}

// Last is the deferred form of seq.Last.
func Last[T any]() func([]T) funcz.Maybe[T] {
	return seq.Last[T]
}

// FindFirstBy is the deferred form of seq.FindFirstBy.
func FindFirstBy[T any](p func(T) bool) func([]T) funcz.Maybe[T] {
	return func(xs []T) funcz.Maybe[T] { return seq.FindFirstBy(p, xs) }
}

// Numbers binds the start: Numbers(start)(end) == seq.Numbers(start, end).
func Numbers[T seq.Number](start T) func(T) []T {
	return func(end T) []T { return seq.Numbers(start, end) }
}

// GroupBy is the deferred form of seq.GroupBy.
func GroupBy[T any](eq func(a, b T) bool) func([]T) [][]T {
	return func(xs []T) [][]T { return seq.GroupBy(eq, xs) }
}

// SplitEvery is the deferred form of seq.SplitEvery.
func SplitEvery[T any](n int) func([]T) [][]T {
	return func(xs []T) [][]T { return seq.SplitEvery(n, xs) }
}

// CreateMapWith is the deferred form of seq.CreateMapWith.
func CreateMapWith[K comparable, V any](f func(K) V) func([]K) map[K]V {
	return func(keys []K) map[K]V { return seq.CreateMapWith(f, keys) }
}

// Zip binds the left slice: Zip(xs)(ys) pairs xs[i] with ys[i].
func Zip[A, B any](xs []A) func([]B) []seq.Pair[A, B] {
	return func(ys []B) []seq.Pair[A, B] { return seq.Zip(xs, ys) }
}

// SetUnion is the deferred form of seq.SetUnion.
func SetUnion[T comparable](xs []T) func([]T) []T {
	return func(ys []T) []T { return seq.SetUnion(xs, ys) }
}

// SetIntersection is the deferred form of seq.SetIntersection.
func SetIntersection[T comparable](xs []T) func([]T) []T {
	return func(ys []T) []T { return seq.SetIntersection(xs, ys) }
}

// SetDifference is the deferred form of seq.SetDifference.
func SetDifference[T comparable](xs []T) func([]T) []T {
	return func(ys []T) []T { return seq.SetDifference(xs, ys) }
}

// MeanStddev is the deferred form of seq.MeanStddev.
func MeanStddev[T seq.Number]() func([]T) seq.Pair[float64, float64] {
	return func(xs []T) seq.Pair[float64, float64] {
		m, s := seq.MeanStddev(xs)
		return seq.Pair[float64, float64]{First: m, Second: s}
	}
}
