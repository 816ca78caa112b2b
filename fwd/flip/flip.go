// Package flip binds the last argument of a seq combinator instead of the
// leading ones: flip.Op(last)(first) == seq.Op(first, last).
//
//	hasThree := flip.IsElemOf([]int{1, 2, 3})
//	hasThree(3) // true
package flip

import (
	"cmp"

	"github.com/zoobzio/funcz"
	"github.com/zoobzio/funcz/seq"
)

// Transform is seq.Transform with its last argument bound first.
func Transform[A, B any](xs []A) func(func(A) B) []B {
	return func(f func(A) B) []B { return seq.Transform(f, xs) }
}

// KeepIf is seq.KeepIf with its last argument bound first.
func KeepIf[T any](xs []T) func(func(T) bool) []T {
	return func(p func(T) bool) []T { return seq.KeepIf(p, xs) }
}

// DropIf is seq.DropIf with its last argument bound first.
func DropIf[T any](xs []T) func(func(T) bool) []T {
	return func(p func(T) bool) []T { return seq.DropIf(p, xs) }
}

// SortBy is seq.SortBy with its last argument bound first.
func SortBy[T any](xs []T) func(func(a, b T) bool) []T {
	return func(less func(a, b T) bool) []T { return seq.SortBy(less, xs) }
}

// SortOn is seq.SortOn with its last argument bound first.
func SortOn[T any, K cmp.Ordered](xs []T) func(func(T) K) []T {
	return func(f func(T) K) []T { return seq.SortOn(f, xs) }
}

// Take is seq.Take with its last argument bound first.
func Take[T any](xs []T) func(int) []T {
	return func(n int) []T { return seq.Take(n, xs) }
}

// Drop is seq.Drop with its last argument bound first.
func Drop[T any](xs []T) func(int) []T {
	return func(n int) []T { return seq.Drop(n, xs) }
}

// Append binds the trailing slice: Append(ys)(xs) is xs followed by ys.
func Append[T any](ys []T) func([]T) []T {
	return func(xs []T) []T { return seq.Append(xs, ys) }
}

// Intersperse is seq.Intersperse with its last argument bound first.
func Intersperse[T any](xs []T) func(T) []T {
	return func(sep T) []T { return seq.Intersperse(sep, xs) }
}

// Replicate is seq.Replicate with its last argument bound first.
func Replicate[T any](x T) func(int) []T {
	return func(n int) []T { return seq.Replicate(n, x) }
}

// Count is seq.Count with its last argument bound first.
func Count[T comparable](xs []T) func(T) int {
	return func(x T) int { return seq.Count(x, xs) }
}

// CountIf is seq.CountIf with its last argument bound first.
func CountIf[T any](xs []T) func(func(T) bool) int {
	return func(p func(T) bool) int { return seq.CountIf(p, xs) }
}

// AllBy is seq.AllBy with its last argument bound first.
func AllBy[T any](xs []T) func(func(T) bool) bool {
	return func(p func(T) bool) bool { return seq.AllBy(p, xs) }
}

// AnyBy is seq.AnyBy with its last argument bound first.
func AnyBy[T any](xs []T) func(func(T) bool) bool {
	return func(p func(T) bool) bool { return seq.AnyBy(p, xs) }
}

// IsElemOf is seq.IsElemOf with its last argument bound first.
func IsElemOf[T comparable](xs []T) func(T) bool {
	return func(x T) bool { return seq.IsElemOf(x, xs) }
}

// FindFirstBy is seq.FindFirstBy with its last argument bound first.
func FindFirstBy[T any](xs []T) func(func(T) bool) funcz.Maybe[T] {
	return func(p func(T) bool) funcz.Maybe[T] { return seq.FindFirstBy(p, xs) }
}

// Numbers binds the end: Numbers(end)(start) == seq.Numbers(start, end).
func Numbers[T seq.Number](end T) func(T) []T {
	return func(start T) []T { return seq.Numbers(start, end) }
}

// GroupBy is seq.GroupBy with its last argument bound first.
func GroupBy[T any](xs []T) func(func(a, b T) bool) [][]T {
	return func(eq func(a, b T) bool) [][]T { return seq.GroupBy(eq, xs) }
}

// SplitEvery is seq.SplitEvery with its last argument bound first.
func SplitEvery[T any](xs []T) func(int) [][]T {
	return func(n int) [][]T { return seq.SplitEvery(n, xs) }
}

// CreateMapWith is seq.CreateMapWith with its last argument bound first.
func CreateMapWith[K comparable, V any](keys []K) func(func(K) V) map[K]V {
	return func(f func(K) V) map[K]V { return seq.CreateMapWith(f, keys) }
}

// Zip binds the right slice: Zip(ys)(xs) pairs xs[i] with ys[i].
func Zip[A, B any](ys []B) func([]A) []seq.Pair[A, B] {
	return func(xs []A) []seq.Pair[A, B] { return seq.Zip(xs, ys) }
}

// SetUnion is seq.SetUnion with its last argument bound first.
func SetUnion[T comparable](ys []T) func([]T) []T {
	return func(xs []T) []T { return seq.SetUnion(xs, ys) }
}

// SetIntersection is seq.SetIntersection with its last argument bound first.
func SetIntersection[T comparable](ys []T) func([]T) []T {
	return func(xs []T) []T { return seq.SetIntersection(xs, ys) }
}

// SetDifference binds the subtrahend: SetDifference(ys)(xs) is xs without ys.
func SetDifference[T comparable](ys []T) func([]T) []T {
	return func(xs []T) []T { return seq.SetDifference(xs, ys) }
}
