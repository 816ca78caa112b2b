package funcz

import "sync"

// Memoize caches the results of f by argument. The cache is unbounded and
// safe for concurrent use. f may run more than once for the same argument
// when callers race on a miss.
func Memoize[A comparable, R any](f func(A) R) func(A) R {
	var mu sync.Mutex
	cache := make(map[A]R)
	return func(a A) R {
		mu.Lock()
		if r, ok := cache[a]; ok {
			mu.Unlock()
			return r
		}
		mu.Unlock()

		r := f(a)

		mu.Lock()
		cache[a] = r
		mu.Unlock()
		return r
	}
}

type argPair[A, B comparable] struct {
	a A
	b B
}

// MemoizeBinary caches a binary function by its argument pair.
func MemoizeBinary[A, B comparable, R any](f func(A, B) R) func(A, B) R {
	m := Memoize(func(p argPair[A, B]) R {
		return f(p.a, p.b)
	})
	return func(a A, b B) R {
		return m(argPair[A, B]{a, b})
	}
}

// MemoizeRecursive memoizes a function that calls itself. f receives the
// memoized function as its first argument and must recurse through it:
//
//	fib := funcz.MemoizeRecursive(func(self func(int) int, n int) int {
//		if n < 2 {
//			return n
//		}
//		return self(n-1) + self(n-2)
//	})
func MemoizeRecursive[A comparable, R any](f func(self func(A) R, a A) R) func(A) R {
	var memo func(A) R
	memo = Memoize(func(a A) R {
		return f(memo, a)
	})
	return memo
}
