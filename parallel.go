package funcz

import (
	"runtime"
	"sync"
)

// TransformParallelly applies f to every element of xs concurrently, with at
// most runtime.GOMAXPROCS(0) calls in flight. The result keeps the order of
// xs. f must be safe for concurrent use.
func TransformParallelly[A, R any](f func(A) R, xs []A) []R {
	return TransformParallellyN(runtime.GOMAXPROCS(0), f, xs)
}

// TransformParallellyN is TransformParallelly with at most workers calls in
// flight. A non-positive worker count means one.
func TransformParallellyN[A, R any](workers int, f func(A) R, xs []A) []R {
	if workers <= 0 {
		workers = 1
	}
	out := make([]R, len(xs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, x := range xs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, x A) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = f(x)
		}(i, x)
	}
	wg.Wait()
	return out
}

// ReduceParallelly folds xs with f starting from init. The input is split
// into one chunk per worker, chunks are folded concurrently and the partial
// results are folded left to right. f must be associative.
func ReduceParallelly[T any](f func(T, T) T, init T, xs []T) T {
	workers := runtime.GOMAXPROCS(0)
	if len(xs) < 2*workers {
		acc := init
		for _, x := range xs {
			acc = f(acc, x)
		}
		return acc
	}

	size := (len(xs) + workers - 1) / workers
	var chunks [][]T
	for start := 0; start < len(xs); start += size {
		chunks = append(chunks, xs[start:min(start+size, len(xs))])
	}
	partials := TransformParallellyN(workers, func(chunk []T) T {
		acc := chunk[0]
		for _, x := range chunk[1:] {
			acc = f(acc, x)
		}
		return acc
	}, chunks)

	acc := init
	for _, p := range partials {
		acc = f(acc, p)
	}
	return acc
}
