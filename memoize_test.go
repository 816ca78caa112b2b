package funcz

import (
	"sync"
	"testing"
)

func TestMemoize(t *testing.T) {
	t.Run("Caches By Argument", func(t *testing.T) {
		calls := 0
		square := Memoize(func(n int) int { calls++; return n * n })
		square(4)
		square(4)
		if got := square(5); got != 25 {
			t.Errorf("expected 25, got %d", got)
		}
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("Binary", func(t *testing.T) {
		calls := 0
		pow := MemoizeBinary(func(base, exp int) int {
			calls++
			r := 1
			for i := 0; i < exp; i++ {
				r *= base
			}
			return r
		})
		pow(2, 10)
		if got := pow(2, 10); got != 1024 {
			t.Errorf("expected 1024, got %d", got)
		}
		pow(10, 2)
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("Recursive", func(t *testing.T) {
		calls := 0
		fib := MemoizeRecursive(func(self func(int) int, n int) int {
			calls++
			if n < 2 {
				return n
			}
			return self(n-1) + self(n-2)
		})
		if got := fib(50); got != 12586269025 {
			t.Errorf("expected 12586269025, got %d", got)
		}
		if calls != 51 {
			t.Errorf("expected each n computed once (51 calls), got %d", calls)
		}
	})

	t.Run("Concurrent Use", func(t *testing.T) {
		var mu sync.Mutex
		calls := map[int]int{}
		f := Memoize(func(n int) int {
			mu.Lock()
			calls[n]++
			mu.Unlock()
			return n + 1
		})
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				if got := f(n % 10); got != n%10+1 {
					t.Errorf("expected %d, got %d", n%10+1, got)
				}
			}(i)
		}
		wg.Wait()
		if len(calls) != 10 {
			t.Errorf("expected 10 distinct arguments, got %d", len(calls))
		}
	})
}
