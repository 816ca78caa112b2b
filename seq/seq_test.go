package seq

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/zoobzio/funcz"
)

func isOdd(n int) bool { return n%2 != 0 }

func TestTransforming(t *testing.T) {
	xs := []int{3, 1, 2}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Transform", Transform(strconv.Itoa, xs), []string{"3", "1", "2"}},
		{"TransformWithIdx", TransformWithIdx(func(i, x int) int { return i * x }, xs), []int{0, 1, 4}},
		{"KeepIf", KeepIf(isOdd, xs), []int{3, 1}},
		{"DropIf", DropIf(isOdd, xs), []int{2}},
		{"Reverse", Reverse(xs), []int{2, 1, 3}},
		{"Sort", Sort(xs), []int{1, 2, 3}},
		{"SortBy", SortBy(func(a, b int) bool { return a > b }, xs), []int{3, 2, 1}},
		{"SortOn Stable", SortOn(func(s string) int { return len(s) }, []string{"bb", "a", "cc", "d"}), []string{"a", "d", "bb", "cc"}},
		{"Unique", Unique([]int{1, 1, 2, 1, 1}), []int{1, 2, 1}},
		{"Take", Take(2, xs), []int{3, 1}},
		{"Take Too Many", Take(9, xs), []int{3, 1, 2}},
		{"Take Negative", Take(-1, xs), []int{}},
		{"Drop", Drop(1, xs), []int{1, 2}},
		{"Drop Too Many", Drop(9, xs), []int{}},
		{"Append", Append(xs, []int{9}), []int{3, 1, 2, 9}},
		{"Concat", Concat([][]int{{1}, {}, {2, 3}}), []int{1, 2, 3}},
		{"Intersperse", Intersperse(0, xs), []int{3, 0, 1, 0, 2}},
		{"Intersperse Empty", Intersperse(0, nil), []int{}},
		{"Replicate", Replicate(3, "x"), []string{"x", "x", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, tt.got)
			}
		})
	}

	t.Run("Inputs Unchanged", func(t *testing.T) {
		in := []int{3, 1, 2}
		Sort(in)
		Reverse(in)
		Unique(in)
		if !reflect.DeepEqual(in, []int{3, 1, 2}) {
			t.Errorf("input was modified: %v", in)
		}
	})
}

func TestFolding(t *testing.T) {
	xs := []int{1, 2, 3, 4}

	t.Run("FoldLeft And FoldRight", func(t *testing.T) {
		left := FoldLeft(func(acc string, x int) string { return "(" + acc + strconv.Itoa(x) + ")" }, "", xs)
		if left != "((((1)2)3)4)" {
			t.Errorf("unexpected left fold %q", left)
		}
		right := FoldRight(func(x int, acc string) string { return "(" + strconv.Itoa(x) + acc + ")" }, "", xs)
		if right != "(1(2(3(4))))" {
			t.Errorf("unexpected right fold %q", right)
		}
	})

	t.Run("Sum And Product", func(t *testing.T) {
		if Sum(xs) != 10 || Product(xs) != 24 {
			t.Errorf("expected 10 and 24, got %d and %d", Sum(xs), Product(xs))
		}
		if Sum([]float64{}) != 0 || Product([]int{}) != 1 {
			t.Error("unexpected identity values")
		}
	})

	t.Run("Counting", func(t *testing.T) {
		if Count(1, []int{1, 2, 1}) != 2 || CountIf(isOdd, xs) != 2 {
			t.Error("count mismatch")
		}
	})

	t.Run("Predicates", func(t *testing.T) {
		if !AllBy(isOdd, nil) || AllBy(isOdd, xs) || !AnyBy(isOdd, xs) || AnyBy(isOdd, []int{2}) {
			t.Error("predicate mismatch")
		}
		if !IsElemOf(3, xs) || IsElemOf(5, xs) {
			t.Error("IsElemOf mismatch")
		}
	})
}

func TestLookup(t *testing.T) {
	xs := []int{4, 5, 6}
	if !Head(xs).Equal(funcz.Just(4)) || !Last(xs).Equal(funcz.Just(6)) {
		t.Error("Head or Last mismatch")
	}
	if Head[int](nil).IsJust() || Last[int](nil).IsJust() {
		t.Error("expected Nothing for empty input")
	}
	if !FindFirstBy(isOdd, xs).Equal(funcz.Just(5)) || FindFirstBy(isOdd, []int{2}).IsJust() {
		t.Error("FindFirstBy mismatch")
	}
}

func TestGenerating(t *testing.T) {
	t.Run("Numbers", func(t *testing.T) {
		if got := Numbers(2, 5); !reflect.DeepEqual(got, []int{2, 3, 4}) {
			t.Errorf("expected [2 3 4], got %v", got)
		}
		if got := Numbers(5, 5); len(got) != 0 {
			t.Errorf("expected empty range, got %v", got)
		}
	})

	t.Run("GroupBy", func(t *testing.T) {
		got := GroupBy(func(a, b int) bool { return isOdd(a) == isOdd(b) }, []int{1, 3, 2, 4, 5})
		if !reflect.DeepEqual(got, [][]int{{1, 3}, {2, 4}, {5}}) {
			t.Errorf("unexpected groups %v", got)
		}
	})

	t.Run("SplitEvery", func(t *testing.T) {
		got := SplitEvery(2, []int{1, 2, 3, 4, 5})
		if !reflect.DeepEqual(got, [][]int{{1, 2}, {3, 4}, {5}}) {
			t.Errorf("unexpected chunks %v", got)
		}
		defer func() {
			if recover() == nil {
				t.Error("expected panic for zero chunk size")
			}
		}()
		SplitEvery(0, []int{1})
	})

	t.Run("CreateMapWith", func(t *testing.T) {
		got := CreateMapWith(strings.ToUpper, []string{"a", "b"})
		if !reflect.DeepEqual(got, map[string]string{"a": "A", "b": "B"}) {
			t.Errorf("unexpected map %v", got)
		}
	})

	t.Run("Zip", func(t *testing.T) {
		got := Zip([]int{1, 2, 3}, []string{"a", "b"})
		want := []Pair[int, string]{{1, "a"}, {2, "b"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestSets(t *testing.T) {
	xs := []int{1, 2, 2, 3}
	ys := []int{3, 4, 1}
	if got := SetUnion(xs, ys); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("unexpected union %v", got)
	}
	if got := SetIntersection(xs, ys); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("unexpected intersection %v", got)
	}
	if got := SetDifference(xs, ys); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("unexpected difference %v", got)
	}
}

func TestMeanStddev(t *testing.T) {
	mean, sd := MeanStddev([]int{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 || sd != 2 {
		t.Errorf("expected 5 and 2, got %v and %v", mean, sd)
	}
	mean, sd = MeanStddev([]float64{})
	if mean != 0 || sd != 0 || math.IsNaN(mean) {
		t.Errorf("expected zeros for empty input, got %v and %v", mean, sd)
	}
}
