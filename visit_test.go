package funcz

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestVisitor(t *testing.T) {
	u := intString()

	t.Run("Invokes Exactly The Active Handler", func(t *testing.T) {
		intCalls, stringCalls := 0, 0
		vis, err := NewVisitor[string](u,
			func(n int) string { intCalls++; return "int " + strconv.Itoa(n) },
			func(s string) string { stringCalls++; return "string " + s },
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := vis.Visit(MustNew(u, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "int 3" {
			t.Errorf("expected \"int 3\", got %q", got)
		}
		if intCalls != 1 || stringCalls != 0 {
			t.Errorf("expected 1 int call and 0 string calls, got %d and %d", intCalls, stringCalls)
		}
	})

	t.Run("Reusable", func(t *testing.T) {
		vis, err := NewVisitor[int](u,
			func(n int) int { return n },
			func(s string) int { return len(s) },
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for v, want := range map[string]int{"abc": 3, "": 0} {
			if got, _ := vis.Visit(MustNew(u, v)); got != want {
				t.Errorf("expected %d, got %d", want, got)
			}
		}
		if vis.Union() != u {
			t.Error("unexpected union")
		}
	})

	t.Run("Handler Order Does Not Matter", func(t *testing.T) {
		got, err := Visit[string](MustNew(u, "x"),
			func(s string) string { return "s" },
			func(n int) string { return "n" },
		)
		if err != nil || got != "s" {
			t.Errorf("expected \"s\", nil; got %q, %v", got, err)
		}
	})

	t.Run("Result Assignable To Interface", func(t *testing.T) {
		got, err := Visit[any](MustNew(u, 4),
			func(n int) int { return n * 2 },
			func(s string) int { return len(s) },
		)
		if err != nil || got != 8 {
			t.Errorf("expected 8, nil; got %v, %v", got, err)
		}
	})

	t.Run("Functor Handler", func(t *testing.T) {
		got, err := Visit[int](MustNew(u, 1), adder{5}, strings.Count)
		if !errors.Is(err, ErrArity) {
			t.Errorf("expected binary strings.Count to be rejected, got %v, %v", got, err)
		}
		got, err = Visit[int](MustNew(u, 1), adder{5}, func(s string) int { return 0 })
		if err != nil || got != 6 {
			t.Errorf("expected 6, nil; got %v, %v", got, err)
		}
	})

	t.Run("Foreign Union", func(t *testing.T) {
		vis, err := NewVisitor[int](u, func(n int) int { return n }, func(s string) int { return 0 })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		other := MustUnion(TypeOf[int](), TypeOf[bool]())
		if _, err := vis.Visit(MustNew(other, 1)); !errors.Is(err, ErrForeignUnion) {
			t.Errorf("expected ErrForeignUnion, got %v", err)
		}
	})

	t.Run("Empty Variant", func(t *testing.T) {
		vis, err := NewVisitor[int](u, func(n int) int { return n }, func(s string) int { return 0 })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := vis.Visit(Variant{}); !errors.Is(err, ErrEmptyVariant) {
			t.Errorf("expected ErrEmptyVariant, got %v", err)
		}
		if _, err := Visit[int](Variant{}); !errors.Is(err, ErrEmptyVariant) {
			t.Errorf("expected ErrEmptyVariant, got %v", err)
		}
	})
}

func TestVisitorRejects(t *testing.T) {
	u := intString()
	onInt := func(n int) string { return "" }
	onString := func(s string) string { return "" }
	mustNotRun := func(int) string { panic("handler must not run") }

	tests := []struct {
		name     string
		handlers []any
		want     error
		position int
	}{
		{"Missing Alternative", []any{onInt}, ErrMissingHandler, -1},
		{"No Handlers", nil, ErrMissingHandler, -1},
		{"Duplicate Input", []any{mustNotRun, onString, onInt}, ErrDuplicateHandler, 2},
		{"Mismatched Results", []any{onInt, func(s string) int { return 0 }}, ErrResultMismatch, 1},
		{"Foreign Input", []any{onInt, onString, func(b bool) string { return "" }}, ErrForeignType, 2},
		{"Non Unary", []any{onInt, func(a, b string) string { return "" }}, ErrArity, 1},
		{"No Result", []any{onInt, func(string) {}}, ErrVoidResult, 1},
		{"Not Callable", []any{onInt, "handler"}, ErrNoSignature, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vis, err := NewVisitor[string](u, tt.handlers...)
			if vis != nil {
				t.Error("expected no visitor")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var ce *ContractError
			if !errors.As(err, &ce) || ce.Position != tt.position {
				t.Errorf("expected position %d, got %v", tt.position, err)
			}
		})
	}

	t.Run("Missing Names The Type", func(t *testing.T) {
		_, err := NewVisitor[string](u, onInt)
		var ce *ContractError
		if !errors.As(err, &ce) || ce.Type != TypeOf[string]() {
			t.Errorf("expected missing type string, got %v", err)
		}
	})

	t.Run("Result Not Assignable To R", func(t *testing.T) {
		_, err := NewVisitor[int](u, onInt, onString)
		if !errors.Is(err, ErrResultMismatch) {
			t.Errorf("expected ErrResultMismatch, got %v", err)
		}
	})

	t.Run("Rejected Before Dispatch", func(t *testing.T) {
		_, err := Visit[string](MustNew(u, 1), mustNotRun)
		if !errors.Is(err, ErrMissingHandler) {
			t.Errorf("expected ErrMissingHandler, got %v", err)
		}
	})
}

func TestVisitOne(t *testing.T) {
	u := intString()

	t.Run("Active", func(t *testing.T) {
		got, err := VisitOne(MustNew(u, 2), func(n int) int { return n * 10 })
		if err != nil || !got.Equal(Just(20)) {
			t.Errorf("expected Just 20, nil; got %v, %v", got, err)
		}
	})

	t.Run("Inactive Yields Nothing", func(t *testing.T) {
		got, err := VisitOne(MustNew(u, "x"), func(n int) int { panic("must not run") })
		if err != nil || got.IsJust() {
			t.Errorf("expected Nothing, nil; got %v, %v", got, err)
		}
	})

	t.Run("Foreign Type", func(t *testing.T) {
		if _, err := VisitOne(MustNew(u, 1), func(b bool) bool { return b }); !errors.Is(err, ErrForeignType) {
			t.Errorf("expected ErrForeignType, got %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, err := VisitOne(Variant{}, func(n int) int { return n }); !errors.Is(err, ErrEmptyVariant) {
			t.Errorf("expected ErrEmptyVariant, got %v", err)
		}
	})
}

func TestMatch(t *testing.T) {
	t.Run("Match2", func(t *testing.T) {
		u := intString()
		got, err := Match2(MustNew(u, "abc"),
			func(n int) int { return n },
			func(s string) int { return len(s) },
		)
		if err != nil || got != 3 {
			t.Errorf("expected 3, nil; got %d, %v", got, err)
		}
	})

	t.Run("Match3", func(t *testing.T) {
		u := MustUnion(TypeOf[int](), TypeOf[string](), TypeOf[bool]())
		got, err := Match3(MustNew(u, true),
			func(int) string { return "int" },
			func(string) string { return "string" },
			func(bool) string { return "bool" },
		)
		if err != nil || got != "bool" {
			t.Errorf("expected \"bool\", nil; got %q, %v", got, err)
		}
	})

	t.Run("Match4", func(t *testing.T) {
		u := MustUnion(TypeOf[int](), TypeOf[string](), TypeOf[bool](), TypeOf[float64]())
		got, err := Match4(MustNew(u, 1.5),
			func(int) float64 { return 0 },
			func(string) float64 { return 0 },
			func(bool) float64 { return 0 },
			func(f float64) float64 { return f * 2 },
		)
		if err != nil || got != 3 {
			t.Errorf("expected 3, nil; got %v, %v", got, err)
		}
	})

	t.Run("Match2 Against Larger Union", func(t *testing.T) {
		u := MustUnion(TypeOf[int](), TypeOf[string](), TypeOf[bool]())
		_, err := Match2(MustNew(u, 1),
			func(int) int { return 0 },
			func(string) int { return 0 },
		)
		if !errors.Is(err, ErrMissingHandler) {
			t.Errorf("expected ErrMissingHandler, got %v", err)
		}
	})
}

func TestTransform(t *testing.T) {
	u := intString()

	t.Run("Same Alternative", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		length := func(s string) int { return len(strings.TrimSpace(s)) }

		got, err := Transform(MustNew(u, 21), double, length)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n, ok := Get[int](got); !ok || n != 42 {
			t.Errorf("expected 42, got %v", got)
		}
		if got.Union() != u {
			t.Error("expected the same union")
		}

		got, err = Transform(MustNew(u, " hi "), double, length)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n, ok := Get[int](got); !ok || n != 2 {
			t.Errorf("expected 2, got %v", got)
		}
	})

	t.Run("Common Result Alternative", func(t *testing.T) {
		tr, err := NewTransformer(u,
			func(n int) string { return strconv.Itoa(n) },
			func(s string) string { return s + s },
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := tr.Transform(MustNew(u, 12))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s, ok := Get[string](got); !ok || s != "12" {
			t.Errorf("expected \"12\", got %v", got)
		}
		got, err = tr.Transform(got)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s, ok := Get[string](got); !ok || s != "1212" {
			t.Errorf("expected \"1212\", got %v", got)
		}
	})

	t.Run("Rejects Mixed Results", func(t *testing.T) {
		_, err := NewTransformer(u,
			func(n int) string { return strconv.Itoa(n) },
			func(s string) int { return len(s) },
		)
		if !errors.Is(err, ErrResultMismatch) {
			t.Fatalf("expected ErrResultMismatch, got %v", err)
		}
		var ce *ContractError
		if !errors.As(err, &ce) || ce.Position != 1 || ce.Type != TypeOf[int]() {
			t.Errorf("expected position 1 and type int, got %v", err)
		}
		if _, err := Transform(MustNew(u, 3),
			func(n int) string { return "" },
			func(s string) int { return 0 },
		); !errors.Is(err, ErrResultMismatch) {
			t.Errorf("expected ErrResultMismatch from Transform, got %v", err)
		}
	})

	t.Run("Rejects Result Outside Union", func(t *testing.T) {
		_, err := NewTransformer(u,
			func(n int) bool { return n == 0 },
			func(s string) bool { return s == "" },
		)
		if !errors.Is(err, ErrNotClosed) {
			t.Fatalf("expected ErrNotClosed, got %v", err)
		}
		var ce *ContractError
		if !errors.As(err, &ce) || ce.Position != 0 || ce.Type != TypeOf[bool]() {
			t.Errorf("expected position 0 and type bool, got %v", err)
		}
	})

	t.Run("Rejects Missing Handler", func(t *testing.T) {
		if _, err := Transform(MustNew(u, 1), func(n int) int { return n }); !errors.Is(err, ErrMissingHandler) {
			t.Errorf("expected ErrMissingHandler, got %v", err)
		}
	})

	t.Run("Empty Variant", func(t *testing.T) {
		if _, err := Transform(Variant{}); !errors.Is(err, ErrEmptyVariant) {
			t.Errorf("expected ErrEmptyVariant, got %v", err)
		}
	})
}
