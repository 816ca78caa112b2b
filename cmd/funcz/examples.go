package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/funcz"
	"github.com/zoobzio/funcz/fwd"
	"github.com/zoobzio/funcz/seq"
)

func isOdd(n int) bool { return n%2 != 0 }

func digitCount(n int) int { return len(strconv.Itoa(n)) }

func times3(n int) int { return 3 * n }

// ReadmeExample runs the forward pipeline from the package documentation.
type ReadmeExample struct{}

func (*ReadmeExample) Name() string { return "readme" }

func (*ReadmeExample) Description() string {
	return "Forward pipeline over the numbers 0..9"
}

func (*ReadmeExample) Run(_ context.Context, w io.Writer) error {
	xs := seq.Numbers(0, 10)

	piped := fwd.Apply4(xs,
		fwd.Transform(times3),
		fwd.DropIf(isOdd),
		fwd.Transform(digitCount),
		fwd.Sum[int](),
	)
	nested := seq.Sum(seq.Transform(digitCount, seq.DropIf(isOdd, seq.Transform(times3, xs))))

	fmt.Fprintln(w, paint(colorGray, "fwd.Apply4(xs, Transform(times3), DropIf(isOdd), Transform(digitCount), Sum())"))
	fmt.Fprintf(w, "input:  %v\n", xs)
	fmt.Fprintf(w, "piped:  %d\n", piped)
	fmt.Fprintf(w, "nested: %d\n", nested)
	if piped != nested {
		return fmt.Errorf("pipeline gave %d, nested calls gave %d", piped, nested)
	}
	return nil
}

// CollatzExample maps numbers to their Collatz sequences.
type CollatzExample struct{}

func (*CollatzExample) Name() string { return "collatz" }

func (*CollatzExample) Description() string {
	return "Map of Collatz sequences built with fwd"
}

func collatzSeq(n int) []int {
	out := []int{n}
	for n > 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		out = append(out, n)
	}
	return out
}

func (*CollatzExample) Run(_ context.Context, w io.Writer) error {
	show := fwd.Compose3(
		collatzSeq,
		fwd.Transform(strconv.Itoa),
		func(parts []string) string { return strings.Join(parts, " => ") },
	)
	table := fwd.Apply1(seq.Numbers(1, 8), fwd.CreateMapWith(show))

	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%2d: %s\n", k, table[k])
	}
	return nil
}

// VariantExample visits and transforms a variant.
type VariantExample struct{}

func (*VariantExample) Name() string { return "variant" }

func (*VariantExample) Description() string {
	return "Exhaustive visit and transform of a variant"
}

func (*VariantExample) Run(_ context.Context, w io.Writer) error {
	u, err := funcz.NewUnion(funcz.TypeOf[int](), funcz.TypeOf[string]())
	if err != nil {
		return err
	}

	describe, err := funcz.NewVisitor[string](u,
		func(n int) string { return fmt.Sprintf("int %d", n) },
		func(s string) string { return fmt.Sprintf("string %q", s) },
	)
	if err != nil {
		return err
	}
	grow, err := funcz.NewTransformer(u,
		func(n int) string { return strings.Repeat("*", n) },
		func(s string) string { return s + s },
	)
	if err != nil {
		return err
	}

	for _, v := range []funcz.Variant{funcz.MustNew(u, 3), funcz.MustNew(u, "ab")} {
		before, _ := describe.Visit(v)
		grown, err := grow.Transform(v)
		if err != nil {
			return err
		}
		after, _ := describe.Visit(grown)
		fmt.Fprintf(w, "%-12s -> %s\n", before, after)
	}

	_, err = funcz.NewVisitor[string](u, func(n int) string { return "only int" })
	fmt.Fprintln(w, paint(colorGray, "rejected handler set:"), err)
	if !errors.Is(err, funcz.ErrMissingHandler) {
		return fmt.Errorf("expected a missing handler error, got %v", err)
	}
	return nil
}

// PipelineExample runs an observable pipeline and reports its signals.
type PipelineExample struct{}

func (*PipelineExample) Name() string { return "pipeline" }

func (*PipelineExample) Description() string {
	return "Observable pipeline with stage events"
}

func (*PipelineExample) Run(ctx context.Context, w io.Writer) error {
	composed, err := funcz.Compose(
		fwd.Transform(times3),
		fwd.DropIf(isOdd),
	)
	if err != nil {
		return err
	}
	evens, err := funcz.FromComposed[[]int]("triple-evens", composed)
	if err != nil {
		return err
	}

	p := funcz.NewPipeline[[]int]("digits",
		evens,
		funcz.Map("digit-count", fwd.Transform(digitCount)),
	)
	defer p.Close()

	events := make(chan funcz.PipelineEvent, p.Len())
	if err := p.OnStageComplete(func(_ context.Context, e funcz.PipelineEvent) error {
		events <- e
		return nil
	}); err != nil {
		return err
	}

	out, err := p.Process(ctx, seq.Numbers(0, 10))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "result: %v (sum %d)\n", out, seq.Sum(out))

	timeout := time.After(time.Second)
	for i := 0; i < p.Len(); i++ {
		select {
		case e := <-events:
			fmt.Fprintf(w, "stage %d/%d %-12s success=%t\n", e.StageNumber, e.TotalStages, e.StageName, e.Success)
		case <-timeout:
			return errors.New("timed out waiting for stage events")
		}
	}

	processed := p.Metrics().Counter(funcz.PipelineProcessedTotal).Value()
	fmt.Fprintf(w, "processed: %.0f\n", processed)
	return nil
}

// BenchmarkExample prints a benchmark session report.
type BenchmarkExample struct{}

func (*BenchmarkExample) Name() string { return "benchmark" }

func (*BenchmarkExample) Description() string {
	return "Benchmark session report"
}

func (*BenchmarkExample) Run(_ context.Context, w io.Writer) error {
	session := funcz.NewBenchmarkSession()

	numbers := funcz.BenchmarkFunc(session, "numbers", func(n int) []int { return seq.Numbers(0, n) })
	sorted := funcz.BenchmarkFunc(session, "sort", fwd.Sort[int]())
	reversed := funcz.BenchmarkFunc(session, "reverse", fwd.Reverse[int]())

	funcz.RunNTimes(100, func() {
		xs := reversed(numbers(1000))
		_ = sorted(xs)
	})
	total := funcz.BenchmarkExpr(session, "sum", func() int { return seq.Sum(numbers(1000)) })

	fmt.Fprintf(w, "sum of 0..999: %d\n", total)
	fmt.Fprint(w, session.Report())
	return nil
}
