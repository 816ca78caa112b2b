package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[37m"
)

var (
	runAll   bool
	runColor bool

	runCmd = &cobra.Command{
		Use:   "run [example]",
		Short: "Run an example",
		Long: `Run one example by name, or all of them with --all.

Available examples:
  readme     Forward pipeline over the numbers 0..9
  collatz    Map of Collatz sequences built with fwd
  variant    Exhaustive visit and transform of a variant
  pipeline   Observable pipeline with stage events
  benchmark  Benchmark session report`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var completions []string
			for _, ex := range getAllExamples() {
				if strings.HasPrefix(ex.Name(), toComplete) {
					completions = append(completions, ex.Name())
				}
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runExamples(cmd.Context(), cmd.OutOrStdout(), name, runAll)
		},
	}
)

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run all examples sequentially")
	runCmd.Flags().BoolVar(&runColor, "color", true, "Colorize headings")
}

func runExamples(ctx context.Context, w io.Writer, name string, all bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if all {
		for _, ex := range getAllExamples() {
			if err := runOne(ctx, w, ex); err != nil {
				return err
			}
		}
		return nil
	}
	if name == "" {
		return fmt.Errorf("specify an example or use --all (see 'funcz list')")
	}
	ex, ok := getExampleByName(name)
	if !ok {
		return fmt.Errorf("unknown example %q", name)
	}
	return runOne(ctx, w, ex)
}

func runOne(ctx context.Context, w io.Writer, ex Example) error {
	fmt.Fprintln(w, paint(colorCyan, "═══ "+strings.ToUpper(ex.Name())+" ═══"))
	if err := ex.Run(ctx, w); err != nil {
		fmt.Fprintln(w, paint(colorRed, "✗ "+err.Error()))
		return fmt.Errorf("%s: %w", ex.Name(), err)
	}
	fmt.Fprintln(w, paint(colorGreen, "✓ done"))
	fmt.Fprintln(w)
	return nil
}

func paint(color, s string) string {
	if !runColor {
		return s
	}
	return color + s + colorReset
}
