package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "funcz",
		Short: "Runnable examples for funcz",
		Long: `funcz is a CLI tool for exploring typed function composition,
forward pipelines and exhaustively checked variants.

Each example builds a small program out of funcz pieces and prints
what it computed.`,
		Version: version,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available examples",
	Long:  "Display a list of all available examples with descriptions.",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available examples:")
		fmt.Fprintln(out)
		for _, ex := range getAllExamples() {
			fmt.Fprintf(out, "  %-12s %s\n", ex.Name(), ex.Description())
		}
	},
}
