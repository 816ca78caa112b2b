package main

import (
	"context"
	"io"
)

// Example defines the interface that all examples must implement
type Example interface {
	Name() string
	Description() string
	Run(ctx context.Context, w io.Writer) error
}

// getAllExamples returns all registered examples in a consistent order
func getAllExamples() []Example {
	return []Example{
		&ReadmeExample{},
		&CollatzExample{},
		&VariantExample{},
		&PipelineExample{},
		&BenchmarkExample{},
	}
}

// getExampleByName returns a specific example by name
func getExampleByName(name string) (Example, bool) {
	for _, ex := range getAllExamples() {
		if ex.Name() == name {
			return ex, true
		}
	}
	return nil, false
}
