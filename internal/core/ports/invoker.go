// Package ports defines the core interfaces for the application.
package ports

import "context"

// LineFilter transforms one raw output line from the build tool. It returns
// the transformed line and true to keep it, or false to omit the line.
type LineFilter func(line string) (string, bool)

// Invoker runs the external build tool and returns its filtered output
// lines. Implementations report process launch and I/O failures as errors; a
// non-zero exit that still produced output is not an error, the build tool
// keeps going past failing targets during aspect processing.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Run executes the build tool with the given arguments in workDir and
	// returns the output lines that survive the filter.
	Run(ctx context.Context, workDir string, args []string, filter LineFilter) ([]string, error)
}
