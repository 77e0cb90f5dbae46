// Package bazel provides the build tool invoker adapter.
package bazel

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/bim/internal/core/domain"
	"go.trai.ch/bim/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Invoker = (*CommandInvoker)(nil)

// CommandInvoker implements ports.Invoker using os/exec. Aspect artifact
// paths are announced on the build tool's stderr stream; stdout carries
// ordinary build chatter and is forwarded to the logger.
type CommandInvoker struct {
	executable string
	logger     ports.Logger
}

// NewCommandInvoker creates an invoker for the `bazel` executable on PATH.
func NewCommandInvoker(logger ports.Logger) *CommandInvoker {
	return &CommandInvoker{
		executable: "bazel",
		logger:     logger,
	}
}

// NewCommandInvokerWithPath creates an invoker for a specific executable.
func NewCommandInvokerWithPath(executable string, logger ports.Logger) *CommandInvoker {
	return &CommandInvoker{
		executable: executable,
		logger:     logger,
	}
}

// Run executes the build tool in workDir and returns the stderr lines that
// survive the filter. A process that exits non-zero but still produced
// output is not an error: during aspect processing the tool keeps going
// past failing targets and the caller decides per target how to degrade. A
// process that cannot be launched at all is a configuration error.
func (i *CommandInvoker) Run(ctx context.Context, workDir string, args []string, filter ports.LineFilter) ([]string, error) {
	executable, err := exec.LookPath(i.executable)
	if err != nil {
		return nil, zerr.With(domain.ErrToolNotConfigured, "executable", i.executable)
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // arguments come from the variant strategy
	cmd.Dir = workDir
	cmd.Stdout = &logWriter{logger: i.logger}

	collector := &lineCollector{filter: filter, logger: i.logger}
	cmd.Stderr = collector

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, zerr.With(zerr.Wrap(err, "failed to launch build tool"), "executable", executable)
		}
		// Exit status is expected when some target fails to build; the
		// artifact lines already emitted are still valid.
		i.logger.Warn("build tool exited non-zero during aspect run")
	}

	return collector.lines(), nil
}

// lineCollector splits the stderr stream into lines, keeps the ones the
// filter accepts and forwards the rest to the logger.
type lineCollector struct {
	filter ports.LineFilter
	logger ports.Logger

	mu      sync.Mutex
	partial string
	matched []string
}

func (c *lineCollector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	buf := c.partial + string(p)
	lines := strings.Split(buf, "\n")
	c.partial = lines[len(lines)-1]

	for _, line := range lines[:len(lines)-1] {
		c.consume(line)
	}
	return len(p), nil
}

func (c *lineCollector) consume(line string) {
	if line == "" {
		return
	}
	if c.filter != nil {
		if kept, ok := c.filter(line); ok {
			c.matched = append(c.matched, kept)
			return
		}
	}
	c.logger.Info(line)
}

// lines flushes any unterminated trailing line and returns the matches.
func (c *lineCollector) lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.partial != "" {
		c.consume(c.partial)
		c.partial = ""
	}
	return append([]string(nil), c.matched...)
}

// logWriter forwards a stream to the logger line by line.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
