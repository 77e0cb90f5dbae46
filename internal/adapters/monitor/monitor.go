// Package monitor provides the Progrock implementation of the progress
// monitor.
package monitor

import (
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/bim/internal/core/ports"
)

var _ ports.Monitor = (*Recorder)(nil)

// Recorder reports progress as Progrock vertexes. Each sub-task opens a
// vertex; completed work units are streamed as vertex output so a tape
// consumer can render a running count.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	vertex *progrock.VertexRecorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// SubTask finishes any open vertex and starts a new one for the named unit
// of work.
func (r *Recorder) SubTask(label string) {
	r.finish()
	r.vertex = r.rec.Vertex(digest.FromString(label), label)
}

// Worked records the cumulative number of completed work units for the
// current sub-task. Calls before any SubTask are dropped.
func (r *Recorder) Worked(units int) {
	if r.vertex == nil {
		return
	}
	_, _ = fmt.Fprintf(r.vertex.Stdout(), "%d done\n", units)
}

// Close completes the open vertex and closes the underlying writer.
func (r *Recorder) Close() error {
	r.finish()
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (r *Recorder) finish() {
	if r.vertex != nil {
		r.vertex.Done(nil)
		r.vertex = nil
	}
}

// Nop is a monitor that discards all progress signals.
type Nop struct{}

func (Nop) SubTask(string) {}

func (Nop) Worked(int) {}
