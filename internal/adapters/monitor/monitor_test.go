package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/bim/internal/adapters/monitor"
)

type captureWriter struct {
	updates []*progrock.StatusUpdate
}

func (w *captureWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.updates = append(w.updates, update)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestNew(t *testing.T) {
	assert.NotNil(t, monitor.New())
}

func TestRecorder_EmitsVertexPerSubTask(t *testing.T) {
	w := &captureWriter{}
	rec := monitor.NewRecorder(w)

	rec.SubTask("Load Bazel dependency information")
	rec.Worked(1)
	rec.Worked(2)
	rec.SubTask("Write projects")
	require.NoError(t, rec.Close())

	names := map[string]bool{}
	for _, update := range w.updates {
		for _, v := range update.Vertexes {
			names[v.Name] = true
		}
	}
	assert.True(t, names["Load Bazel dependency information"])
	assert.True(t, names["Write projects"])
}

func TestRecorder_WorkedBeforeSubTaskIsDropped(t *testing.T) {
	rec := monitor.NewRecorder(&captureWriter{})

	rec.Worked(3)
	require.NoError(t, rec.Close())
}

func TestNop(t *testing.T) {
	var m monitor.Nop
	m.SubTask("anything")
	m.Worked(10)
}
