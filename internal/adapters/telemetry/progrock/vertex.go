package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/plugindev/internal/core/domain"
)

// Vertex implements ports.Vertex for one generation step.
// Warnings and errors go to the step's stderr, everything else to its stdout.
type Vertex struct {
	name   string
	vertex *progrock.VertexRecorder

	mu     sync.Mutex
	status domain.VertexStatus
	done   bool
}

func newVertex(name string, v *progrock.VertexRecorder) *Vertex {
	return &Vertex{name: name, vertex: v}
}

// Name returns the step name the vertex was recorded under.
func (v *Vertex) Name() string {
	return v.name
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer to capture error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a message on the stream matching its level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete finishes the step. Completing twice keeps the first outcome.
func (v *Vertex) Complete(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done {
		return
	}
	v.done = true

	switch {
	case err != nil:
		v.status = domain.VertexStatusFailed
	case v.status == "":
		v.status = domain.VertexStatusCompleted
	}
	v.vertex.Done(err)
}

// Cached marks the step as up to date.
func (v *Vertex) Cached() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done {
		return
	}
	v.status = domain.VertexStatusCached
	v.vertex.Cached()
}

// Status returns the outcome of the step, empty while it is running.
func (v *Vertex) Status() domain.VertexStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.done {
		return ""
	}
	return v.status
}
