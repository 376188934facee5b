// Package emitter contains the output sinks that publish task snapshots to
// the consumer stream.
package emitter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/slok/progline/internal/model"
)

// Emitter knows how to publish a snapshot of the active tasks.
type Emitter interface {
	Emit(tasks []model.Task) error
}

//go:generate mockery --case underscore --output emittermock --outpkg emittermock --name Emitter

// Noop emitter discards every snapshot. Used for silent managers that must
// not interleave output with their parent.
var Noop Emitter = noop(0)

type noop int

func (noop) Emit([]model.Task) error { return nil }

type flusher interface {
	Flush() error
}

// JSONLine emits each snapshot as a single line containing a JSON array of
// tasks, flushing the writer (when it supports flushing) so an incremental
// reader observes each update without buffering delay.
type JSONLine struct {
	writer io.Writer
}

// NewJSONLine creates a new JSON line emitter on top of a writer.
func NewJSONLine(w io.Writer) *JSONLine {
	return &JSONLine{writer: w}
}

// Emit writes the snapshot as one line.
func (e *JSONLine) Emit(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("could not serialize snapshot: %w", err)
	}
	data = append(data, '\n')

	if _, err := e.writer.Write(data); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}

	if f, ok := e.writer.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("could not flush snapshot: %w", err)
		}
	}

	return nil
}
