// Package stream implements the consumer side of the progress wire format:
// reading line-delimited JSON snapshots from a producer stream.
package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/slok/progline/internal/model"
)

// maxLineSize is the largest accepted snapshot line.
const maxLineSize = 4 * 1024 * 1024

// Reader decodes snapshots from a producer stream.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a reader on top of a producer stream.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: s}
}

// Next returns the next snapshot on the stream, skipping blank lines.
//
// It returns io.EOF when the stream ends. A malformed line returns an error
// wrapping model.ErrNotValid and leaves the reader usable, positioned after
// the bad line, so callers can decide to skip and continue.
func (r *Reader) Next() ([]model.Task, error) {
	for r.scanner.Scan() {
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var tasks []model.Task
		if err := json.Unmarshal(line, &tasks); err != nil {
			return nil, fmt.Errorf("could not decode snapshot line (%v): %w", err, model.ErrNotValid)
		}
		if tasks == nil {
			tasks = []model.Task{}
		}

		return tasks, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read stream: %w", err)
	}

	return nil, io.EOF
}
