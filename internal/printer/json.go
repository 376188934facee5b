package printer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/slok/progline/internal/model"
)

// JSONPrinter prints progress information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// runItem represents a run in the list output.
type runItem struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
}

// recordItem represents a recorded snapshot in the run detail output.
type recordItem struct {
	Seq        int          `json:"seq"`
	RecordedAt time.Time    `json:"recorded_at"`
	Tasks      []model.Task `json:"tasks"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintSnapshot re-emits the snapshot in the wire format, one line, no
// indentation, so the output stays consumable by another progline reader.
func (j *JSONPrinter) PrintSnapshot(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	enc := json.NewEncoder(j.writer)
	return enc.Encode(tasks)
}

// PrintRuns prints recorded runs in JSON format.
func (j *JSONPrinter) PrintRuns(runs []model.Run) error {
	items := make([]runItem, len(runs))
	for i, r := range runs {
		items[i] = runItem{
			ID:        r.ID,
			StartedAt: r.StartedAt.UTC(),
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintRecords prints the recorded snapshots of a run in JSON format.
func (j *JSONPrinter) PrintRecords(records []model.SnapshotRecord) error {
	items := make([]recordItem, len(records))
	for i, r := range records {
		tasks := r.Tasks
		if tasks == nil {
			tasks = []model.Task{}
		}
		items[i] = recordItem{
			Seq:        r.Seq,
			RecordedAt: r.RecordedAt.UTC(),
			Tasks:      tasks,
		}
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	output := messageOutput{Message: msg}
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
