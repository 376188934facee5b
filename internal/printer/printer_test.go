package printer_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/printer"
)

func TestFormatProgress(t *testing.T) {
	tests := map[string]struct {
		status model.Status
		exp    string
	}{
		"pending spinner":   {status: model.PendingStatus(), exp: "-"},
		"pending iterative": {status: model.PendingWithTotalStatus(4), exp: "0/4"},
		"running":           {status: model.RunningStatus(), exp: "-"},
		"in progress":       {status: model.InProgressStatus(2, 4), exp: "2/4"},
		"finished":          {status: model.FinishedStatus(), exp: "-"},
		"error":             {status: model.ErrorStatus("timed out"), exp: "error: timed out"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, printer.FormatProgress(test.status))
		})
	}
}

func TestTablePrinterPrintSnapshot(t *testing.T) {
	tests := map[string]struct {
		tasks  []model.Task
		expOut string
	}{
		"empty snapshot prints a marker": {
			tasks:  []model.Task{},
			expOut: "(no active tasks)\n",
		},
		"single task": {
			tasks: []model.Task{
				{Name: "Log in", Progress: model.RunningStatus()},
			},
			expOut: "Log in  running  -\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var buf bytes.Buffer
			err := printer.NewTablePrinter(&buf).PrintSnapshot(test.tasks)

			require.NoError(t, err)
			assert.Equal(test.expOut, buf.String())
		})
	}
}

func TestTablePrinterPrintSnapshotMultipleTasks(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := printer.NewTablePrinter(&buf).PrintSnapshot([]model.Task{
		{Name: "Do work", Progress: model.InProgressStatus(2, 4)},
		model.NewTask("Cleanup"),
	})

	require.NoError(t, err)
	assert.Contains(buf.String(), "Do work")
	assert.Contains(buf.String(), "in_progress")
	assert.Contains(buf.String(), "2/4")
	assert.Contains(buf.String(), "Cleanup")
	assert.Contains(buf.String(), "pending")
}

func TestTablePrinterPrintRuns(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	// Empty list prints nothing.
	require.NoError(t, p.PrintRuns([]model.Run{}))
	assert.Empty(buf.String())

	err := p.PrintRuns([]model.Run{
		{ID: "01J0000000000000000000TEST", StartedAt: time.Now().Add(-2 * time.Hour)},
	})
	require.NoError(t, err)
	assert.Contains(buf.String(), "RUN ID")
	assert.Contains(buf.String(), "01J0000000000000000000TEST")
	assert.Contains(buf.String(), "2 hours ago (UTC)")
}

func TestTablePrinterPrintRecords(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	// Empty list prints nothing.
	require.NoError(t, p.PrintRecords([]model.SnapshotRecord{}))
	assert.Empty(buf.String())

	recordedAt := time.Date(2025, 11, 5, 10, 30, 0, 0, time.UTC)
	err := p.PrintRecords([]model.SnapshotRecord{
		{RunID: "r1", Seq: 0, RecordedAt: recordedAt, Tasks: []model.Task{
			{Name: "Do work", Progress: model.InProgressStatus(2, 4)},
		}},
		{RunID: "r1", Seq: 1, RecordedAt: recordedAt, Tasks: []model.Task{}},
	})
	require.NoError(t, err)
	assert.Contains(buf.String(), "SEQ")
	assert.Contains(buf.String(), "2025-11-05 10:30:00 UTC")
	assert.Contains(buf.String(), "Do work 2/4")
	assert.Contains(buf.String(), "(none)")
}

func TestJSONPrinterPrintSnapshot(t *testing.T) {
	tests := map[string]struct {
		tasks  []model.Task
		expOut string
	}{
		"nil snapshot is an empty array": {
			tasks:  nil,
			expOut: "[]\n",
		},
		"tasks re-emit in the wire format": {
			tasks: []model.Task{
				{Name: "Do work", Progress: model.InProgressStatus(2, 4)},
			},
			expOut: `[{"name":"Do work","status":"in_progress","done":2,"total":4}]` + "\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var buf bytes.Buffer
			err := printer.NewJSONPrinter(&buf).PrintSnapshot(test.tasks)

			require.NoError(t, err)
			assert.Equal(test.expOut, buf.String())
		})
	}
}

func TestJSONPrinterPrintRuns(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := printer.NewJSONPrinter(&buf).PrintRuns([]model.Run{
		{ID: "r1", StartedAt: time.Date(2025, 11, 5, 10, 30, 0, 0, time.UTC)},
	})

	require.NoError(t, err)
	assert.JSONEq(`[{"id":"r1","started_at":"2025-11-05T10:30:00Z"}]`, buf.String())
}

func TestJSONPrinterPrintRecords(t *testing.T) {
	assert := assert.New(t)

	recordedAt := time.Date(2025, 11, 5, 10, 30, 0, 0, time.UTC)
	var buf bytes.Buffer
	err := printer.NewJSONPrinter(&buf).PrintRecords([]model.SnapshotRecord{
		{RunID: "r1", Seq: 0, RecordedAt: recordedAt, Tasks: []model.Task{
			{Name: "Log in", Progress: model.RunningStatus()},
		}},
		{RunID: "r1", Seq: 1, RecordedAt: recordedAt, Tasks: nil},
	})

	require.NoError(t, err)
	assert.JSONEq(`[
		{"seq":0,"recorded_at":"2025-11-05T10:30:00Z","tasks":[{"name":"Log in","status":"running"}]},
		{"seq":1,"recorded_at":"2025-11-05T10:30:00Z","tasks":[]}
	]`, buf.String())
}

func TestJSONPrinterPrintMessage(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := printer.NewJSONPrinter(&buf).PrintMessage("run recorded")

	require.NoError(t, err)
	assert.JSONEq(`{"message":"run recorded"}`, buf.String())
}
