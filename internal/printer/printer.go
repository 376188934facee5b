package printer

import "github.com/slok/progline/internal/model"

// Printer knows how to print progress information in different formats.
type Printer interface {
	PrintSnapshot(tasks []model.Task) error
	PrintRuns(runs []model.Run) error
	PrintRecords(records []model.SnapshotRecord) error
	PrintMessage(msg string) error
}
