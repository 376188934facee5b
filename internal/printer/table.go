package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/progline/internal/model"
)

// TablePrinter prints progress information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintSnapshot prints one task per line. An empty snapshot prints a single
// marker line so live watchers can tell updates apart.
func (t *TablePrinter) PrintSnapshot(tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(t.writer, "(no active tasks)")
		return err
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", task.Name, task.Progress.Kind, FormatProgress(task.Progress))
	}

	return nil
}

// PrintRuns prints recorded runs in a table format.
func (t *TablePrinter) PrintRuns(runs []model.Run) error {
	if len(runs) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "RUN ID\tSTARTED")

	// Print rows.
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\n", r.ID, TimeAgo(r.StartedAt))
	}

	return nil
}

// PrintRecords prints the recorded snapshots of a run in a table format.
func (t *TablePrinter) PrintRecords(records []model.SnapshotRecord) error {
	if len(records) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header.
	fmt.Fprintln(tw, "SEQ\tRECORDED\tTASKS")

	// Print rows.
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Seq, FormatTimestamp(r.RecordedAt), summarizeTasks(r.Tasks))
	}

	return nil
}

// PrintMessage prints a simple message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}

// FormatProgress returns a short human-readable progress string for a status.
// Examples: "-", "0/4", "2/4", "error: timed out".
func FormatProgress(s model.Status) string {
	switch s.Kind {
	case model.StatusKindPending:
		if s.Total != nil {
			return fmt.Sprintf("0/%d", *s.Total)
		}
		return "-"
	case model.StatusKindInProgress:
		return fmt.Sprintf("%d/%d", s.Done, *s.Total)
	case model.StatusKindError:
		return fmt.Sprintf("error: %s", s.Message)
	default:
		return "-"
	}
}

func summarizeTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "(none)"
	}

	summary := ""
	for i, task := range tasks {
		if i > 0 {
			summary += ", "
		}
		summary += fmt.Sprintf("%s %s", task.Name, FormatProgress(task.Progress))
	}

	return summary
}
