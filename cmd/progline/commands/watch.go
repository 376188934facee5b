package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/progline/internal/app/watch"
	"github.com/slok/progline/internal/printer"
	"github.com/slok/progline/internal/storage"
	"github.com/slok/progline/internal/storage/sqlite"
)

type WatchCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
	record bool
}

// NewWatchCommand returns the watch command.
func NewWatchCommand(rootCmd *RootCommand, app *kingpin.Application) *WatchCommand {
	c := &WatchCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("watch", "Consume a producer progress stream from stdin.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")
	c.Cmd.Flag("record", "Record observed snapshots in the journal.").BoolVar(&c.record)

	return c
}

func (c WatchCommand) Name() string { return c.Cmd.FullCommand() }

func (c WatchCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize journal storage (SQLite) only when recording.
	var journal storage.Repository
	if c.record {
		repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: c.rootCmd.DBPath,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("could not create journal repository: %w", err)
		}
		defer repo.Close()
		journal = repo
	}

	// Snapshot output printer.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	// Create watch service.
	svc, err := watch.NewService(watch.ServiceConfig{
		Printer: p,
		Journal: journal,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Consume the stream.
	resp, err := svc.Run(ctx, watch.Request{Stream: c.rootCmd.Stdin})
	if err != nil {
		return fmt.Errorf("could not watch stream: %w", err)
	}

	if resp.RunID != "" {
		logger.Infof("Recorded %d snapshots under run %s", resp.Snapshots, resp.RunID)
	}
	if resp.Malformed > 0 {
		logger.Warningf("Skipped %d malformed snapshot lines", resp.Malformed)
	}

	return nil
}
