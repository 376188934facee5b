package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/progline/internal/app/history"
	"github.com/slok/progline/internal/printer"
	"github.com/slok/progline/internal/storage/sqlite"
)

type HistoryCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	runID  string
	format string
}

// NewHistoryCommand returns the history command.
func NewHistoryCommand(rootCmd *RootCommand, app *kingpin.Application) *HistoryCommand {
	c := &HistoryCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("history", "Browse recorded watch runs.")
	c.Cmd.Arg("run-id", "Run ID to inspect. Lists all runs when omitted.").StringVar(&c.runID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c HistoryCommand) Name() string { return c.Cmd.FullCommand() }

func (c HistoryCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize journal storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create journal repository: %w", err)
	}
	defer repo.Close()

	// Create history service.
	svc, err := history.NewService(history.ServiceConfig{
		Journal: repo,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute history.
	resp, err := svc.Run(ctx, history.Request{RunID: c.runID})
	if err != nil {
		return fmt.Errorf("could not browse history: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if c.runID == "" {
		if len(resp.Runs) == 0 {
			if err := p.PrintMessage("No recorded runs."); err != nil {
				return fmt.Errorf("could not print message: %w", err)
			}
			return nil
		}
		if err := p.PrintRuns(resp.Runs); err != nil {
			return fmt.Errorf("could not print runs: %w", err)
		}
		return nil
	}

	if err := p.PrintRecords(resp.Records); err != nil {
		return fmt.Errorf("could not print snapshots: %w", err)
	}

	return nil
}
