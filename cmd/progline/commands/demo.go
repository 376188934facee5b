package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/progline/internal/app/demo"
	"github.com/slok/progline/internal/emitter"
	"github.com/slok/progline/internal/progress"
	"github.com/slok/progline/internal/scenario"
)

type DemoCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	scenarioPath string
	silent       bool
}

// NewDemoCommand returns the demo command.
func NewDemoCommand(rootCmd *RootCommand, app *kingpin.Application) *DemoCommand {
	c := &DemoCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("demo", "Run a sample producer that emits progress snapshots on stdout.")
	c.Cmd.Flag("scenario", "Path to a YAML scenario file (default: built-in workload).").StringVar(&c.scenarioPath)
	c.Cmd.Flag("silent", "Suppress snapshot emission.").BoolVar(&c.silent)

	return c
}

func (c DemoCommand) Name() string { return c.Cmd.FullCommand() }

func (c DemoCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Load workload.
	sc := scenario.Default()
	if c.scenarioPath != "" {
		loaded, err := scenario.Load(c.scenarioPath)
		if err != nil {
			return fmt.Errorf("could not load scenario: %w", err)
		}
		sc = *loaded
	}

	// Create the producer manager on top of stdout.
	manager, err := progress.NewManager(progress.ManagerConfig{
		Emitter: emitter.NewJSONLine(c.rootCmd.Stdout),
		Silent:  c.silent,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create manager: %w", err)
	}

	// Create demo service.
	svc, err := demo.NewService(demo.ServiceConfig{
		Manager: manager,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute demo.
	if err := svc.Run(ctx, demo.Request{Scenario: sc}); err != nil {
		return fmt.Errorf("could not run demo: %w", err)
	}

	return nil
}
