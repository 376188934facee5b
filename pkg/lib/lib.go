package lib

import (
	"fmt"
	"io"
	"os"

	"github.com/slok/progline/internal/emitter"
	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/progress"
)

// Config configures the SDK reporter.
//
// All fields are optional, an empty Config{} emits snapshots on stdout.
type Config struct {
	// Output is the stream snapshots are emitted to.
	// Default: os.Stdout.
	Output io.Writer

	// Silent suppresses all snapshot emission. Intended for nested reporters
	// that must not interleave output with their parent.
	Silent bool

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Reporter is the embeddable producer client.
//
// It is synchronous and not safe for concurrent use, see [NewSync] for a
// locked façade.
type Reporter struct {
	manager *progress.Manager
}

// New creates a new progress reporter.
func New(cfg Config) (*Reporter, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	manager, err := progress.NewManager(progress.ManagerConfig{
		Emitter: emitter.NewJSONLine(cfg.Output),
		Silent:  cfg.Silent,
		Logger:  cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create manager: %w", err)
	}

	return &Reporter{manager: manager}, nil
}

// AddTask registers a task. The name must not be active already. Adding
// does not emit a snapshot.
func (r *Reporter) AddTask(task Task) error { return r.manager.AddTask(task) }

// GetTask returns a copy of an active task.
func (r *Reporter) GetTask(name string) (*Task, error) { return r.manager.GetTask(name) }

// StartTask starts a pending task by name.
func (r *Reporter) StartTask(name string) error { return r.manager.StartTask(name) }

// Start starts the current task.
func (r *Reporter) Start() error { return r.manager.Start() }

// IncrementTask advances an iterative task by name.
func (r *Reporter) IncrementTask(name string, by uint64) error {
	return r.manager.IncrementTask(name, by)
}

// Increment advances the current task.
func (r *Reporter) Increment(by uint64) error { return r.manager.Increment(by) }

// FinishTask marks a task as finished by name and evicts it.
func (r *Reporter) FinishTask(name string) error { return r.manager.FinishTask(name) }

// Finish marks the current task as finished and evicts it.
func (r *Reporter) Finish() error { return r.manager.Finish() }

// ErrorTask marks a task as failed by name and evicts it.
func (r *Reporter) ErrorTask(name, message string) error { return r.manager.ErrorTask(name, message) }

// Error marks the current task as failed and evicts it.
func (r *Reporter) Error(message string) error { return r.manager.Error(message) }

// ActiveTasks returns the active tasks in registration order.
func (r *Reporter) ActiveTasks() []Task { return r.manager.ActiveTasks() }
