// Package progress implements the task state machine and its managing
// container.
//
// Most manager methods have a `Task` variant that works on a specific task
// name. The short variants act on the current task: the oldest task still
// active, in registration order.
package progress

import (
	"fmt"
	"os"

	"github.com/slok/progline/internal/emitter"
	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/model"
)

// ManagerConfig is the configuration for the task manager.
type ManagerConfig struct {
	// Emitter is the snapshot sink. Defaults to a JSON line emitter on stdout.
	Emitter emitter.Emitter
	// Silent suppresses all snapshot emission. It takes precedence over
	// Emitter. Reserved for nested managers that must not interleave output
	// with their parent.
	Silent bool
	// Logger is the logger for the manager.
	Logger log.Logger
}

func (c *ManagerConfig) defaults() error {
	if c.Silent {
		c.Emitter = emitter.Noop
	}
	if c.Emitter == nil {
		c.Emitter = emitter.NewJSONLine(os.Stdout)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "progress.Manager"})

	return nil
}

// Manager owns the set of active tasks and emits a snapshot of them after
// every successful state change.
//
// A Manager is synchronous and not safe for concurrent use. Callers that
// need concurrent access must serialize it externally, either with a single
// lock guarding the whole manager or by confining the manager to one
// goroutine and sending it operations over a channel.
type Manager struct {
	tasks   map[string]model.Task
	queue   []string
	emitter emitter.Emitter
	logger  log.Logger
}

// NewManager creates a new task manager.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Manager{
		tasks:   map[string]model.Task{},
		queue:   []string{},
		emitter: cfg.Emitter,
		logger:  cfg.Logger,
	}, nil
}

// AddTask registers a task on the manager. The task name must not be active
// already. Adding does not emit a snapshot.
func (m *Manager) AddTask(task model.Task) error {
	if task.Name == "" {
		return fmt.Errorf("task name is required: %w", model.ErrNotValid)
	}
	if _, ok := m.tasks[task.Name]; ok {
		return fmt.Errorf("task %q: %w", task.Name, model.ErrTaskAlreadyExists)
	}

	m.tasks[task.Name] = task
	m.queue = append(m.queue, task.Name)
	m.logger.Debugf("Added task %q", task.Name)

	return nil
}

// GetTask returns a copy of an active task.
func (m *Manager) GetTask(name string) (*model.Task, error) {
	task, ok := m.tasks[name]
	if !ok {
		return nil, fmt.Errorf("task %q: %w", name, model.ErrNonexistentTask)
	}

	return &task, nil
}

// StartTask starts a pending task: iterative tasks (known total) move to
// in-progress at zero, spinner tasks move to running.
func (m *Manager) StartTask(name string) error {
	task, ok := m.tasks[name]
	if !ok {
		return fmt.Errorf("task %q: %w", name, model.ErrNonexistentTask)
	}
	if task.Progress.Kind != model.StatusKindPending {
		return fmt.Errorf("task %q: %w", name, model.ErrTaskAlreadyStarted)
	}

	if task.Progress.Total != nil {
		task.Progress = model.InProgressStatus(0, *task.Progress.Total)
	} else {
		task.Progress = model.RunningStatus()
	}
	m.tasks[name] = task

	return m.emit()
}

// Start starts the current task.
func (m *Manager) Start() error {
	name, err := m.current()
	if err != nil {
		return err
	}
	return m.StartTask(name)
}

// IncrementTask advances an iterative task by the given amount.
//
// Incrementing a pending iterative task starts it implicitly at done=1.
// The guard is checked before applying only: an increment is rejected when
// the task is already at or past its total, but a valid increment may land
// past it.
func (m *Manager) IncrementTask(name string, by uint64) error {
	task, ok := m.tasks[name]
	if !ok {
		return fmt.Errorf("task %q: %w", name, model.ErrNonexistentTask)
	}

	switch task.Progress.Kind {
	case model.StatusKindPending:
		if task.Progress.Total == nil {
			return fmt.Errorf("task %q is a spinner: %w", name, model.ErrInvalidTaskType)
		}
		task.Progress = model.InProgressStatus(1, *task.Progress.Total)
	case model.StatusKindInProgress:
		if task.Progress.Done >= *task.Progress.Total {
			return fmt.Errorf("task %q is maxed out: %w", name, model.ErrTaskAlreadyFinished)
		}
		task.Progress = model.InProgressStatus(task.Progress.Done+by, *task.Progress.Total)
	case model.StatusKindRunning:
		return fmt.Errorf("task %q is a spinner: %w", name, model.ErrInvalidTaskType)
	default:
		return fmt.Errorf("task %q: %w", name, model.ErrTaskAlreadyFinished)
	}

	m.tasks[name] = task

	return m.emit()
}

// Increment advances the current task.
func (m *Manager) Increment(by uint64) error {
	name, err := m.current()
	if err != nil {
		return err
	}
	return m.IncrementTask(name, by)
}

// FinishTask marks a task as finished and evicts it from the active set.
// The emitted snapshot contains the remaining tasks only.
func (m *Manager) FinishTask(name string) error {
	task, ok := m.tasks[name]
	if !ok {
		return fmt.Errorf("task %q: %w", name, model.ErrNonexistentTask)
	}

	task.Progress = model.FinishedStatus()
	m.evict(task.Name)
	m.logger.Debugf("Finished task %q", name)

	return m.emit()
}

// Finish marks the current task as finished.
func (m *Manager) Finish() error {
	name, err := m.current()
	if err != nil {
		return err
	}
	return m.FinishTask(name)
}

// ErrorTask marks a task as failed with a reason and evicts it from the
// active set. The emitted snapshot contains the remaining tasks only.
func (m *Manager) ErrorTask(name, message string) error {
	task, ok := m.tasks[name]
	if !ok {
		return fmt.Errorf("task %q: %w", name, model.ErrNonexistentTask)
	}

	task.Progress = model.ErrorStatus(message)
	m.evict(task.Name)
	m.logger.Debugf("Errored task %q: %s", name, message)

	return m.emit()
}

// Error marks the current task as failed with a reason.
func (m *Manager) Error(message string) error {
	name, err := m.current()
	if err != nil {
		return err
	}
	return m.ErrorTask(name, message)
}

// ActiveTasks returns the active tasks in registration order.
func (m *Manager) ActiveTasks() []model.Task {
	tasks := make([]model.Task, 0, len(m.queue))
	for _, name := range m.queue {
		tasks = append(tasks, m.tasks[name])
	}
	return tasks
}

// current resolves the implicit task: the head of the registration queue.
// Eviction prunes the queue eagerly, so the head is always active.
func (m *Manager) current() (string, error) {
	if len(m.queue) == 0 {
		return "", fmt.Errorf("no active tasks: %w", model.ErrNonexistentTask)
	}
	return m.queue[0], nil
}

func (m *Manager) evict(name string) {
	delete(m.tasks, name)
	for i, n := range m.queue {
		if n == name {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			break
		}
	}
}

func (m *Manager) emit() error {
	if err := m.emitter.Emit(m.ActiveTasks()); err != nil {
		return fmt.Errorf("could not emit snapshot: %w", err)
	}
	return nil
}
