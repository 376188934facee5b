package lib

import (
	"fmt"
	"sync"
)

// SyncReporter is a mutex-guarded façade over a [Reporter], safe for
// concurrent use from multiple goroutines.
//
// Every operation takes one exclusive lock around the whole reporter, so a
// write to the output stream never interleaves with another operation. For
// high-contention producers consider confining a plain [Reporter] to a
// single goroutine instead.
type SyncReporter struct {
	mu       sync.Mutex
	reporter *Reporter
}

// NewSync creates a new thread-safe progress reporter.
func NewSync(cfg Config) (*SyncReporter, error) {
	reporter, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create reporter: %w", err)
	}

	return &SyncReporter{reporter: reporter}, nil
}

// AddTask registers a task. The name must not be active already.
func (r *SyncReporter) AddTask(task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.AddTask(task)
}

// GetTask returns a copy of an active task.
func (r *SyncReporter) GetTask(name string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.GetTask(name)
}

// StartTask starts a pending task by name.
func (r *SyncReporter) StartTask(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.StartTask(name)
}

// Start starts the current task.
func (r *SyncReporter) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.Start()
}

// IncrementTask advances an iterative task by name.
func (r *SyncReporter) IncrementTask(name string, by uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.IncrementTask(name, by)
}

// Increment advances the current task.
func (r *SyncReporter) Increment(by uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.Increment(by)
}

// FinishTask marks a task as finished by name and evicts it.
func (r *SyncReporter) FinishTask(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.FinishTask(name)
}

// Finish marks the current task as finished and evicts it.
func (r *SyncReporter) Finish() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.Finish()
}

// ErrorTask marks a task as failed by name and evicts it.
func (r *SyncReporter) ErrorTask(name, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.ErrorTask(name, message)
}

// Error marks the current task as failed and evicts it.
func (r *SyncReporter) Error(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.Error(message)
}

// ActiveTasks returns the active tasks in registration order.
func (r *SyncReporter) ActiveTasks() []Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.ActiveTasks()
}
