package lib

import "github.com/slok/progline/internal/model"

// Task is a named unit of work with its current progress status.
type Task = model.Task

// Status is the progress state of a task.
type Status = model.Status

// StatusKind discriminates the variants of a task Status.
type StatusKind = model.StatusKind

const (
	// StatusKindPending indicates the task is queued and has not started.
	StatusKindPending = model.StatusKindPending
	// StatusKindRunning indicates a started spinner task (no known total).
	StatusKindRunning = model.StatusKindRunning
	// StatusKindInProgress indicates a started iterative task (known total).
	StatusKindInProgress = model.StatusKindInProgress
	// StatusKindFinished indicates terminal success.
	StatusKindFinished = model.StatusKindFinished
	// StatusKindError indicates terminal failure.
	StatusKindError = model.StatusKindError
)

// NewTask returns a task in pending state without a known total (spinner).
// Use [Task.WithTotal] to make it iterative.
func NewTask(name string) Task { return model.NewTask(name) }

var (
	// ErrNonexistentTask is returned when the referenced task has no active entry.
	ErrNonexistentTask = model.ErrNonexistentTask
	// ErrTaskAlreadyExists is returned when adding a task whose name is already active.
	ErrTaskAlreadyExists = model.ErrTaskAlreadyExists
	// ErrTaskAlreadyStarted is returned when starting a task that is not pending.
	ErrTaskAlreadyStarted = model.ErrTaskAlreadyStarted
	// ErrInvalidTaskType is returned when an iterative operation is applied to a spinner task.
	ErrInvalidTaskType = model.ErrInvalidTaskType
	// ErrTaskAlreadyFinished is returned when operating on a task that already reached its end.
	ErrTaskAlreadyFinished = model.ErrTaskAlreadyFinished
)
