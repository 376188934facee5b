package model

import "errors"

var (
	// ErrNonexistentTask is returned when the referenced task has no active entry.
	ErrNonexistentTask = errors.New("the requested task does not exist")
	// ErrTaskAlreadyExists is returned when adding a task whose name is already active.
	ErrTaskAlreadyExists = errors.New("another task of the same name already exists")
	// ErrTaskAlreadyStarted is returned when starting a task that is not pending.
	ErrTaskAlreadyStarted = errors.New("task has already been started")
	// ErrInvalidTaskType is returned when an iterative operation is applied to a spinner task.
	ErrInvalidTaskType = errors.New("the task is the wrong type for the requested operation")
	// ErrTaskAlreadyFinished is returned when operating on a task that already reached its end.
	ErrTaskAlreadyFinished = errors.New("task is already done")

	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
)
