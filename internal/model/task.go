package model

// StatusKind discriminates the variants of a task Status.
type StatusKind string

const (
	// StatusKindPending indicates the task is queued and has not started.
	StatusKindPending StatusKind = "pending"
	// StatusKindRunning indicates a started spinner task (no known total).
	StatusKindRunning StatusKind = "running"
	// StatusKindInProgress indicates a started iterative task (known total).
	StatusKindInProgress StatusKind = "in_progress"
	// StatusKindFinished indicates terminal success.
	StatusKindFinished StatusKind = "finished"
	// StatusKindError indicates terminal failure.
	StatusKindError StatusKind = "error"
)

// Status is the progress state of a task.
//
// It is a discriminated union: Kind selects the variant and the remaining
// fields are only meaningful for the variants noted on each one.
type Status struct {
	Kind StatusKind

	// Total is the known number of work units.
	// Pending: nil means the task will be a spinner once started.
	// InProgress: always set.
	Total *uint64

	// Done is the number of completed work units. InProgress only.
	Done uint64

	// Message is the human-readable failure reason. Error only.
	Message string
}

// PendingStatus returns a pending status for a spinner task.
func PendingStatus() Status {
	return Status{Kind: StatusKindPending}
}

// PendingWithTotalStatus returns a pending status for an iterative task.
func PendingWithTotalStatus(total uint64) Status {
	return Status{Kind: StatusKindPending, Total: &total}
}

// RunningStatus returns a running (spinner) status.
func RunningStatus() Status {
	return Status{Kind: StatusKindRunning}
}

// InProgressStatus returns an in-progress (iterative) status.
func InProgressStatus(done, total uint64) Status {
	return Status{Kind: StatusKindInProgress, Done: done, Total: &total}
}

// FinishedStatus returns a terminal success status.
func FinishedStatus() Status {
	return Status{Kind: StatusKindFinished}
}

// ErrorStatus returns a terminal failure status with a reason.
func ErrorStatus(message string) Status {
	return Status{Kind: StatusKindError, Message: message}
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s.Kind == StatusKindFinished || s.Kind == StatusKindError
}

// Task is a named unit of work with its current progress status.
type Task struct {
	// Name identifies the task. It must be unique among active tasks.
	Name string
	// Progress is the current status of the task.
	Progress Status
}

// NewTask returns a task in pending state without a known total (spinner).
func NewTask(name string) Task {
	return Task{Name: name, Progress: PendingStatus()}
}

// WithTotal returns a copy of the task that will be iterative once started.
// Only meaningful before the task is registered on a manager.
func (t Task) WithTotal(total uint64) Task {
	t.Progress = PendingWithTotalStatus(total)
	return t
}

// WithName returns a copy of the task with a different name.
// Only meaningful before the task is registered on a manager.
func (t Task) WithName(name string) Task {
	t.Name = name
	return t
}
