package model

import (
	"encoding/json"
	"fmt"
)

// Wire format for a task inside a snapshot line. The "status" value is the
// stable discriminant consumers switch on, each variant carries its own
// extra fields:
//
//	pending     -> {"name": ..., "status": "pending", "total": <uint|null>}
//	running     -> {"name": ..., "status": "running"}
//	in_progress -> {"name": ..., "status": "in_progress", "done": <uint>, "total": <uint>}
//	finished    -> {"name": ..., "status": "finished"}
//	error       -> {"name": ..., "status": "error", "message": ...}
type pendingWire struct {
	Name   string     `json:"name"`
	Status StatusKind `json:"status"`
	Total  *uint64    `json:"total"`
}

type bareWire struct {
	Name   string     `json:"name"`
	Status StatusKind `json:"status"`
}

type inProgressWire struct {
	Name   string     `json:"name"`
	Status StatusKind `json:"status"`
	Done   uint64     `json:"done"`
	Total  uint64     `json:"total"`
}

type errorWire struct {
	Name    string     `json:"name"`
	Status  StatusKind `json:"status"`
	Message string     `json:"message"`
}

// MarshalJSON serializes the task in the snapshot wire format.
func (t Task) MarshalJSON() ([]byte, error) {
	switch t.Progress.Kind {
	case StatusKindPending:
		return json.Marshal(pendingWire{Name: t.Name, Status: StatusKindPending, Total: t.Progress.Total})
	case StatusKindRunning:
		return json.Marshal(bareWire{Name: t.Name, Status: StatusKindRunning})
	case StatusKindInProgress:
		if t.Progress.Total == nil {
			return nil, fmt.Errorf("in-progress task %q is missing a total: %w", t.Name, ErrNotValid)
		}
		return json.Marshal(inProgressWire{Name: t.Name, Status: StatusKindInProgress, Done: t.Progress.Done, Total: *t.Progress.Total})
	case StatusKindFinished:
		return json.Marshal(bareWire{Name: t.Name, Status: StatusKindFinished})
	case StatusKindError:
		return json.Marshal(errorWire{Name: t.Name, Status: StatusKindError, Message: t.Progress.Message})
	}

	return nil, fmt.Errorf("unknown status kind %q: %w", t.Progress.Kind, ErrNotValid)
}

// UnmarshalJSON parses a task from the snapshot wire format.
func (t *Task) UnmarshalJSON(data []byte) error {
	var w struct {
		Name    string     `json:"name"`
		Status  StatusKind `json:"status"`
		Total   *uint64    `json:"total"`
		Done    *uint64    `json:"done"`
		Message string     `json:"message"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("could not parse task: %w", err)
	}

	if w.Name == "" {
		return fmt.Errorf("task name is required: %w", ErrNotValid)
	}

	switch w.Status {
	case StatusKindPending:
		t.Progress = Status{Kind: StatusKindPending, Total: w.Total}
	case StatusKindRunning:
		t.Progress = RunningStatus()
	case StatusKindInProgress:
		if w.Total == nil || w.Done == nil {
			return fmt.Errorf("in-progress task %q requires done and total: %w", w.Name, ErrNotValid)
		}
		t.Progress = InProgressStatus(*w.Done, *w.Total)
	case StatusKindFinished:
		t.Progress = FinishedStatus()
	case StatusKindError:
		t.Progress = ErrorStatus(w.Message)
	default:
		return fmt.Errorf("unknown status kind %q: %w", w.Status, ErrNotValid)
	}

	t.Name = w.Name

	return nil
}
