package model

import "time"

// Run represents one watched producer stream recorded in the journal.
type Run struct {
	// ID is the run identifier (ULID).
	ID string
	// StartedAt is when the consumer started watching the stream.
	StartedAt time.Time
}

// SnapshotRecord is a single snapshot observed on a stream, as stored in the journal.
type SnapshotRecord struct {
	// RunID is the run this snapshot belongs to.
	RunID string
	// Seq is the position of the snapshot within the run, starting at 0.
	Seq int
	// RecordedAt is when the consumer observed the snapshot.
	RecordedAt time.Time
	// Tasks is the decoded snapshot content.
	Tasks []Task
}
