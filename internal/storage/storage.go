package storage

import (
	"context"

	"github.com/slok/progline/internal/model"
)

// Repository is the interface for the watch journal: the runs a consumer
// watched and the snapshots it observed on each of them.
type Repository interface {
	CreateRun(ctx context.Context, r model.Run) error
	ListRuns(ctx context.Context) ([]model.Run, error)
	SaveSnapshot(ctx context.Context, rec model.SnapshotRecord) error
	ListSnapshots(ctx context.Context, runID string) ([]model.SnapshotRecord, error)
}

//go:generate mockery --case underscore --output storagemock --outpkg storagemock --name Repository
