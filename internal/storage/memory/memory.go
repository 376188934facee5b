package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
type Repository struct {
	runs      map[string]model.Run
	snapshots map[string][]model.SnapshotRecord
	mu        sync.RWMutex
	logger    log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		runs:      make(map[string]model.Run),
		snapshots: make(map[string][]model.SnapshotRecord),
		logger:    cfg.Logger,
	}, nil
}

// CreateRun registers a new run in the journal.
func (r *Repository) CreateRun(ctx context.Context, run model.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[run.ID]; ok {
		return fmt.Errorf("run %s: %w", run.ID, model.ErrAlreadyExists)
	}

	r.runs[run.ID] = run
	r.logger.Debugf("Created run in repository: %s", run.ID)

	return nil
}

// ListRuns returns all runs ordered by start time.
func (r *Repository) ListRuns(ctx context.Context) ([]model.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runs := make([]model.Run, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].StartedAt.Before(runs[j].StartedAt) })

	return runs, nil
}

// SaveSnapshot stores an observed snapshot under its run.
func (r *Repository) SaveSnapshot(ctx context.Context, rec model.SnapshotRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runs[rec.RunID]; !ok {
		return fmt.Errorf("run %s: %w", rec.RunID, model.ErrNotFound)
	}

	r.snapshots[rec.RunID] = append(r.snapshots[rec.RunID], rec)

	return nil
}

// ListSnapshots returns the snapshots of a run ordered by sequence.
func (r *Repository) ListSnapshots(ctx context.Context, runID string) ([]model.SnapshotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.runs[runID]; !ok {
		return nil, fmt.Errorf("run %s: %w", runID, model.ErrNotFound)
	}

	records := make([]model.SnapshotRecord, len(r.snapshots[runID]))
	copy(records, r.snapshots[runID])
	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	return records, nil
}
