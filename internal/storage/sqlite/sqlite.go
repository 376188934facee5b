package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// CreateRun registers a new run in the journal.
func (r *Repository) CreateRun(ctx context.Context, run model.Run) error {
	query := `INSERT INTO runs (id, started_at) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, run.ID, run.StartedAt.UnixMilli())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: runs.") {
			return fmt.Errorf("run already exists: %w", model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert run: %w", err)
	}

	r.logger.Debugf("Created run in repository: %s", run.ID)
	return nil
}

// ListRuns returns all runs ordered by start time.
func (r *Repository) ListRuns(ctx context.Context) ([]model.Run, error) {
	query := `SELECT id, started_at FROM runs ORDER BY started_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query runs: %w", err)
	}
	defer rows.Close()

	runs := []model.Run{}
	for rows.Next() {
		var (
			run       model.Run
			startedAt int64
		)
		if err := rows.Scan(&run.ID, &startedAt); err != nil {
			return nil, fmt.Errorf("could not scan run: %w", err)
		}
		run.StartedAt = time.UnixMilli(startedAt).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate runs: %w", err)
	}

	return runs, nil
}

// SaveSnapshot stores an observed snapshot under its run. The snapshot tasks
// are stored in the wire format.
func (r *Repository) SaveSnapshot(ctx context.Context, rec model.SnapshotRecord) error {
	tasks := rec.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("could not serialize snapshot tasks: %w", err)
	}

	query := `INSERT INTO snapshots (run_id, seq, recorded_at, tasks) VALUES (?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query, rec.RunID, rec.Seq, rec.RecordedAt.UnixMilli(), string(payload))
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
			return fmt.Errorf("run %s: %w", rec.RunID, model.ErrNotFound)
		case strings.Contains(err.Error(), "UNIQUE constraint failed: snapshots."):
			return fmt.Errorf("snapshot %d of run %s already exists: %w", rec.Seq, rec.RunID, model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert snapshot: %w", err)
	}

	return nil
}

// ListSnapshots returns the snapshots of a run ordered by sequence.
func (r *Repository) ListSnapshots(ctx context.Context, runID string) ([]model.SnapshotRecord, error) {
	// The run must exist even when it has no snapshots yet.
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("could not query run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %s: %w", runID, model.ErrNotFound)
	}

	query := `SELECT run_id, seq, recorded_at, tasks FROM snapshots WHERE run_id = ? ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("could not query snapshots: %w", err)
	}
	defer rows.Close()

	records := []model.SnapshotRecord{}
	for rows.Next() {
		var (
			rec        model.SnapshotRecord
			recordedAt int64
			payload    string
		)
		if err := rows.Scan(&rec.RunID, &rec.Seq, &recordedAt, &payload); err != nil {
			return nil, fmt.Errorf("could not scan snapshot: %w", err)
		}
		rec.RecordedAt = time.UnixMilli(recordedAt).UTC()
		if err := json.Unmarshal([]byte(payload), &rec.Tasks); err != nil {
			return nil, fmt.Errorf("could not parse snapshot tasks: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate snapshots: %w", err)
	}

	return records, nil
}
