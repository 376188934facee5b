package history

import (
	"context"
	"fmt"

	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/storage"
)

// ServiceConfig is the configuration for the history service.
type ServiceConfig struct {
	Journal storage.Repository
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Journal == nil {
		return fmt.Errorf("journal is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.History"})

	return nil
}

// Service browses the watch journal.
type Service struct {
	journal storage.Repository
	logger  log.Logger
}

// NewService creates a new history service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		journal: cfg.Journal,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the history request parameters.
type Request struct {
	// RunID selects a single run to inspect. Empty lists all runs instead.
	RunID string
}

// Response represents the history result. Exactly one field is set,
// depending on the request.
type Response struct {
	Runs    []model.Run
	Records []model.SnapshotRecord
}

// Run lists the recorded runs, or the snapshots of one of them.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if req.RunID == "" {
		runs, err := s.journal.ListRuns(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not list runs: %w", err)
		}
		s.logger.Debugf("Found %d runs", len(runs))
		return &Response{Runs: runs}, nil
	}

	records, err := s.journal.ListSnapshots(ctx, req.RunID)
	if err != nil {
		return nil, fmt.Errorf("could not list snapshots of run %s: %w", req.RunID, err)
	}
	s.logger.Debugf("Found %d snapshots for run %s", len(records), req.RunID)

	return &Response{Records: records}, nil
}
