package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/printer"
	"github.com/slok/progline/internal/storage"
	"github.com/slok/progline/internal/stream"
)

// ServiceConfig is the configuration for the watch service.
type ServiceConfig struct {
	Printer printer.Printer
	// Journal is optional. When set, every observed snapshot is recorded
	// under a new run.
	Journal storage.Repository
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Printer == nil {
		return fmt.Errorf("printer is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Watch"})

	return nil
}

// Service consumes a producer progress stream, printing every snapshot and
// optionally journaling it.
type Service struct {
	printer printer.Printer
	journal storage.Repository
	logger  log.Logger
}

// NewService creates a new watch service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		printer: cfg.Printer,
		journal: cfg.Journal,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the watch request parameters.
type Request struct {
	// Stream is the producer output to consume.
	Stream io.Reader
}

// Response represents the watch result.
type Response struct {
	// RunID is the journal run the snapshots were recorded under. Empty when
	// journaling was disabled.
	RunID string
	// Snapshots is the number of well-formed snapshots observed.
	Snapshots int
	// Malformed is the number of lines that could not be decoded and were skipped.
	Malformed int
}

// Run consumes the stream until it ends or the context is cancelled.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	if req.Stream == nil {
		return nil, fmt.Errorf("stream is required")
	}

	resp := &Response{}

	if s.journal != nil {
		resp.RunID = ulid.Make().String()
		run := model.Run{ID: resp.RunID, StartedAt: time.Now().UTC()}
		if err := s.journal.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("could not create journal run: %w", err)
		}
		s.logger.Debugf("Recording snapshots under run %s", resp.RunID)
	}

	r := stream.NewReader(req.Stream)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tasks, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, model.ErrNotValid) {
				s.logger.Warningf("Skipping malformed snapshot: %s", err)
				resp.Malformed++
				continue
			}
			return nil, fmt.Errorf("could not read snapshot: %w", err)
		}

		if err := s.printer.PrintSnapshot(tasks); err != nil {
			return nil, fmt.Errorf("could not print snapshot: %w", err)
		}

		if s.journal != nil {
			rec := model.SnapshotRecord{
				RunID:      resp.RunID,
				Seq:        resp.Snapshots,
				RecordedAt: time.Now().UTC(),
				Tasks:      tasks,
			}
			if err := s.journal.SaveSnapshot(ctx, rec); err != nil {
				return nil, fmt.Errorf("could not record snapshot: %w", err)
			}
		}

		resp.Snapshots++
	}

	s.logger.Debugf("Stream ended after %d snapshots (%d malformed)", resp.Snapshots, resp.Malformed)

	return resp, nil
}
