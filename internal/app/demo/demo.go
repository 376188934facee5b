package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/slok/progline/internal/log"
	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/progress"
	"github.com/slok/progline/internal/scenario"
)

// ServiceConfig is the configuration for the demo service.
type ServiceConfig struct {
	Manager *progress.Manager
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Manager == nil {
		return fmt.Errorf("manager is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Demo"})

	return nil
}

// Service drives a task manager through a scenario workload, producing a
// real progress stream for consumers to read.
type Service struct {
	manager *progress.Manager
	logger  log.Logger
}

// NewService creates a new demo service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		manager: cfg.Manager,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the demo request parameters.
type Request struct {
	Scenario scenario.Scenario
}

// Run executes the scenario tasks in order.
func (s *Service) Run(ctx context.Context, req Request) error {
	if err := req.Scenario.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	// Register everything up front so consumers see the whole queue from the
	// first snapshot on.
	for _, spec := range req.Scenario.Tasks {
		task := model.NewTask(spec.Name)
		if spec.Total > 0 {
			task = task.WithTotal(spec.Total)
		}
		if err := s.manager.AddTask(task); err != nil {
			return fmt.Errorf("could not add task %q: %w", spec.Name, err)
		}
	}

	for _, spec := range req.Scenario.Tasks {
		s.logger.Debugf("Running task %q", spec.Name)
		if err := s.runTask(ctx, spec); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) runTask(ctx context.Context, spec scenario.TaskSpec) error {
	if err := s.manager.StartTask(spec.Name); err != nil {
		return fmt.Errorf("could not start task %q: %w", spec.Name, err)
	}

	if err := sleep(ctx, spec.Delay.Std()); err != nil {
		return err
	}

	if spec.Total > 0 {
		step := spec.Step
		if step == 0 {
			step = 1
		}
		for done := uint64(0); done < spec.Total; done += step {
			if err := s.manager.IncrementTask(spec.Name, step); err != nil {
				return fmt.Errorf("could not increment task %q: %w", spec.Name, err)
			}
			if err := sleep(ctx, spec.StepDelay.Std()); err != nil {
				return err
			}
		}
	}

	if spec.Fail != "" {
		if err := s.manager.ErrorTask(spec.Name, spec.Fail); err != nil {
			return fmt.Errorf("could not fail task %q: %w", spec.Name, err)
		}
		return nil
	}

	if err := s.manager.FinishTask(spec.Name); err != nil {
		return fmt.Errorf("could not finish task %q: %w", spec.Name, err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
