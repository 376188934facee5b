// Package scenario loads YAML-described demo workloads: the sequences of
// tasks the demo command drives through a progress manager.
package scenario

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/slok/progline/internal/model"
)

// Duration is a time.Duration that unmarshals from YAML strings like "300ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("could not decode duration: %w", err)
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("could not parse duration %q: %w", s, err)
	}

	*d = Duration(v)
	return nil
}

// Std returns the duration as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// TaskSpec describes one task of a demo workload.
type TaskSpec struct {
	// Name is the task name. Required, unique within the scenario.
	Name string `yaml:"name"`
	// Total makes the task iterative with that many units. Zero means spinner.
	Total uint64 `yaml:"total,omitempty"`
	// Delay is how long the task runs before finishing (spinner) or before
	// the first increment (iterative).
	Delay Duration `yaml:"delay,omitempty"`
	// StepDelay is the pause between increments of an iterative task.
	StepDelay Duration `yaml:"step_delay,omitempty"`
	// Step is the increment amount per step. Defaults to 1.
	Step uint64 `yaml:"step,omitempty"`
	// Fail makes the task end in error with this message instead of finishing.
	Fail string `yaml:"fail,omitempty"`
}

// Scenario is an ordered demo workload.
type Scenario struct {
	Tasks []TaskSpec `yaml:"tasks"`
}

// Validate checks the scenario is runnable.
func (s Scenario) Validate() error {
	if len(s.Tasks) == 0 {
		return fmt.Errorf("scenario has no tasks: %w", model.ErrNotValid)
	}

	seen := map[string]struct{}{}
	for i, t := range s.Tasks {
		if t.Name == "" {
			return fmt.Errorf("task %d has no name: %w", i, model.ErrNotValid)
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("task name %q is duplicated: %w", t.Name, model.ErrNotValid)
		}
		seen[t.Name] = struct{}{}
	}

	return nil
}

// FromYAML loads a scenario from a YAML stream. Unknown fields are rejected.
func FromYAML(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scenario{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("could not decode scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return s, nil
}

// Load loads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open scenario file: %w", err)
	}
	defer f.Close()

	return FromYAML(f)
}

// Default returns the built-in demo workload: a login spinner followed by
// three iterative scraping tasks.
func Default() Scenario {
	return Scenario{
		Tasks: []TaskSpec{
			{Name: "Logging in", Delay: Duration(1 * time.Second)},
			{Name: "Scraping section A", Total: 4, StepDelay: Duration(300 * time.Millisecond)},
			{Name: "Scraping section B", Total: 4, StepDelay: Duration(300 * time.Millisecond)},
			{Name: "Scraping section C", Total: 4, StepDelay: Duration(300 * time.Millisecond)},
		},
	}
}
