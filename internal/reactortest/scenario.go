package reactortest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a sequence of pushes into named integer sources and,
// optionally, the Update/value trace expected back from the root reactor
// after each push.
type Scenario struct {
	// Name uniquely identifies this scenario, also used as the golden
	// file's base name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Pushes is the main test flow: one entry per tick.
	Pushes []PushStep `yaml:"pushes"`

	// Expect validates the resulting trace. If empty, Run only records
	// the trace without validating it (useful when the caller validates
	// via golden comparison instead).
	Expect []ExpectStep `yaml:"expect,omitempty"`
}

// PushStep pushes Value into the source named Source and then commits
// the root reactor at the next sequence number.
type PushStep struct {
	Source string `yaml:"source"`
	Value  int    `yaml:"value"`
}

// ExpectStep is the expected outcome of one tick.
type ExpectStep struct {
	// Update is one of "NONE", "EVAL", "COMPLETE".
	Update string `yaml:"update"`

	// Value is checked whenever it is non-nil and the tick's Update
	// matches; only EVAL ticks carry a value.
	Value *int `yaml:"value,omitempty"`
}

// LoadScenario reads and strictly parses a scenario YAML file, rejecting
// unknown fields the way the teacher's harness.LoadScenario does (catches
// typos like "push:" for "pushes:").
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reactortest: read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("reactortest: parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("reactortest: invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Pushes) == 0 {
		return fmt.Errorf("pushes list is required and must be non-empty")
	}
	for i, p := range s.Pushes {
		if p.Source == "" {
			return fmt.Errorf("pushes[%d]: source is required", i)
		}
	}
	for i, e := range s.Expect {
		switch e.Update {
		case "NONE", "EVAL", "COMPLETE":
		default:
			return fmt.Errorf("expect[%d]: unknown update %q", i, e.Update)
		}
	}
	if len(s.Expect) > 0 && len(s.Expect) != len(s.Pushes) {
		return fmt.Errorf("expect has %d entries but pushes has %d; they must match one-for-one", len(s.Expect), len(s.Pushes))
	}
	return nil
}
