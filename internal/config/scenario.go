package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a batch file: a list of runs generated together.
type Scenario struct {
	Name string `yaml:"name"`
	Runs []Run  `yaml:"runs"`
}

// Run is one batch entry. Either Input or Preset must be set.
type Run struct {
	Name   string    `yaml:"name"`
	Input  []float64 `yaml:"input,omitempty"`
	Preset string    `yaml:"preset,omitempty"`
	Size   int       `yaml:"size,omitempty"`
	Min    int       `yaml:"min,omitempty"`
	Max    int       `yaml:"max,omitempty"`
	Seed   int64     `yaml:"seed,omitempty"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", s.Name)
	}
	for i := range s.Runs {
		r := &s.Runs[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("run-%d", i+1)
		}
		if len(r.Input) == 0 && r.Preset == "" {
			return nil, fmt.Errorf("run %s: needs input or preset", r.Name)
		}
		if r.Preset != "" && GetPreset(r.Preset) == nil {
			return nil, fmt.Errorf("run %s: unknown preset %q", r.Name, r.Preset)
		}
	}
	return &s, nil
}

// Inputs resolves every run to a concrete input. Runs without their own
// size, range or seed inherit them from base.
func (s *Scenario) Inputs(base *Config) [][]float64 {
	out := make([][]float64, len(s.Runs))
	for i, r := range s.Runs {
		if len(r.Input) > 0 {
			out[i] = append([]float64(nil), r.Input...)
			continue
		}
		c := *base
		c.Input = nil
		c.Preset = r.Preset
		if r.Size > 0 {
			c.Size = r.Size
		}
		if r.Min != 0 || r.Max != 0 {
			c.Min, c.Max = r.Min, r.Max
		}
		if r.Seed != 0 {
			c.Seed = r.Seed
		}
		out[i] = c.Source()()
	}
	return out
}
