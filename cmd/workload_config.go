package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/hybrid-cache/cachesim/sim"
)

// WorkloadEntry describes one named simulation run in a workload suite:
// which access pattern to generate, under which scoring regime, and against
// what cache geometry.
type WorkloadEntry struct {
	Name     string `yaml:"name"`     // label used in per-pattern metrics (defaults to Pattern)
	Pattern  string `yaml:"pattern"`  // access pattern name (see sim.ValidPatternNames)
	Mode     string `yaml:"mode"`     // workload mode: "friendly" or "hostile"
	Capacity int    `yaml:"capacity"` // cache capacity in blocks
	Accesses int    `yaml:"accesses"` // number of access events to generate
}

// WorkloadSuite is a YAML-configured list of simulation runs.
type WorkloadSuite struct {
	Workloads []WorkloadEntry `yaml:"workloads"`
}

// LoadWorkloadSuite reads and validates a workload suite YAML file.
func LoadWorkloadSuite(path string) (*WorkloadSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload suite %s: %w", path, err)
	}
	var suite WorkloadSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse workload suite %s: %w", path, err)
	}
	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload suite %s: %w", path, err)
	}
	return &suite, nil
}

// Validate checks every entry and fills in defaulted names.
func (ws *WorkloadSuite) Validate() error {
	if len(ws.Workloads) == 0 {
		return fmt.Errorf("no workloads defined")
	}
	seen := make(map[string]bool, len(ws.Workloads))
	for i := range ws.Workloads {
		entry := &ws.Workloads[i]
		if entry.Name == "" {
			entry.Name = entry.Pattern
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("workload %d (%q): %w", i, entry.Name, err)
		}
		if seen[entry.Name] {
			return fmt.Errorf("workload %d: duplicate name %q", i, entry.Name)
		}
		seen[entry.Name] = true
	}
	return nil
}

// Validate checks a single workload entry.
func (we *WorkloadEntry) Validate() error {
	if !sim.IsValidPattern(we.Pattern) {
		return fmt.Errorf("unknown pattern %q; valid patterns: %v", we.Pattern, sim.ValidPatternNames())
	}
	if !sim.IsValidWorkloadMode(we.Mode) {
		return fmt.Errorf("unknown mode %q; valid modes: [friendly, hostile]", we.Mode)
	}
	if we.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", we.Capacity)
	}
	if we.Accesses <= 0 {
		return fmt.Errorf("accesses must be positive, got %d", we.Accesses)
	}
	return nil
}
