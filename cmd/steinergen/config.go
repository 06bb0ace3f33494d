package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Leon-Degel-Koehn/steinlib/dynamic"
)

// Experiment mirrors the YAML experiment file: a shared output root plus
// one entry per run family. Each family is generated Replications times
// with seeds derived from Seed.
type Experiment struct {
	// OutputRoot is the directory run directories are created under.
	OutputRoot string `yaml:"output_root"`

	Runs []RunSpec `yaml:"runs"`
}

// RunSpec describes one generation family.
type RunSpec struct {
	Name             string        `yaml:"name"`
	Vertices         int           `yaml:"vertices"`
	Terminals        int           `yaml:"terminals"`
	CoverSize        int           `yaml:"cover_size"`
	EdgeProbability  float64       `yaml:"edge_probability"`
	UpdateWeights    UpdateWeights `yaml:"update_weights"`
	QueryProbability float64       `yaml:"query_probability"`
	TotalUpdates     int           `yaml:"total_updates"`
	StartEmpty       bool          `yaml:"start_empty"`
	Seed             uint64        `yaml:"seed"`
	Replications     int           `yaml:"replications"`
}

// UpdateWeights is the YAML shape of dynamic.Probabilities.
type UpdateWeights struct {
	EdgeInsertion        float64 `yaml:"edge_insertion"`
	EdgeDeletion         float64 `yaml:"edge_deletion"`
	TerminalActivation   float64 `yaml:"terminal_activation"`
	TerminalDeactivation float64 `yaml:"terminal_deactivation"`
}

// Probabilities converts the YAML weights into the synthesizer's type.
func (w UpdateWeights) Probabilities() dynamic.Probabilities {
	return dynamic.Probabilities{
		EdgeInsertion:        w.EdgeInsertion,
		EdgeDeletion:         w.EdgeDeletion,
		TerminalActivation:   w.TerminalActivation,
		TerminalDeactivation: w.TerminalDeactivation,
	}
}

// loadExperiment reads and validates an experiment file.
func loadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment: %w", err)
	}

	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parse experiment: %w", err)
	}
	exp.applyDefaults()

	if len(exp.Runs) == 0 {
		return nil, fmt.Errorf("experiment %s declares no runs", path)
	}
	for i, run := range exp.Runs {
		if run.Name == "" {
			return nil, fmt.Errorf("run %d has no name", i)
		}
	}

	return &exp, nil
}

// applyDefaults fills zero values that have a sensible interpretation.
func (e *Experiment) applyDefaults() {
	if e.OutputRoot == "" {
		e.OutputRoot = "generated_instances"
	}
	for i := range e.Runs {
		if e.Runs[i].Replications == 0 {
			e.Runs[i].Replications = 1
		}
	}
}
