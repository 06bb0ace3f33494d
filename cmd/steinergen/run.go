package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Leon-Degel-Koehn/steinlib/dynamic"
	"github.com/Leon-Degel-Koehn/steinlib/gen"
	"github.com/Leon-Degel-Koehn/steinlib/stp"
)

const (
	baseInstanceFile = "base.gr"
	manifestFile     = "manifest.yaml"
)

// runManifest records what produced a run directory; written last so a
// manifest's presence implies the artifacts before it are complete.
type runManifest struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Replication int       `yaml:"replication"`
	Created     time.Time `yaml:"created"`

	Vertices         int     `yaml:"vertices"`
	Terminals        int     `yaml:"terminals"`
	CoverSize        int     `yaml:"cover_size"`
	EdgeProbability  float64 `yaml:"edge_probability"`
	QueryProbability float64 `yaml:"query_probability"`
	TotalUpdates     int     `yaml:"total_updates"`
	StartEmpty       bool    `yaml:"start_empty"`
	Seed             uint64  `yaml:"seed"`

	Cover      []int `yaml:"cover"`
	Operations int   `yaml:"operations"`
	Queries    int   `yaml:"queries"`
}

// executeRun samples one instance, synthesizes its update sequence and
// persists the run directory. The replication index perturbs the family
// seed so replications are independent yet reproducible.
func executeRun(run RunSpec, replication int, dir string) (*runManifest, error) {
	seed := run.Seed + uint64(replication)

	instance, cover, err := gen.Generate(
		run.Vertices, run.Terminals, run.CoverSize, run.EdgeProbability,
		gen.WithSeed(seed),
	)
	if err != nil {
		return nil, err
	}

	ops, err := dynamic.Synthesize(
		instance, run.UpdateWeights.Probabilities(), run.QueryProbability,
		cover, run.StartEmpty, run.TotalUpdates,
		dynamic.WithSeed(seed),
	)
	if err != nil {
		return nil, err
	}

	if err = dynamic.WriteRun(dir, ops); err != nil {
		return nil, err
	}
	if err = os.WriteFile(filepath.Join(dir, baseInstanceFile), []byte(stp.Format(instance)), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", baseInstanceFile, err)
	}

	manifest := &runManifest{
		ID:               uuid.NewString(),
		Name:             run.Name,
		Replication:      replication,
		Created:          time.Now().UTC(),
		Vertices:         run.Vertices,
		Terminals:        run.Terminals,
		CoverSize:        run.CoverSize,
		EdgeProbability:  run.EdgeProbability,
		QueryProbability: run.QueryProbability,
		TotalUpdates:     run.TotalUpdates,
		StartEmpty:       run.StartEmpty,
		Seed:             seed,
		Cover:            cover,
		Operations:       len(ops),
		Queries:          countQueries(ops),
	}
	if err = writeManifest(dir, manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

// writeManifest marshals the manifest into the run directory.
func writeManifest(dir string, m *runManifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err = os.WriteFile(filepath.Join(dir, manifestFile), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", manifestFile, err)
	}

	return nil
}

func countQueries(ops []dynamic.Operation) int {
	n := 0
	for _, op := range ops {
		if op.Kind == dynamic.Query {
			n++
		}
	}

	return n
}

// summarizeRun loads a persisted run and renders a per-kind tally,
// replaying the cursor exactly as a solver harness would.
func summarizeRun(dir string) (string, error) {
	di, err := dynamic.LoadDir(dir, 0)
	if err != nil {
		return "", err
	}

	counts := map[dynamic.Kind]int{}
	for {
		op, ok := di.Next()
		if !ok {
			break
		}
		counts[op.Kind]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "operations: %d\n", di.Len())
	fmt.Fprintf(&b, "vertices:   %d\n", di.NumVertices)
	for _, kind := range []dynamic.Kind{
		dynamic.EdgeInsertion,
		dynamic.EdgeDeletion,
		dynamic.TerminalActivation,
		dynamic.TerminalDeactivation,
		dynamic.Query,
	} {
		fmt.Fprintf(&b, "%-21s %d\n", kind.String()+":", counts[kind])
	}

	return b.String(), nil
}
