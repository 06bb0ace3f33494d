// SPDX-License-Identifier: MIT
// Package: steinlib/gen
//
// generate.go — implementation of the vertex-cover-biased sampler.
//
// Canonical model:
//   - Erdős–Rényi-like generator restricted to cover-touching pairs:
//     include each unordered pair {i,j} with at least one endpoint in the
//     cover set independently with probability p.
//   - Accept the sample iff every terminal is reachable from the first
//     (trivially true for fewer than two terminals).
//
// Contract:
//   - numVertices ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - coverSize, numTerminals ≤ numVertices (else ErrInvalidSubsetRequest).
//   - Cover and terminal sets are drawn once, independently, and never
//     resampled; only the edge set is redrawn on rejection.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable trial order (i asc, then j asc, j > i) ⇒ deterministic
//     output for a fixed seed and fixed options.

package gen

import (
	"fmt"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
)

// File-local constants (stable method tag and domains).
const (
	methodGenerate      = "Generate"
	minGenerateVertices = 1
	probMin             = 0.0
	probMax             = 1.0
)

// Generate samples a random Steiner instance on numVertices vertices
// whose edges all touch a planted cover set of exactly coverSize
// vertices, resampling until all numTerminals terminals are mutually
// reachable. It returns the accepted instance together with the cover
// set for downstream verification.
//
// Degenerate inputs keep their historical semantics: coverSize==0 admits
// no edges at all (so two or more terminals can never connect and the
// attempt budget will run out), and numTerminals==0 accepts the first
// sample unconditionally.
//
// Complexity: O(attempts · (n² + E)) time, O(n + E) space.
func Generate(numVertices, numTerminals, coverSize int, p float64, opts ...Option) (*steiner.Instance, []int, error) {
	// 1) Resolve options and validate parameters early (fail fast, zero
	//    side-effects on invalid input).
	cfg := newGenConfig(opts...)
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	if numVertices < minGenerateVertices {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodGenerate, numVertices, minGenerateVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, nil, fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
			methodGenerate, p, probMin, probMax, ErrInvalidProbability)
	}

	// 2) Draw the planted cover and the terminal set, independently.
	cover, err := Subset(numVertices, coverSize, cfg.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: cover of size %d: %w", methodGenerate, coverSize, err)
	}
	terminals, err := Subset(numVertices, numTerminals, cfg.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %d terminals: %w", methodGenerate, numTerminals, err)
	}

	inCover := make([]bool, numVertices+1)
	for _, v := range cover {
		inCover[v] = true
	}

	// 3) Rejection loop: fresh Bernoulli sample per attempt, accepted on
	//    terminal connectivity.
	var (
		edges   []steiner.Edge
		attempt int
		i, j    int
	)
	for {
		attempt++
		if cfg.maxAttempts > 0 && attempt > cfg.maxAttempts {
			return nil, nil, fmt.Errorf("%s: no connected sample in %d attempts (n=%d, p=%g): %w",
				methodGenerate, cfg.maxAttempts, numVertices, p, ErrGenerationTimeout)
		}

		// Clear, then trial every admissible unordered pair in stable order.
		edges = edges[:0]
		for i = 1; i <= numVertices; i++ {
			for j = i + 1; j <= numVertices; j++ {
				if !inCover[i] && !inCover[j] {
					continue
				}
				if cfg.rng.Float64() < p {
					edges = append(edges, steiner.Edge{From: i, To: j, Cost: cfg.costFn(cfg.rng)})
				}
			}
		}

		if terminalsConnected(numVertices, edges, terminals) {
			break
		}
	}

	// 4) Hand the accepted sample over in a right-sized slice; the working
	//    buffer may carry rejection-loop slack capacity.
	accepted := make([]steiner.Edge, len(edges))
	copy(accepted, edges)

	return steiner.NewInstance(numVertices, accepted, terminals), cover, nil
}
