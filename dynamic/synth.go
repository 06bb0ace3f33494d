// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// synth.go — the update-sequence synthesizer: a constrained weighted
// random process over fixed candidate universes.
//
// Canonical model:
//   - Candidate edge operations are all unordered pairs of cover-set
//     vertices; candidate terminal operations are the base instance's
//     terminals. Mutations never reach outside these universes, keeping
//     the stream consistent with the instance's planted structure.
//   - Per accepted update: draw a kind from the weighted categorical
//     distribution restricted to kinds with at least one legal target,
//     pick a target uniformly, apply it to the shadow state, then emit a
//     Query with probability queryProb.
//   - The final operation is always a Query, so every sequence ends on
//     an observable snapshot.
//
// Contract:
//   - base non-nil (ErrNilInstance), weights valid (ErrInvalidWeights),
//     queryProb ∈ [0,1] (ErrInvalidProbability), totalUpdates ≥ 0
//     (ErrBadUpdateCount); a fully masked step is ErrExhausted.
//   - Returns only sentinel errors; never panics at runtime (weights are
//     validated before they reach the gonum sampler).
//
// Complexity:
//   - O(totalUpdates · |universe|) time, O(|universe|) space.

package dynamic

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
)

const (
	methodSynthesize = "Synthesize"

	// candidateEdgeCost is the weight of synthesized candidate edges,
	// matching the sampler's default.
	candidateEdgeCost = 1.0
)

// Synthesize produces a randomized, stateful sequence of totalUpdates
// legal mutations over base with interleaved snapshot queries. The
// simulated state starts empty when startEmpty is true, otherwise from
// base's full edge and terminal sets. cover fixes the candidate edge
// universe; base.Terminals fixes the terminal universe.
func Synthesize(
	base *steiner.Instance,
	probs Probabilities,
	queryProb float64,
	cover []int,
	startEmpty bool,
	totalUpdates int,
	opts ...Option,
) ([]Operation, error) {
	// 1) Resolve options and validate the contract up front.
	cfg := newSynthConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if base == nil {
		return nil, fmt.Errorf("%s: %w", methodSynthesize, ErrNilInstance)
	}
	if err := probs.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSynthesize, err)
	}
	if queryProb < 0 || queryProb > 1 {
		return nil, fmt.Errorf("%s: queryProb=%g not in [0,1]: %w",
			methodSynthesize, queryProb, ErrInvalidProbability)
	}
	if totalUpdates < 0 {
		return nil, fmt.Errorf("%s: totalUpdates=%d: %w",
			methodSynthesize, totalUpdates, ErrBadUpdateCount)
	}

	// 2) Fix the candidate universes once.
	universe := coverPairUniverse(cover)
	state := newShadow(base, startEmpty)
	weights := probs.weights()
	rng := rand.New(cfg.src)

	// 3) Weighted, legality-masked update loop. Every iteration emits
	//    exactly one mutation; there is no discard/redraw path.
	ops := make([]Operation, 0, totalUpdates+1)
	for accepted := 0; accepted < totalUpdates; accepted++ {
		insertable := state.insertable(universe)
		deletable := state.deletable(universe)
		activatable := state.activatable(base.Terminals)
		deactivatable := state.deactivatable(base.Terminals)

		// Mask kinds with no legal target out of the draw.
		masked := weights
		maskEmpty(&masked[EdgeInsertion], len(insertable))
		maskEmpty(&masked[EdgeDeletion], len(deletable))
		maskEmpty(&masked[TerminalActivation], len(activatable))
		maskEmpty(&masked[TerminalDeactivation], len(deactivatable))

		sum := 0.0
		for _, w := range masked {
			sum += w
		}
		if sum <= 0 {
			return nil, fmt.Errorf("%s: update %d of %d: %w",
				methodSynthesize, accepted+1, totalUpdates, ErrExhausted)
		}

		dist := distuv.NewCategorical(masked[:], cfg.src)
		switch Kind(dist.Rand()) {
		case EdgeInsertion:
			e := insertable[rng.IntN(len(insertable))]
			ops = append(ops, NewEdgeInsertion(e))
			state.insertEdge(e)
		case EdgeDeletion:
			e := deletable[rng.IntN(len(deletable))]
			ops = append(ops, NewEdgeDeletion(e))
			state.deleteEdge(e)
		case TerminalActivation:
			v := activatable[rng.IntN(len(activatable))]
			ops = append(ops, NewTerminalActivation(v))
			state.activate(v)
		case TerminalDeactivation:
			v := deactivatable[rng.IntN(len(deactivatable))]
			ops = append(ops, NewTerminalDeactivation(v))
			state.deactivate(v)
		}

		// Independent Bernoulli trial per accepted update.
		if rng.Float64() < queryProb {
			ops = append(ops, NewQuery(state.snapshot(base.NumNodes)))
		}
	}

	// 4) Hard guarantee: the sequence ends on an observable snapshot.
	if len(ops) == 0 || ops[len(ops)-1].Kind != Query {
		ops = append(ops, NewQuery(state.snapshot(base.NumNodes)))
	}

	return ops, nil
}

// maskEmpty zeroes a weight whose category has no legal target.
func maskEmpty(w *float64, targets int) {
	if targets == 0 {
		*w = 0
	}
}

// coverPairUniverse enumerates all unordered pairs of cover vertices in
// ascending (u, v) order, each carrying the candidate edge cost. The
// cover is copied and sorted so the universe order is stable regardless
// of the order the sampler drew the set in.
func coverPairUniverse(cover []int) []steiner.Edge {
	sorted := append([]int(nil), cover...)
	sort.Ints(sorted)

	n := len(sorted)
	universe := make([]steiner.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			universe = append(universe, steiner.Edge{
				From: sorted[i],
				To:   sorted[j],
				Cost: candidateEdgeCost,
			})
		}
	}

	return universe
}
