// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// types.go — the Operation tagged variant and the update-kind weights.

package dynamic

import (
	"fmt"
	"strconv"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
)

// Kind discriminates the Operation variant.
type Kind uint8

const (
	// EdgeInsertion adds Edge to the simulated graph.
	EdgeInsertion Kind = iota

	// EdgeDeletion removes Edge (matched by endpoints) from the graph.
	EdgeDeletion

	// TerminalActivation marks Vertex as an active terminal.
	TerminalActivation

	// TerminalDeactivation unmarks Vertex as a terminal.
	TerminalDeactivation

	// Query snapshots the full graph state after all prior operations.
	Query
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case EdgeInsertion:
		return "EdgeInsertion"
	case EdgeDeletion:
		return "EdgeDeletion"
	case TerminalActivation:
		return "TerminalActivation"
	case TerminalDeactivation:
		return "TerminalDeactivation"
	case Query:
		return "Query"
	default:
		return "Unknown"
	}
}

// Operation is one atomic step of a dynamic workload. Exactly one
// payload field is meaningful, selected by Kind: Edge for edge kinds,
// Vertex for terminal kinds, Snapshot for Query.
type Operation struct {
	// Kind selects the variant.
	Kind Kind

	// Edge is the payload of EdgeInsertion and EdgeDeletion.
	Edge steiner.Edge

	// Vertex is the payload of TerminalActivation and TerminalDeactivation.
	Vertex int

	// Snapshot is the payload of Query: graph state after all operations
	// applied so far.
	Snapshot *steiner.Instance
}

// NewEdgeInsertion builds an edge-insertion operation.
func NewEdgeInsertion(e steiner.Edge) Operation {
	return Operation{Kind: EdgeInsertion, Edge: e}
}

// NewEdgeDeletion builds an edge-deletion operation.
func NewEdgeDeletion(e steiner.Edge) Operation {
	return Operation{Kind: EdgeDeletion, Edge: e}
}

// NewTerminalActivation builds a terminal-activation operation.
func NewTerminalActivation(v int) Operation {
	return Operation{Kind: TerminalActivation, Vertex: v}
}

// NewTerminalDeactivation builds a terminal-deactivation operation.
func NewTerminalDeactivation(v int) Operation {
	return Operation{Kind: TerminalDeactivation, Vertex: v}
}

// NewQuery builds a query operation around a state snapshot.
func NewQuery(snapshot *steiner.Instance) Operation {
	return Operation{Kind: Query, Snapshot: snapshot}
}

// String renders the update-log line form of a mutation operation
// ("E I 1 2 1", "T D 7", ...). A Query renders as the bare tag "Q";
// its on-disk form carries a snapshot index owned by the exporter.
func (op Operation) String() string {
	switch op.Kind {
	case EdgeInsertion:
		return fmt.Sprintf("E I %d %d %s", op.Edge.From, op.Edge.To, formatCost(op.Edge.Cost))
	case EdgeDeletion:
		return fmt.Sprintf("E D %d %d %s", op.Edge.From, op.Edge.To, formatCost(op.Edge.Cost))
	case TerminalActivation:
		return fmt.Sprintf("T A %d", op.Vertex)
	case TerminalDeactivation:
		return fmt.Sprintf("T D %d", op.Vertex)
	case Query:
		return "Q"
	default:
		return "?"
	}
}

// formatCost matches the stp writer's rendering so log lines and
// snapshot files agree on cost representation.
func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// Probabilities carries the relative weight of each mutation kind for
// the synthesizer's per-step weighted draw. Weights are relative, not
// normalized; they must be non-negative and sum to a positive value.
type Probabilities struct {
	EdgeInsertion        float64
	EdgeDeletion         float64
	TerminalActivation   float64
	TerminalDeactivation float64
}

// weights returns the four weights in the Kind order of the mutation
// variants (EdgeInsertion..TerminalDeactivation).
func (p Probabilities) weights() [numMutationKinds]float64 {
	return [numMutationKinds]float64{
		p.EdgeInsertion,
		p.EdgeDeletion,
		p.TerminalActivation,
		p.TerminalDeactivation,
	}
}

// validate rejects negative weights and an all-zero weight vector.
func (p Probabilities) validate() error {
	sum := 0.0
	for _, w := range p.weights() {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %g", ErrInvalidWeights, w)
		}
		sum += w
	}
	if sum <= 0 {
		return fmt.Errorf("%w: weight sum %g", ErrInvalidWeights, sum)
	}

	return nil
}

// numMutationKinds counts the non-query operation kinds.
const numMutationKinds = 4
