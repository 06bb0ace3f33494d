// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// state.go — the synthesizer's simulated graph state: which edges are
// present and which terminals are active at the current step. Presence
// is keyed on normalized endpoints (steiner.Edge.Key); insertion order
// is preserved so snapshots are deterministic for a fixed seed.

package dynamic

import "github.com/Leon-Degel-Koehn/steinlib/steiner"

// shadow tracks the simulated graph between updates.
type shadow struct {
	// edges holds present edges in insertion order.
	edges []steiner.Edge

	// present maps endpoint keys to the stored edge value.
	present map[[2]int]steiner.Edge

	// terminals holds active terminals in insertion order.
	terminals []int

	// active marks terminal membership.
	active map[int]bool
}

// newShadow seeds the state either empty or from the base instance's
// full edge and terminal sets.
func newShadow(base *steiner.Instance, startEmpty bool) *shadow {
	s := &shadow{
		present: make(map[[2]int]steiner.Edge),
		active:  make(map[int]bool),
	}
	if startEmpty {
		return s
	}

	s.edges = append([]steiner.Edge(nil), base.Edges...)
	for _, e := range s.edges {
		s.present[e.Key()] = e
	}
	s.terminals = append([]int(nil), base.Terminals...)
	for _, t := range s.terminals {
		s.active[t] = true
	}

	return s
}

// insertEdge adds e; the caller guarantees it is absent.
func (s *shadow) insertEdge(e steiner.Edge) {
	s.edges = append(s.edges, e)
	s.present[e.Key()] = e
}

// deleteEdge removes the edge with e's endpoints; the caller guarantees
// it is present. Order of the remaining edges is preserved.
func (s *shadow) deleteEdge(e steiner.Edge) {
	key := e.Key()
	delete(s.present, key)
	for i := range s.edges {
		if s.edges[i].Key() == key {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			break
		}
	}
}

// activate marks v active; the caller guarantees it is inactive.
func (s *shadow) activate(v int) {
	s.terminals = append(s.terminals, v)
	s.active[v] = true
}

// deactivate unmarks v; the caller guarantees it is active.
func (s *shadow) deactivate(v int) {
	delete(s.active, v)
	for i := range s.terminals {
		if s.terminals[i] == v {
			s.terminals = append(s.terminals[:i], s.terminals[i+1:]...)
			break
		}
	}
}

// insertable returns the universe edges not currently present.
func (s *shadow) insertable(universe []steiner.Edge) []steiner.Edge {
	out := make([]steiner.Edge, 0, len(universe))
	for _, e := range universe {
		if _, ok := s.present[e.Key()]; !ok {
			out = append(out, e)
		}
	}

	return out
}

// deletable returns the stored values of universe edges currently
// present; emitting the stored value keeps logged costs consistent with
// the matching insertion.
func (s *shadow) deletable(universe []steiner.Edge) []steiner.Edge {
	out := make([]steiner.Edge, 0, len(universe))
	for _, e := range universe {
		if stored, ok := s.present[e.Key()]; ok {
			out = append(out, stored)
		}
	}

	return out
}

// activatable returns the candidate terminals currently inactive.
func (s *shadow) activatable(candidates []int) []int {
	out := make([]int, 0, len(candidates))
	for _, v := range candidates {
		if !s.active[v] {
			out = append(out, v)
		}
	}

	return out
}

// deactivatable returns the candidate terminals currently active.
func (s *shadow) deactivatable(candidates []int) []int {
	out := make([]int, 0, len(candidates))
	for _, v := range candidates {
		if s.active[v] {
			out = append(out, v)
		}
	}

	return out
}

// snapshot captures the current state as a standalone instance over
// numNodes vertices; later mutations never alias into it.
func (s *shadow) snapshot(numNodes int) *steiner.Instance {
	return steiner.NewInstance(
		numNodes,
		append([]steiner.Edge(nil), s.edges...),
		append([]int(nil), s.terminals...),
	)
}
