package stp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
)

// Format renders in in the canonical SteinLib layout: the Graph section,
// the Terminals section, then the EOF marker. Only the artifacts the
// pipeline produces are emitted (arcs, obstacles and coordinates are
// not written). A nil instance renders as an empty document.
// Complexity: O(E + T)
func Format(in *steiner.Instance) string {
	if in == nil {
		in = &steiner.Instance{}
	}

	var b strings.Builder

	b.WriteString("SECTION Graph\n")
	fmt.Fprintf(&b, "Nodes %d\n", in.NumNodes)
	fmt.Fprintf(&b, "Edges %d\n", in.NumEdges)
	for _, e := range in.Edges {
		fmt.Fprintf(&b, "E %d %d %s\n", e.From, e.To, FormatCost(e.Cost))
	}
	b.WriteString("END\n\n")

	b.WriteString("SECTION Terminals\n")
	fmt.Fprintf(&b, "Terminals %d\n", in.NumTerminals)
	for _, t := range in.Terminals {
		fmt.Fprintf(&b, "T %d\n", t)
	}
	b.WriteString("END\n\n")

	b.WriteString("EOF\n")

	return b.String()
}

// FormatCost renders an edge cost with the shortest representation that
// parses back exactly; integral costs carry no fractional part, so a
// canonical input round-trips byte-for-byte.
func FormatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
