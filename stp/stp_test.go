package stp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leon-Degel-Koehn/steinlib/steiner"
	"github.com/Leon-Degel-Koehn/steinlib/stp"
)

const sampleSTP = `
	SECTION Graph
	Nodes 3
	Edges 3
	E 1 2 1
	E 2 3 2
	E 1 3 3
	END

	SECTION Terminals
	Terminals 2
	T 1
	T 3
	END

	EOF
`

// TestParse_Literal pins the exact parse of a minimal document.
func TestParse_Literal(t *testing.T) {
	in, err := stp.Parse("SECTION Graph\nNodes 3\nEdges 1\nE 1 2 5\nEND\nSECTION Terminals\nTerminals 1\nT 1\nEND\nEOF")
	require.NoError(t, err)

	assert.Equal(t, 3, in.NumNodes)
	assert.Equal(t, 1, in.NumEdges)
	assert.Equal(t, []steiner.Edge{{From: 1, To: 2, Cost: 5.0}}, in.Edges)
	assert.Equal(t, []int{1}, in.Terminals)
}

// TestParse_Sample checks a larger indented document, matching edges
// order-insensitively and terminals order-sensitively.
func TestParse_Sample(t *testing.T) {
	in, err := stp.Parse(sampleSTP)
	require.NoError(t, err)

	assert.Equal(t, 3, in.NumNodes)
	assert.Equal(t, 3, in.NumEdges)
	assert.Equal(t, 2, in.NumTerminals)

	assert.ElementsMatch(t, []steiner.Edge{
		{From: 1, To: 2, Cost: 1},
		{From: 2, To: 3, Cost: 2},
		{From: 1, To: 3, Cost: 3},
	}, in.Edges)
	assert.Equal(t, []int{1, 3}, in.Terminals)
}

// TestParse_DefaultCost covers the widely used cost-less E line.
func TestParse_DefaultCost(t *testing.T) {
	in, err := stp.Parse("SECTION Graph\nE 4 5\nEND\nEOF")
	require.NoError(t, err)
	require.Len(t, in.Edges, 1)
	assert.Equal(t, steiner.Edge{From: 4, To: 5, Cost: 1.0}, in.Edges[0])
}

// TestParse_Malformed asserts typed errors for unparseable fields.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"bad node count", "SECTION Graph\nNodes x\nEND\nEOF"},
		{"short edge line", "SECTION Graph\nE 1\nEND\nEOF"},
		{"bad edge cost", "SECTION Graph\nE 1 2 zero\nEND\nEOF"},
		{"bad terminal", "SECTION Terminals\nT one\nEND\nEOF"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stp.Parse(tc.input)
			if !errors.Is(err, stp.ErrMalformedLine) {
				t.Errorf("want ErrMalformedLine, got %v", err)
			}
		})
	}
}

// TestRoundTrip verifies that parsing a canonical document and
// re-rendering it reproduces the input line-for-line (modulo blank
// lines and indentation).
func TestRoundTrip(t *testing.T) {
	in, err := stp.Parse(sampleSTP)
	require.NoError(t, err)

	assert.Equal(t, significantLines(sampleSTP), significantLines(stp.Format(in)))
}

// TestFormat_EmptyAndNil pins rendering of degenerate instances.
func TestFormat_EmptyAndNil(t *testing.T) {
	want := significantLines("SECTION Graph\nNodes 0\nEdges 0\nEND\nSECTION Terminals\nTerminals 0\nEND\nEOF")

	assert.Equal(t, want, significantLines(stp.Format(&steiner.Instance{})))
	assert.Equal(t, want, significantLines(stp.Format(nil)))
}

// significantLines trims every line and drops blanks, so comparisons
// ignore indentation and spacing but keep order.
func significantLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
