package dynamic_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Leon-Degel-Koehn/steinlib/dynamic"
	"github.com/Leon-Degel-Koehn/steinlib/steiner"
	"github.com/Leon-Degel-Koehn/steinlib/stp"
)

// drain consumes the cursor to the end.
func drain(d *dynamic.DynamicInstance) []dynamic.Operation {
	var ops []dynamic.Operation
	for {
		op, ok := d.Next()
		if !ok {
			return ops
		}
		ops = append(ops, op)
	}
}

// TestLoad_Scenario pins the canonical three-line log with one snapshot.
func TestLoad_Scenario(t *testing.T) {
	snapshot := stp.Format(steiner.NewInstance(2,
		[]steiner.Edge{{From: 1, To: 2, Cost: 1}},
		[]int{1},
	))

	di, err := dynamic.Load("E I 1 2 1\nT A 1\nQ 1", []string{snapshot}, 0)
	require.NoError(t, err)
	require.Equal(t, 3, di.Len())
	require.Equal(t, 2, di.NumVertices)

	ops := drain(di)
	require.Equal(t, dynamic.EdgeInsertion, ops[0].Kind)
	require.Equal(t, steiner.Edge{From: 1, To: 2, Cost: 1}, ops[0].Edge)
	require.Equal(t, dynamic.TerminalActivation, ops[1].Kind)
	require.Equal(t, 1, ops[1].Vertex)
	require.Equal(t, dynamic.Query, ops[2].Kind)
	require.Equal(t, 2, ops[2].Snapshot.NumNodes)
	require.Equal(t, []steiner.Edge{{From: 1, To: 2, Cost: 1}}, ops[2].Snapshot.Edges)
	require.Equal(t, []int{1}, ops[2].Snapshot.Terminals)
}

// TestLoad_SkipsHeader: the SECTION UPDATES line and blanks carry no
// operations.
func TestLoad_SkipsHeader(t *testing.T) {
	di, err := dynamic.Load("SECTION UPDATES\n\nT A 3\n", nil, 0)
	require.NoError(t, err)
	require.Equal(t, 1, di.Len())
}

// TestLoad_Errors asserts the typed failure modes of replay.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		log  string
		want error
	}{
		{"unknown tag", "X 1 2", dynamic.ErrMalformedLine},
		{"short edge line", "E I 1 2", dynamic.ErrMalformedLine},
		{"bad edge action", "E X 1 2 1", dynamic.ErrMalformedLine},
		{"bad edge number", "E I one 2 1", dynamic.ErrMalformedLine},
		{"bad terminal action", "T X 1", dynamic.ErrMalformedLine},
		{"bad query index", "Q one", dynamic.ErrMalformedLine},
		{"missing snapshot", "Q 1", dynamic.ErrMissingSnapshot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dynamic.Load(tc.log, nil, 0)
			if !errors.Is(err, tc.want) {
				t.Errorf("want %v, got %v", tc.want, err)
			}
		})
	}
}

// TestLoad_BadSnapshot propagates the codec's typed error.
func TestLoad_BadSnapshot(t *testing.T) {
	_, err := dynamic.Load("Q 1", []string{"SECTION Graph\nNodes x\nEND\nEOF"}, 0)
	if !errors.Is(err, stp.ErrMalformedLine) {
		t.Errorf("want stp.ErrMalformedLine, got %v", err)
	}
}

// TestExportLoad_RoundTrip: a synthesized sequence survives export plus
// reload with payload equality.
func TestExportLoad_RoundTrip(t *testing.T) {
	base, cover := baseTriangle()
	ops, err := dynamic.Synthesize(base, evenProbs, 0.5, cover, false, 20, dynamic.WithSeed(11))
	require.NoError(t, err)

	log, snapshots := dynamic.Export(ops)
	di, err := dynamic.Load(log, snapshots, 42)
	require.NoError(t, err)
	require.Equal(t, 42, di.TargetValue)

	loaded := drain(di)
	require.Len(t, loaded, len(ops))
	for i := range ops {
		require.Equal(t, ops[i].Kind, loaded[i].Kind, "op %d", i)
		switch ops[i].Kind {
		case dynamic.Query:
			require.Equal(t, ops[i].Snapshot, loaded[i].Snapshot, "op %d snapshot", i)
		case dynamic.TerminalActivation, dynamic.TerminalDeactivation:
			require.Equal(t, ops[i].Vertex, loaded[i].Vertex, "op %d vertex", i)
		default:
			require.Equal(t, ops[i].Edge, loaded[i].Edge, "op %d edge", i)
		}
	}
}

// TestReplay_Idempotent: two passes separated by Reset yield identical
// sequences in identical order.
func TestReplay_Idempotent(t *testing.T) {
	base, cover := baseTriangle()
	ops, err := dynamic.Synthesize(base, evenProbs, 0.5, cover, false, 10, dynamic.WithSeed(5))
	require.NoError(t, err)

	log, snapshots := dynamic.Export(ops)
	di, err := dynamic.Load(log, snapshots, 0)
	require.NoError(t, err)

	first := drain(di)
	if _, ok := di.Next(); ok {
		t.Fatal("cursor yielded past exhaustion")
	}
	di.Reset()
	second := drain(di)

	if !reflect.DeepEqual(first, second) {
		t.Error("replays differ after Reset")
	}
}

// TestLoad_NumVertices derives the vertex bound from edge operations only.
func TestLoad_NumVertices(t *testing.T) {
	di, err := dynamic.Load("E I 2 9 1\nT A 40\nE D 9 2 1\n", nil, 0)
	require.NoError(t, err)
	require.Equal(t, 9, di.NumVertices)
}
