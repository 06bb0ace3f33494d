package gen_test

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Leon-Degel-Koehn/steinlib/gen"
	"github.com/Leon-Degel-Koehn/steinlib/steiner"
)

// TestGenerate_Errors verifies that invalid parameters and options are
// rejected before any sampling happens.
func TestGenerate_Errors(t *testing.T) {
	if _, _, err := gen.Generate(0, 0, 0, 0.5); !errors.Is(err, gen.ErrTooFewVertices) {
		t.Errorf("n=0: want ErrTooFewVertices, got %v", err)
	}
	if _, _, err := gen.Generate(5, 2, 2, 1.5); !errors.Is(err, gen.ErrInvalidProbability) {
		t.Errorf("p=1.5: want ErrInvalidProbability, got %v", err)
	}
	if _, _, err := gen.Generate(5, 2, 2, -0.1); !errors.Is(err, gen.ErrInvalidProbability) {
		t.Errorf("p=-0.1: want ErrInvalidProbability, got %v", err)
	}
	if _, _, err := gen.Generate(5, 2, 6, 0.5); !errors.Is(err, gen.ErrInvalidSubsetRequest) {
		t.Errorf("cover>n: want ErrInvalidSubsetRequest, got %v", err)
	}
	if _, _, err := gen.Generate(5, 6, 2, 0.5); !errors.Is(err, gen.ErrInvalidSubsetRequest) {
		t.Errorf("terminals>n: want ErrInvalidSubsetRequest, got %v", err)
	}
	if _, _, err := gen.Generate(5, 2, 2, 0.5, gen.WithMaxAttempts(-1)); !errors.Is(err, gen.ErrOptionViolation) {
		t.Errorf("negative budget: want ErrOptionViolation, got %v", err)
	}
}

// TestGenerate_FullDensityTriangle: with n=3, two terminals, cover size 1
// and p=1.0 every admissible edge exists, so generation must terminate on
// the first attempt with a connected instance.
func TestGenerate_FullDensityTriangle(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		in, cover, err := gen.Generate(3, 2, 1, 1.0, gen.WithSeed(seed), gen.WithMaxAttempts(1))
		require.NoError(t, err, "seed %d", seed)

		require.Len(t, cover, 1)
		require.Len(t, in.Terminals, 2)
		require.True(t, terminalsReachable(in), "seed %d: terminals disconnected", seed)
	}
}

// TestGenerate_Properties sweeps seeds and checks every invariant the
// sampler promises: exact cover size, cover-touching edges, endpoint
// uniqueness, consistent counters and terminal connectivity.
func TestGenerate_Properties(t *testing.T) {
	const (
		n     = 14
		terms = 4
		cov   = 6
		p     = 0.6
	)
	for seed := uint64(1); seed <= 10; seed++ {
		in, cover, err := gen.Generate(n, terms, cov, p, gen.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		// Cover: exact size, distinct, in range.
		require.Len(t, cover, cov)
		inCover := make(map[int]bool, cov)
		for _, v := range cover {
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, n)
			require.False(t, inCover[v], "duplicate cover vertex %d", v)
			inCover[v] = true
		}

		// Edges: each touches the cover, no duplicated endpoint pair.
		seen := make(map[[2]int]bool, len(in.Edges))
		for _, e := range in.Edges {
			require.True(t, inCover[e.From] || inCover[e.To],
				"seed %d: edge %v misses the cover", seed, e)
			require.False(t, seen[e.Key()], "seed %d: duplicate edge %v", seed, e)
			seen[e.Key()] = true
		}

		require.Equal(t, len(in.Edges), in.NumEdges)
		require.Equal(t, n, in.NumNodes)
		require.Len(t, in.Terminals, terms)
		require.True(t, terminalsReachable(in), "seed %d: terminals disconnected", seed)
	}
}

// TestGenerate_Deterministic: one seed, one instance.
func TestGenerate_Deterministic(t *testing.T) {
	a, coverA, err := gen.Generate(10, 3, 4, 0.5, gen.WithSeed(7))
	require.NoError(t, err)
	b, coverB, err := gen.Generate(10, 3, 4, 0.5, gen.WithSeed(7))
	require.NoError(t, err)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different instances")
	}
	if !reflect.DeepEqual(coverA, coverB) {
		t.Error("same seed produced different covers")
	}
}

// TestGenerate_Timeout: an empty cover admits no edges at all, so two
// terminals can never connect and the attempt budget must run out.
func TestGenerate_Timeout(t *testing.T) {
	_, _, err := gen.Generate(4, 2, 0, 0.5, gen.WithSeed(1), gen.WithMaxAttempts(8))
	if !errors.Is(err, gen.ErrGenerationTimeout) {
		t.Errorf("want ErrGenerationTimeout, got %v", err)
	}
}

// TestGenerate_NoTerminals: an empty terminal set accepts the first
// sample unconditionally, even with p=0.
func TestGenerate_NoTerminals(t *testing.T) {
	in, cover, err := gen.Generate(5, 0, 0, 0.0, gen.WithSeed(1), gen.WithMaxAttempts(1))
	require.NoError(t, err)
	require.Empty(t, in.Edges)
	require.Empty(t, in.Terminals)
	require.Empty(t, cover)
}

// TestGenerate_CostFn: a custom weight policy reaches every edge.
func TestGenerate_CostFn(t *testing.T) {
	in, _, err := gen.Generate(6, 2, 3, 0.8,
		gen.WithSeed(3),
		gen.WithCostFn(func(*rand.Rand) float64 { return 2.5 }),
	)
	require.NoError(t, err)
	for _, e := range in.Edges {
		require.Equal(t, 2.5, e.Cost)
	}
}

// terminalsReachable re-checks the connectivity invariant with an
// independent BFS over the instance's undirected edges.
func terminalsReachable(in *steiner.Instance) bool {
	if len(in.Terminals) == 0 {
		return true
	}

	adjacency := make(map[int][]int, in.NumNodes)
	for _, e := range in.Edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
		adjacency[e.To] = append(adjacency[e.To], e.From)
	}

	visited := map[int]bool{in.Terminals[0]: true}
	queue := []int{in.Terminals[0]}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nbr := range adjacency[v] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	for _, term := range in.Terminals {
		if !visited[term] {
			return false
		}
	}

	return true
}
