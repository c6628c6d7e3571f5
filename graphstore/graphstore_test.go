// Package graphstore_test exercises the directed graph's arc lifecycle and
// the invariants spec §8 requires: adjacency/two-path consistency after
// every toggle (property 1).
package graphstore_test

import (
	"testing"

	"github.com/katalvlaran/ergmee/graphstore"
	"github.com/stretchr/testify/require"
)

func TestInsertRemoveArc_Basic(t *testing.T) {
	g, err := graphstore.New(4)
	require.NoError(t, err)

	require.False(t, g.IsArc(0, 1))
	require.NoError(t, g.InsertArc(0, 1))
	require.True(t, g.IsArc(0, 1))
	require.Equal(t, 1, g.ArcCount())

	require.ErrorIs(t, g.InsertArc(0, 1), graphstore.ErrArcExists)
	require.ErrorIs(t, g.InsertArc(2, 2), graphstore.ErrSelfLoop)
	require.ErrorIs(t, g.InsertArc(0, 9), graphstore.ErrNodeRange)

	require.NoError(t, g.RemoveArc(0, 1))
	require.False(t, g.IsArc(0, 1))
	require.ErrorIs(t, g.RemoveArc(0, 1), graphstore.ErrArcMissing)
}

func TestIsArcIgnoreDir(t *testing.T) {
	g, err := graphstore.New(3)
	require.NoError(t, err)
	require.NoError(t, g.InsertArc(0, 1))
	require.True(t, g.IsArcIgnoreDir(0, 1))
	require.True(t, g.IsArcIgnoreDir(1, 0))
	require.False(t, g.IsArcIgnoreDir(1, 2))
}

// TestTwoPathConsistency is spec §8 property 1: after any sequence of
// toggles, the incrementally-maintained matrices equal a from-scratch
// recomputation.
func TestTwoPathConsistency(t *testing.T) {
	g, err := graphstore.New(6)
	require.NoError(t, err)
	toggles := [][2]graphstore.Node{
		{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 5}, {5, 0}, {1, 4},
	}
	for _, a := range toggles {
		require.NoError(t, g.InsertArc(a[0], a[1]))
		assertMatricesConsistent(t, g)
	}
	// remove two of the arcs and re-check
	require.NoError(t, g.RemoveArc(0, 1))
	assertMatricesConsistent(t, g)
	require.NoError(t, g.RemoveArc(2, 0))
	assertMatricesConsistent(t, g)
}

func assertMatricesConsistent(t *testing.T, g *graphstore.Graph) {
	t.Helper()
	two, mix := g.ExportForTest_RecomputeFromScratch()
	for i := 0; i < g.N(); i++ {
		for j := 0; j < g.N(); j++ {
			ni, nj := graphstore.Node(i), graphstore.Node(j)
			require.Equalf(t, two.At(ni, nj), g.TwoPath(ni, nj), "twoPath[%d][%d]", i, j)
			require.Equalf(t, mix.At(ni, nj), g.Mixed(ni, nj), "mixed[%d][%d]", i, j)
		}
	}
}

func TestArcCorrection(t *testing.T) {
	g, err := graphstore.New(5)
	require.NoError(t, err)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 2))
	got := g.ArcCorrection()
	// N = 5*4 = 20 dyads, L = 2: ln(2/18)
	require.InDelta(t, -2.197225, got, 1e-5)
}

func TestClone_Independence(t *testing.T) {
	g, err := graphstore.New(4)
	require.NoError(t, err)
	require.NoError(t, g.InsertArc(0, 1))
	cp := g.Clone()
	require.NoError(t, cp.InsertArc(1, 2))
	require.False(t, g.IsArc(1, 2))
	require.True(t, cp.IsArc(1, 2))
}
