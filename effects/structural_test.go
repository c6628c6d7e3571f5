// Package effects_test exercises the change-statistic registry against
// spec §8's property 2 (locality: Δ depends only on i,j's local
// neighborhood). Property 3 (sign symmetry) has no separate test; see
// TestDeltaMatchesGlobalStatistic's doc comment.
package effects_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/fixtures"
	"github.com/katalvlaran/ergmee/graphstore"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var structuralNames = []string{
	"Arc", "Reciprocity", "TransitiveTriplet", "CyclicTriplet",
	"AltKStar", "AltKTriangle", "AltKTwoPath",
}

func TestStructuralByName_UnknownRejected(t *testing.T) {
	_, ok := effects.StructuralByName("NotARealEffect", 2.0)
	require.False(t, ok)
}

func TestStructuralByName_AllResolve(t *testing.T) {
	for _, name := range structuralNames {
		e, ok := effects.StructuralByName(name, 2.0)
		require.Truef(t, ok, "name=%s", name)
		require.Equal(t, name, e.Name)
		require.Equal(t, effects.Struct, e.Kind)
	}
}

// altGeometric is the alternating-star weight function: the value an
// alternating-k-statistic with decay λ assigns to a degree-d node
// (structural.go's altKStarDelta/altKTwoPathDelta telescope this).
func altGeometric(decay, d float64) float64 {
	return decay * (1 - math.Pow(1-1/decay, d))
}

// globalArcCount, globalReciprocityCount, globalAltKStar, and
// globalAltKTwoPath recompute each statistic directly from the arc set,
// independently of any effect's Δ formula. They are this test's ground
// truth for spec §8 property 2 (f(g')−f(g) = Δ_f(g,i,j)).
//
// Arc, Reciprocity, AltKStar, and AltKTwoPath are the four structural
// effects whose Δ is the marginal of a statistic that sums a per-node (or
// per-dyad) term independently: adding i->j changes only node i's
// out-degree term and/or node j's in-degree term (or the single dyad
// {i,j}'s mutual-tie indicator), never any other node's or dyad's term.
// That independence is what makes a literal before/after global recount
// meaningful here. TransitiveTriplet, CyclicTriplet, and AltKTriangle
// don't have that property — their Δ is a shared-partner count that can
// also change for *other* arcs when i->j is added (the new arc can itself
// become a shared partner of a pre-existing pair) — so they are checked
// separately in TestDeltaMatchesBruteForceNeighborCounts against
// independently recomputed neighbor data instead of a global recount.
func globalArcCount(g *graphstore.Graph) float64 {
	count := 0
	for i := 0; i < g.N(); i++ {
		count += len(g.Out(graphstore.Node(i)))
	}

	return float64(count)
}

func globalReciprocityCount(g *graphstore.Graph) float64 {
	count := 0
	for i := 0; i < g.N(); i++ {
		for j := i + 1; j < g.N(); j++ {
			u, v := graphstore.Node(i), graphstore.Node(j)
			if g.IsArc(u, v) && g.IsArc(v, u) {
				count++
			}
		}
	}

	return float64(count)
}

func globalAltKStar(g *graphstore.Graph, decay float64) float64 {
	total := 0.0
	for i := 0; i < g.N(); i++ {
		total += altGeometric(decay, float64(len(g.Out(graphstore.Node(i)))))
	}

	return total
}

func globalAltKTwoPath(g *graphstore.Graph, decay float64) float64 {
	total := 0.0
	for i := 0; i < g.N(); i++ {
		n := graphstore.Node(i)
		total += altGeometric(decay, float64(len(g.Out(n))))
		total += altGeometric(decay, float64(len(g.In(n))))
	}

	return total
}

// TestDeltaMatchesGlobalStatistic is spec §8 property 2 for the four
// structural effects whose global statistic can be recomputed without
// running into the shared-partner cascade described above: it adds a real
// arc to a random graph, recomputes the whole-graph statistic from
// scratch before and after, and checks the difference against Δ computed
// on the pre-toggle graph.
//
// Property 3 (sign symmetry) isn't a separate check here: this codebase's
// sampler (basic.go's evaluate) computes a deletion's stored Δ by
// temporarily removing the arc and calling this same insert-shaped
// DeltaFunc, with the sign flip applied only to the acceptance-ratio
// exponent — so del-Δ is definitionally insert-Δ-on-the-arc-absent-graph,
// and the only independent thing left to verify is that insert-Δ matches
// the true statistic difference, which is exactly what this test does.
func TestDeltaMatchesGlobalStatistic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := fixtures.RandomSparse(10, 0.3, rng)
	require.NoError(t, err)

	i, j := graphstore.Node(0), graphstore.Node(1)
	if g.IsArc(i, j) {
		require.NoError(t, g.RemoveArc(i, j))
	}

	cases := []struct {
		name   string
		global func(*graphstore.Graph) float64
	}{
		{"Arc", globalArcCount},
		{"Reciprocity", globalReciprocityCount},
		{"AltKStar", func(g *graphstore.Graph) float64 { return globalAltKStar(g, 2.0) }},
		{"AltKTwoPath", func(g *graphstore.Graph) float64 { return globalAltKTwoPath(g, 2.0) }},
	}

	for _, c := range cases {
		e, ok := effects.StructuralByName(c.name, 2.0)
		require.Truef(t, ok, "name=%s", c.name)

		before := c.global(g)
		delta := e.Delta(g, i, j)
		require.NoError(t, g.InsertArc(i, j))
		after := c.global(g)
		require.NoError(t, g.RemoveArc(i, j))

		require.InDeltaf(t, delta, after-before, 1e-9, "name=%s", c.name)
	}
}

// bruteTwoPath and bruteMixed recompute graphstore's two-path matrices by
// direct arc-set traversal, independently of Graph.TwoPath/Graph.Mixed's
// incrementally-maintained counters (spec §8 property 1's ground truth,
// applied here to the Δ formulas that consume those counters).
func bruteTwoPath(g *graphstore.Graph, i, j graphstore.Node) int32 {
	var n int32
	for _, k := range g.Out(i) {
		for _, m := range g.Out(k) {
			if m == j {
				n++
			}
		}
	}

	return n
}

func bruteMixed(g *graphstore.Graph, i, j graphstore.Node) int32 {
	neighbors := func(u graphstore.Node) map[graphstore.Node]bool {
		set := make(map[graphstore.Node]bool)
		for _, v := range g.Out(u) {
			set[v] = true
		}
		for _, v := range g.In(u) {
			set[v] = true
		}

		return set
	}
	ni, nj := neighbors(i), neighbors(j)
	var n int32
	for k := range ni {
		if nj[k] {
			n++
		}
	}

	return n
}

// TestDeltaMatchesBruteForceNeighborCounts checks TransitiveTriplet,
// CyclicTriplet, and AltKTriangle against independently (brute-force)
// recomputed two-path/shared-partner counts, rather than the graph's
// cached matrices their Δ formulas actually read. See
// TestDeltaMatchesGlobalStatistic's doc comment for why these three are
// not checked against a whole-graph recount.
func TestDeltaMatchesBruteForceNeighborCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := fixtures.RandomSparse(10, 0.3, rng)
	require.NoError(t, err)

	i, j := graphstore.Node(0), graphstore.Node(1)
	if g.IsArc(i, j) {
		require.NoError(t, g.RemoveArc(i, j))
	}

	decay := 2.0

	transitive, ok := effects.StructuralByName("TransitiveTriplet", decay)
	require.True(t, ok)
	require.InDeltaf(t, float64(bruteTwoPath(g, i, j)), transitive.Delta(g, i, j), 1e-9, "TransitiveTriplet")

	cyclic, ok := effects.StructuralByName("CyclicTriplet", decay)
	require.True(t, ok)
	require.InDeltaf(t, float64(bruteTwoPath(g, j, i)), cyclic.Delta(g, i, j), 1e-9, "CyclicTriplet")

	triangle, ok := effects.StructuralByName("AltKTriangle", decay)
	require.True(t, ok)
	wantTriangle := decay * (1 - math.Pow(1-1/decay, float64(bruteMixed(g, i, j))))
	require.InDeltaf(t, wantTriangle, triangle.Delta(g, i, j), 1e-9, "AltKTriangle")
}

// TestLocality is spec §8 property 2: toggling an arc far away from i,j
// (no shared endpoint, no shared neighbor) must not change any effect's Δ
// for the (i,j) pair under test.
func TestLocality(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(8, 14).Draw(rt, "n")
		seed := rapid.Int64Range(1, 1<<30).Draw(rt, "seed")
		rng := rand.New(rand.NewSource(seed))

		g, err := fixtures.RandomSparse(n, 0.15, rng)
		require.NoError(rt, err)

		i, j := graphstore.Node(0), graphstore.Node(1)
		// pick a remote pair disjoint from {i,j} and from each other's
		// neighborhoods by construction: last two nodes, far from 0/1 in a
		// sparse graph at this density with overwhelming probability.
		a, b := graphstore.Node(n-2), graphstore.Node(n-1)
		if a == i || a == j || b == i || b == j {
			rt.Skip("remote pair collides with test pair at this n")
		}
		if g.IsArcIgnoreDir(a, i) || g.IsArcIgnoreDir(a, j) || g.IsArcIgnoreDir(b, i) || g.IsArcIgnoreDir(b, j) {
			rt.Skip("remote pair shares a neighbor with the test pair")
		}

		for _, name := range structuralNames {
			// Arc's Δ is a constant 1 by definition: locality is trivially
			// satisfied and not an interesting check for it.
			if name == "Arc" {
				continue
			}
			e, ok := effects.StructuralByName(name, 2.0)
			require.True(rt, ok)

			before := e.Delta(g, i, j)

			toggled := g.IsArc(a, b)
			if toggled {
				require.NoError(rt, g.RemoveArc(a, b))
			} else {
				require.NoError(rt, g.InsertArc(a, b))
			}

			after := e.Delta(g, i, j)

			// restore
			if toggled {
				require.NoError(rt, g.InsertArc(a, b))
			} else {
				require.NoError(rt, g.RemoveArc(a, b))
			}

			require.InDeltaf(rt, before, after, 1e-9, "name=%s n=%d seed=%d", name, n, seed)
		}
	})
}
