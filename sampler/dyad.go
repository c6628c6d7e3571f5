// File: dyad.go
// Role: dyad-selection policies shared by Basic and IFD (spec §4.3 step 1).
package sampler

import (
	"math/rand"

	"github.com/katalvlaran/ergmee/graphstore"
)

// pickUnconditional draws i,j uniformly at random with i != j over the
// full node set.
func pickUnconditional(g *graphstore.Graph, rng *rand.Rand) (graphstore.Node, graphstore.Node) {
	n := g.N()
	for {
		i := graphstore.Node(rng.Intn(n))
		j := graphstore.Node(rng.Intn(n))
		if i != j {
			return i, j
		}
	}
}

// pickConditional draws i,j uniformly from the snowball's inner nodes,
// i != j, with |zone[i]-zone[j]| <= 1 (spec §4.3's "proposal is always
// within-or-adjacent zones").
func pickConditional(g *graphstore.Graph, rng *rand.Rand) (graphstore.Node, graphstore.Node) {
	inner := g.Snowball().InnerNodes()
	snow := g.Snowball()
	for {
		i := inner[rng.Intn(len(inner))]
		j := inner[rng.Intn(len(inner))]
		if i == j {
			continue
		}
		zi, zj := snow.Zone(i), snow.Zone(j)
		diff := zi - zj
		if diff == 1 || diff == -1 || diff == 0 {
			return i, j
		}
	}
}

// wouldDropLastPrecedingWaveConnection reports whether removing arc i->j
// would zero out either endpoint's prevWaveDegree (spec §4.3's "not a
// deletion that would drop the last connection of either endpoint to its
// preceding wave"). It mirrors graphstore.Snowball.onToggle's own
// decision of whether a toggle changes ignore-direction connectivity.
func wouldDropLastPrecedingWaveConnection(g *graphstore.Graph, i, j graphstore.Node) bool {
	if g.IsArc(j, i) {
		// the reciprocal arc keeps i and j connected regardless; removing
		// i->j alone does not change prevWaveDegree.
		return false
	}
	snow := g.Snowball()
	if snow.Zone(j) == snow.Zone(i)-1 && snow.PrevWaveDegree(i) == 1 {
		return true
	}
	if snow.Zone(i) == snow.Zone(j)-1 && snow.PrevWaveDegree(j) == 1 {
		return true
	}

	return false
}

// pickDyad implements spec §4.3 step 1 in full: mode selection, the
// forbidReciprocity redraw, and (conditional mode) the last-connection
// guard. It returns the chosen dyad and whether the proposal is a
// deletion.
func pickDyad(g *graphstore.Graph, rng *rand.Rand, p Params) (i, j graphstore.Node, isDelete bool) {
	for {
		if p.UseConditional {
			i, j = pickConditional(g, rng)
		} else {
			i, j = pickUnconditional(g, rng)
		}
		isDelete = g.IsArc(i, j)

		if !p.UseConditional && p.ForbidReciprocity && !isDelete && g.IsArc(j, i) {
			continue
		}
		if p.UseConditional && isDelete && wouldDropLastPrecedingWaveConnection(g, i, j) {
			continue
		}

		return i, j, isDelete
	}
}

// pickNonArcDyad draws i,j uniformly with i != j and !IsArc(i,j), used by
// the IFD sampler's add half of a proposal pair (spec §4.4).
func pickNonArcDyad(g *graphstore.Graph, rng *rand.Rand, conditional bool) (graphstore.Node, graphstore.Node) {
	for {
		var i, j graphstore.Node
		if conditional {
			i, j = pickConditional(g, rng)
		} else {
			i, j = pickUnconditional(g, rng)
		}
		if !g.IsArc(i, j) {
			return i, j
		}
	}
}

// pickExistingArc draws an existing arc approximately uniformly: pick a
// source node at random from nodes and, if it has out-neighbors, a random
// one of them; redraw otherwise. Used by the IFD sampler's del half of a
// proposal pair (spec §4.4). nodes is precomputed once per sweep by the
// caller (allNodesOrInner) to avoid reallocating it on every proposal.
func pickExistingArc(g *graphstore.Graph, rng *rand.Rand, conditional bool, nodes []graphstore.Node) (graphstore.Node, graphstore.Node) {
	for {
		i := nodes[rng.Intn(len(nodes))]
		out := g.Out(i)
		if len(out) == 0 {
			continue
		}
		j := out[rng.Intn(len(out))]
		if conditional {
			snow := g.Snowball()
			if snow.Zone(j) >= snow.ZMax() {
				continue // j must also be an inner node
			}
			diff := snow.Zone(i) - snow.Zone(j)
			if diff != 0 && diff != 1 && diff != -1 {
				continue
			}
			if wouldDropLastPrecedingWaveConnection(g, i, j) {
				continue
			}
		}

		return i, j
	}
}

func allNodesOrInner(g *graphstore.Graph, conditional bool) []graphstore.Node {
	if conditional {
		return g.Snowball().InnerNodes()
	}
	nodes := make([]graphstore.Node, g.N())
	for v := range nodes {
		nodes[v] = graphstore.Node(v)
	}

	return nodes
}
