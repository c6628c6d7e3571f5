// File: structural.go
// Role: structural (topology-only) change statistics.
//
// Every DeltaFunc here answers: "if arc i->j is added to g's current
// state, how much does this statistic change?" (spec §4.2). None of them
// mutate g; the (optional) temporary removal for a deletion's Δ is the
// caller's responsibility (sampler package), per spec §4.3 step 2.
package effects

import (
	"math"

	"github.com/katalvlaran/ergmee/graphstore"
)

// StructuralByName resolves a canonical structural-effect name (plus a
// decay parameter for the Alt* family, ignored by the fixed-form effects)
// to an Effect. It is the concrete binding driver.resolveStruct walks for
// structParams = {Arc, Reciprocity, AltKTriangle(decay), ...}.
func StructuralByName(name string, decay float64) (Effect, bool) {
	switch name {
	case "Arc":
		return Effect{Name: "Arc", Kind: Struct, Fn: arcDelta}, true
	case "Reciprocity":
		return Effect{Name: "Reciprocity", Kind: Struct, Fn: reciprocityDelta}, true
	case "TransitiveTriplet":
		return Effect{Name: "TransitiveTriplet", Kind: Struct, Fn: transitiveTripletDelta}, true
	case "CyclicTriplet":
		return Effect{Name: "CyclicTriplet", Kind: Struct, Fn: cyclicTripletDelta}, true
	case "AltKStar":
		return Effect{Name: "AltKStar", Kind: Struct, Fn: altKStarDelta(decay)}, true
	case "AltKTriangle":
		return Effect{Name: "AltKTriangle", Kind: Struct, Fn: altKTriangleDelta(decay)}, true
	case "AltKTwoPath":
		return Effect{Name: "AltKTwoPath", Kind: Struct, Fn: altKTwoPathDelta(decay)}, true
	default:
		return Effect{}, false
	}
}

// arcDelta is the simplest sufficient statistic: the arc count itself.
// Adding i->j always changes it by exactly 1.
func arcDelta(_ *graphstore.Graph, _, _ graphstore.Node, _ int) float64 {
	return 1
}

// reciprocityDelta counts mutual dyads. Adding i->j creates a mutual dyad
// (and so increments the statistic) iff j->i already exists.
func reciprocityDelta(g *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
	if g.IsArc(j, i) {
		return 1
	}

	return 0
}

// transitiveTripletDelta counts transitive triples i->k->j with i->j
// (spec §3's directed two-path count feeds this directly): adding i->j
// closes one transitive triple for every existing k with i->k and k->j —
// exactly graphstore's directed two-path count.
func transitiveTripletDelta(g *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
	return float64(g.TwoPath(i, j))
}

// cyclicTripletDelta counts 3-cycles i->j->k->i closed by adding i->j: for
// every k with j->k and k->i, i.e. the two-path count in the *reverse*
// orientation j->k->i, which graphstore exposes as TwoPath(j,i).
func cyclicTripletDelta(g *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
	return float64(g.TwoPath(j, i))
}

// altKStarDelta implements the alternating-k-star statistic's change
// value: for out-stars, adding i->j increases out-degree(i) by one, and
// the alternating-k-star contribution of a degree-d node under geometric
// weighting with decay λ is λ*(1 - (1-1/λ)^d); the marginal contribution
// of going from degree d to d+1 is (1-1/λ)^d (the standard ERGM
// "alternating star" telescoping identity). d here is out-degree(i)
// *before* the new arc.
func altKStarDelta(decay float64) DeltaFunc {
	return func(g *graphstore.Graph, i, _ graphstore.Node, _ int) float64 {
		d := float64(len(g.Out(i)))

		return math.Pow(1-1/decay, d)
	}
}

// altKTriangleDelta is the alternating-k-triangle change statistic: the
// marginal contribution of the shared partners of i and j, geometrically
// down-weighted by decay. Shared partners are taken from Mixed(i,j), the
// count of nodes adjacent to both i and j regardless of arc direction;
// the directed TwoPath count is not used.
func altKTriangleDelta(decay float64) DeltaFunc {
	return func(g *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
		shared := float64(g.Mixed(i, j))

		return decay * (1 - math.Pow(1-1/decay, shared))
	}
}

// altKTwoPathDelta is the change statistic registered as AltKTwoPath: the
// geometrically down-weighted marginal of out-degree(i) plus that of
// in-degree(j), both taken *before* the new arc (an alternating out-star
// term at i plus an alternating in-star term at j). It does not read the
// two-path matrices, so two-paths through the new arc are not counted.
func altKTwoPathDelta(decay float64) DeltaFunc {
	return func(g *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
		outI := float64(len(g.Out(i)))
		inJ := float64(len(g.In(j)))

		return math.Pow(1-1/decay, outI) + math.Pow(1-1/decay, inJ)
	}
}
