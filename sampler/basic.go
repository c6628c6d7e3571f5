// File: basic.go
// Role: the basic Metropolis toggle sampler (spec §4.3, C3).
package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/graphstore"
)

// Basic runs the single-dyad Metropolis sampler against a fixed effect
// registry. The zero value is ready to use; Basic carries no state of its
// own between calls.
type Basic struct{}

// Step runs one sweep of p.M proposals (spec §4.3) and returns the
// accumulated accept statistics. theta must have length reg.Len().
func (Basic) Step(g *graphstore.Graph, reg *effects.Registry, theta []float64, rng *rand.Rand, p Params) Result {
	s := &sweepState{
		g:      g,
		reg:    reg,
		theta:  theta,
		rng:    rng,
		params: p,
		delta:  make([]float64, reg.Len()),
		result: newResult(reg.Len()),
	}
	for t := 0; t < p.M; t++ {
		s.step()
	}
	if p.M > 0 {
		s.result.AcceptanceRate = float64(s.accepted) / float64(p.M)
	}

	return s.result
}

// sweepState is the basic sampler's per-sweep mutable state (mirrors
// lvlath's walker-struct pattern: shared fields, small single-purpose
// methods instead of one long function body).
type sweepState struct {
	g      *graphstore.Graph
	reg    *effects.Registry
	theta  []float64
	rng    *rand.Rand
	params Params

	delta    []float64 // scratch, reused across proposals
	result   Result
	accepted int
}

// step runs one proposal end-to-end: select, evaluate, accept/reject.
func (s *sweepState) step() {
	i, j, isDelete := pickDyad(s.g, s.rng, s.params)

	if isDelete {
		_ = s.g.RemoveArc(i, j) // pre: IsArc(i,j) holds by construction of pickDyad
	}

	total := s.evaluate(i, j, isDelete)

	accept := accepts(total, s.rng)
	s.resolve(i, j, isDelete, accept)
}

// evaluate fills s.delta with each effect's Δ (computed with the arc
// already temporarily removed, for a deletion) and returns the
// acceptance-ratio exponent total = Σ θ[k]·sign·Δ[k] (spec §4.3 step 2).
func (s *sweepState) evaluate(i, j graphstore.Node, isDelete bool) float64 {
	sign := 1.0
	if isDelete {
		sign = -1.0
	}
	var total float64
	for k, e := range s.reg.InOrder() {
		d := e.Delta(s.g, i, j)
		s.delta[k] = d
		total += s.theta[k] * sign * d
	}

	return total
}

// resolve commits or restores the graph per spec §4.3 step 3 and
// accumulates the accepted move's Δ into the right output vector.
func (s *sweepState) resolve(i, j graphstore.Node, isDelete, accept bool) {
	if accept {
		s.accepted++
		target := s.result.AddDelta
		if isDelete {
			target = s.result.DelDelta
		}
		for k, d := range s.delta {
			target[k] += d
		}

		if isDelete && !s.params.PerformMove {
			_ = s.g.InsertArc(i, j) // restore: exploratory mode never leaves a trace
		} else if !isDelete && s.params.PerformMove {
			_ = s.g.InsertArc(i, j) // commit the add
		}

		return
	}

	if isDelete {
		_ = s.g.InsertArc(i, j) // reject: always restore a tentative delete
	}
	// add-reject: the graph was never mutated, nothing to restore.
}

// accepts implements spec §4.3's "non-finite exp(total) is a rejection."
func accepts(total float64, rng *rand.Rand) bool {
	ratio := math.Exp(total)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return false
	}

	return rng.Float64() < ratio
}
