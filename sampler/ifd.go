// File: ifd.go
// Role: the improved-fixed-density sampler (spec §4.4, C4): every
// proposal pairs one add attempt at a random non-arc dyad with one del
// attempt at a random existing arc, using an auxiliary parameter in place
// of the excluded Arc effect.
package sampler

import (
	"math/rand"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/graphstore"
)

// IFD runs the fixed-density sampler. The zero value is ready to use.
type IFD struct{}

// IFDResult extends Result with the IFD-specific outputs (spec §4.4):
// ArcAdd/ArcDel are the accumulated Arc-equivalent Δ (always 1 per
// accepted move, so these equal accepted counts) for the add and del
// halves respectively; DzArc is their signed difference. estimate treats
// (ArcAdd, ArcDel) as one more effect slot — "ifd_aux" — driven by the
// exact same step formula as every registered effect (spec §4.5/§4.6),
// since the pseudocode there is already generic over "each effect k".
type IFDResult struct {
	Result
	ArcAdd float64
	ArcDel float64
}

// DzArc returns N_del - N_add for the sweep (spec §4.4).
func (r IFDResult) DzArc() float64 { return r.ArcDel - r.ArcAdd }

// Step runs one sweep of p.M add/del proposal pairs. theta has length
// reg.Len() and must not include an Arc effect — the driver validates
// that exclusion before ever constructing a registry for IFD use (spec
// §4.4: "a configuration error to list Arc ... when IFD is enabled").
// ifdAux is the current auxiliary parameter value, read but not mutated
// here: estimate.AlgorithmEE/AlgorithmS own updating it, the same way
// they own updating theta.
func (IFD) Step(g *graphstore.Graph, reg *effects.Registry, theta []float64, ifdAux float64, rng *rand.Rand, p Params) IFDResult {
	s := &ifdSweepState{
		g:      g,
		reg:    reg,
		theta:  theta,
		ifdAux: ifdAux,
		rng:    rng,
		params: p,
		delta:  make([]float64, reg.Len()),
		nodes:  allNodesOrInner(g, p.UseConditional),
		result: IFDResult{Result: newResult(reg.Len())},
	}
	for t := 0; t < p.M; t++ {
		s.stepPair()
	}
	if p.M > 0 {
		s.result.AcceptanceRate = float64(s.accepted) / float64(2*p.M)
	}

	return s.result
}

type ifdSweepState struct {
	g      *graphstore.Graph
	reg    *effects.Registry
	theta  []float64
	ifdAux float64
	rng    *rand.Rand
	params Params
	nodes  []graphstore.Node

	delta    []float64
	result   IFDResult
	accepted int
}

// stepPair runs one add attempt and one del attempt (spec §4.4: "each
// proposal attempts one add ... and one del").
func (s *ifdSweepState) stepPair() {
	s.proposeAdd()
	s.proposeDel()
}

func (s *ifdSweepState) proposeAdd() {
	var i, j graphstore.Node
	for {
		i, j = pickNonArcDyad(s.g, s.rng, s.params.UseConditional)
		if !s.params.ForbidReciprocity || !s.g.IsArc(j, i) {
			break
		}
	}

	total := s.evaluate(i, j, false)
	if !accepts(total, s.rng) {
		return
	}

	s.accepted++
	s.commit(s.delta, false)
	s.result.ArcAdd++
	if s.params.PerformMove {
		_ = s.g.InsertArc(i, j)
	}
}

func (s *ifdSweepState) proposeDel() {
	i, j := pickExistingArc(s.g, s.rng, s.params.UseConditional, s.nodes)

	_ = s.g.RemoveArc(i, j)
	total := s.evaluate(i, j, true)

	if !accepts(total, s.rng) {
		_ = s.g.InsertArc(i, j) // restore: rejected deletion
		return
	}

	s.accepted++
	s.commit(s.delta, true)
	s.result.ArcDel++
	if !s.params.PerformMove {
		_ = s.g.InsertArc(i, j) // exploratory mode: leave no trace
	}
}

// evaluate is the IFD analogue of sweepState.evaluate: the auxiliary
// parameter contributes sign*ifdAux (the Arc effect's Δ is always 1) on
// top of the registered effects' contribution.
func (s *ifdSweepState) evaluate(i, j graphstore.Node, isDelete bool) float64 {
	sign := 1.0
	if isDelete {
		sign = -1.0
	}
	total := sign * s.ifdAux
	for k, e := range s.reg.InOrder() {
		d := e.Delta(s.g, i, j)
		s.delta[k] = d
		total += s.theta[k] * sign * d
	}

	return total
}

func (s *ifdSweepState) commit(delta []float64, isDelete bool) {
	target := s.result.AddDelta
	if isDelete {
		target = s.result.DelDelta
	}
	for k, d := range delta {
		target[k] += d
	}
}
