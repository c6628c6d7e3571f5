package estimate

import "math/rand"

// StepResult is one sweep's output, independent of which sampler produced
// it (spec §4.3's Basic output shape; the driver folds sampler.IFDResult
// into this same shape by appending the auxiliary parameter's Δ as one
// more slot).
type StepResult struct {
	AddDelta       []float64
	DelDelta       []float64
	AcceptanceRate float64
}

// Stepper runs one sampler sweep at the given θ and returns its
// accumulated statistics. m is the sweep length; performMove selects
// Algorithm S's exploratory mode (false) or EE's mutating mode (true).
type Stepper func(theta []float64, rng *rand.Rand, m int, performMove bool) StepResult

// EmitFunc is called once per emitted iteration and carries both the θ
// stream's and the dzA stream's row (spec §4.6's "emit (t, θ, dzA,
// acceptance_rate)"). Algorithm S has no dzA stream and passes dzA as
// nil; the driver's emit closure must treat a nil dzA as "theta stream
// only". A nil EmitFunc disables output entirely (useful for tests that
// only care about the final θ).
type EmitFunc func(t int, theta, dzA []float64, acceptanceRate float64) error

// acaAt broadcasts a single-element per-effect constant slice to every
// slot; a longer slice is indexed directly.
func acaAt(aca []float64, k int) float64 {
	if len(aca) == 1 {
		return aca[0]
	}

	return aca[k]
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
