// File: seed.go
// Role: Algorithm S, the seed estimator (spec §4.5, C5).
package estimate

import "math/rand"

// SeedResult is Algorithm S's output: the seed parameter vector and the
// per-effect step-scale estimate EE starts from (spec §4.5's "θ, Dmean").
type SeedResult struct {
	Theta []float64
	Dmean []float64
}

// AlgorithmS runs spec §4.5's pseudocode exactly: p is the parameter
// count, m1 is M₁ (already computed by the driver as
// floor(M1_steps*n/m)), m is the per-sweep sampler length. acaS holds
// ACA_S per effect slot; every slot ordinarily shares the same ACA_S
// value, except the driver gives the appended ifd_aux slot its own
// `ifd_K` constant instead (spec §6's "IFD auxiliary step scale"). A
// single-element acaS is broadcast to all p slots. emit is called once
// per iteration with t running -m1..-1, matching the θ stream's
// documented numbering (spec §4.7/§6).
func AlgorithmS(p, m1, m int, acaS []float64, stepper Stepper, rng *rand.Rand, emit EmitFunc) (SeedResult, error) {
	theta := make([]float64, p)
	d0 := make([]float64, p)

	for t := 0; t < m1; t++ {
		res := stepper(theta, rng, m, false)

		for k := 0; k < p; k++ {
			dzA := res.DelDelta[k] - res.AddDelta[k]
			sumDelta := res.DelDelta[k] + res.AddDelta[k]

			d0[k] += dzA * dzA

			var aca float64
			if sumDelta != 0 {
				aca = acaAt(acaS, k) / (sumDelta * sumDelta)
			}
			theta[k] += sign(dzA) * aca * dzA * dzA
		}

		if emit != nil {
			if err := emit(t-m1, theta, nil, res.AcceptanceRate); err != nil {
				return SeedResult{}, err
			}
		}
	}

	dmean := make([]float64, p)
	for k := 0; k < p; k++ {
		dmean[k] = float64(m) / d0[k]
	}

	return SeedResult{Theta: theta, Dmean: dmean}, nil
}
