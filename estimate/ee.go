// File: ee.go
// Role: Algorithm EE, the main Equilibrium Expectation estimator (spec
// §4.6, C6).
package estimate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// EEParams bundles Algorithm EE's constants (spec §4.6/§9). MuFloor and
// SigmaFloor default to 0.1 and 1e-10 respectively — spec §9 flags
// both as undocumented magic constants in the source and asks for them
// to be exposed rather than hardcoded, so estconfig owns their defaults
// and this package only consumes whatever it resolves.
// ACAEE holds ACA_EE per effect slot, broadcasting a single-element
// slice the same way AlgorithmS's acaS does (see its doc comment for
// why the appended ifd_aux slot may carry a distinct constant).
type EEParams struct {
	MOut, MIn, M   int
	ACAEE          []float64
	CompC          float64
	MuFloor        float64
	SigmaFloor     float64
	OutputAllSteps bool
}

// AlgorithmEE runs spec §4.6's pseudocode exactly. theta and d0 are
// mutated in place (theta starts as Algorithm S's seed, d0 as its
// Dmean) and the final theta is also returned for convenience. onOuterFlush,
// if non-nil, is called once after each outer iteration's D₀ rescale
// (spec §4.6's "flush output streams" step) — the driver binds it to the
// underlying writer's Flush.
func AlgorithmEE(theta, d0 []float64, stepper Stepper, rng *rand.Rand, params EEParams, emit EmitFunc, onOuterFlush func() error) ([]float64, error) {
	p := len(theta)
	dzA := make([]float64, p)
	thetaMatrix := make([][]float64, p)
	for k := range thetaMatrix {
		thetaMatrix[k] = make([]float64, params.MIn)
	}

	t := 0
	for outer := 0; outer < params.MOut; outer++ {
		for inner := 0; inner < params.MIn; inner++ {
			res := stepper(theta, rng, params.M, true)

			for k := 0; k < p; k++ {
				dzA[k] += res.AddDelta[k] - res.DelDelta[k]
			}
			for k := 0; k < p; k++ {
				step := d0[k] * acaAt(params.ACAEE, k)
				theta[k] += -sign(dzA[k]) * step * dzA[k] * dzA[k]
				thetaMatrix[k][inner] = theta[k]
			}

			if emit != nil && (params.OutputAllSteps || inner == 0) {
				if err := emit(t, theta, dzA, res.AcceptanceRate); err != nil {
					return nil, err
				}
			}
			t++
		}

		for k := 0; k < p; k++ {
			mean, sd := stat.MeanStdDev(thetaMatrix[k], nil)
			mu := math.Abs(mean)
			if mu < params.MuFloor {
				mu = params.MuFloor
			}
			if sd > params.SigmaFloor {
				d0[k] *= math.Sqrt(params.CompC / (sd / mu))
			}
		}

		if onOuterFlush != nil {
			if err := onOuterFlush(); err != nil {
				return nil, err
			}
		}
	}

	return theta, nil
}
