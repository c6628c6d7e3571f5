// Package estimate implements the seed and main estimators (spec
// §4.5/§4.6, C5/C6): Algorithm S explores the θ=0 model to derive a seed
// parameter vector and step-scale estimate, and Algorithm EE adaptively
// pushes θ so the sampled sufficient statistics track the observed ones.
//
// Both algorithms are sampler-agnostic: they drive a Stepper closure
// rather than calling sampler.Basic/sampler.IFD directly, so the same
// pseudocode (spec §4.5/§4.6) serves either sampler. The driver package
// adapts sampler.Basic.Step directly, and sampler.IFD.Step by appending
// the auxiliary parameter as one more θ slot — estimate never special-
// cases IFD.
//
// Grounded on spec.md §4.5/§4.6's pseudocode directly, with the
// walker-struct shape borrowed from lvlath's algorithms/bfs.go for
// EE's per-outer-iteration accumulator state.
package estimate
