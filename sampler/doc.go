// Package sampler implements the Metropolis-Hastings toggle samplers that
// drive both the seed and main estimators (spec §4.3/§4.4): Basic, which
// proposes a single dyad per iteration and evaluates it against a fixed
// parameter vector, and IFD, the fixed-density variant that pairs an add
// proposal with a del proposal and replaces the Arc effect with an
// auxiliary parameter.
//
// Adapted from lvlath's walker-struct traversal pattern
// (algorithms/bfs.go: mutable traversal state as a private struct with
// init/loop methods, rather than one long function body). Here a sweep's
// per-iteration state — the graph, the PRNG, the accumulators — lives in
// sweepState (step/evaluate/resolve) or, for IFD, ifdSweepState
// (stepPair/proposeAdd/proposeDel/evaluate/commit), with dyad selection in
// dyad.go's pick* helpers.
package sampler
