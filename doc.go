// Package ergmee estimates Exponential Random Graph Model parameters for a
// directed network by the Equilibrium Expectation (EE) method.
//
// Given an observed directed graph and a chosen set of effects —
// structural, nodal-attribute, and dyadic-covariate statistics — a short
// Metropolis sampler is run at the current parameter vector θ, and θ is
// updated so that at equilibrium the expected change in the sufficient
// statistics matches what was observed. No likelihood is ever evaluated.
//
// The module is organized under one package per concern:
//
//	graphstore/ — the directed graph the sampler toggles: adjacency,
//	              two-path counts, node attributes, snowball zones
//	effects/    — the change-statistic registry (structural/attr/dyadic)
//	sampler/    — the basic and IFD Metropolis toggle samplers
//	estimate/   — Algorithm S (seed) and Algorithm EE (main estimator)
//	estconfig/  — the key=value configuration format and effect resolution
//	ioformat/   — Pajek arc-list and attribute-file I/O
//	driver/     — one estimation task: open streams, run S then EE
//	registry/   — sqlite-backed bookkeeping for multi-task batches
//	tui/        — a live convergence monitor
//	plot/       — SVG theta-trace rendering
//	cmd/ergmee/ — the command-line entry point
//
// See SPEC_FULL.md for the full requirements this module implements and
// DESIGN.md for how each package is grounded.
package ergmee
