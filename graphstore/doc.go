// Package graphstore is the mutable directed graph that the sampler
// toggles and the change-statistic registry reads from.
//
// Nodes are dense integers 0..N-1 — an estimation task always starts from a
// fixed-order observed network, so there is no need for the string vertex
// IDs a general-purpose graph library offers. Arcs are kept in two
// directions (Out/In) as sorted slices for O(degree) neighbor enumeration,
// plus a flat set for O(1) membership.
//
// Graph also owns two dense "two-path" matrices (TwoPath, Mixed) that the
// effects package reads to evaluate higher-order structural statistics in
// near-constant time, node Attributes (binary/categorical/continuous/set,
// immutable after Load), and an optional Snowball state for
// conditional-estimation mode. InsertArc/RemoveArc update the two matrices
// and the Snowball state together with the arc set, so a caller never has
// to remember to keep them in sync; Attributes never change.
//
// Graph is not safe for concurrent use from multiple goroutines: spec §5
// is single-threaded per estimation task, so graphstore trades lvlath's
// per-map mutexes for a single-owner, lock-free structure.
package graphstore
