// Package fixtures generates synthetic directed graphstore.Graph instances
// for tests, property-based checks, and the end-to-end scenarios in spec
// §8 (S2's Erdős–Rényi network, S5's snowball sample).
//
// Adapted from lvlath's builder package: the same closure-returning
// "Constructor" shape (builder/impl_random_sparse.go, impl_complete.go)
// and sentinel-error/option-resolution style (builder/errors.go,
// builder/config.go), narrowed to the three generators this estimator's
// tests actually need and retargeted at graphstore.Graph's dense-integer
// node model instead of core.Graph's string-keyed one.
package fixtures
