// Package tui implements the `ergmee watch` live convergence monitor and
// the `ergmee init` config-building wizard. Both are purely observational
// or generative — neither mutates estimator state, and init only writes
// the same key = value config file a human could hand-write (SPEC_FULL.md
// §9).
package tui
