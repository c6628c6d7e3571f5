// Package driver orchestrates one estimation task end to end (spec
// §4.7, C7): parse config, load the graph and its attributes, resolve
// the effect registry, run Algorithm S then Algorithm EE against the
// chosen sampler, and write the theta/dzA streams and, optionally, the
// final simulated graph.
//
// driver is the only package that imports both sampler and estimate —
// estimate stays sampler-agnostic (see estimate's doc comment) and
// driver is where the two are wired together via a Stepper closure.
package driver
