// Package effects is the change-statistic registry (spec §4.2): a flat,
// indexed catalog of pure Δ(g,i,j) functions, one per sufficient statistic,
// tagged with the kind of input they need (none, an attribute index, or a
// dyadic-covariate table bound when the effect is built).
//
// Every function answers "the change in this statistic if arc i->j were
// added to g's current state" (spec §4.2); callers that need a deletion's
// Δ temporarily remove the arc and call the same function. The sampler
// keeps that value unnegated and applies the sign flip only in the
// acceptance-ratio exponent — effects never special-cases direction itself.
//
// Adapted from lvlath's named function-catalog pattern
// (builder/weight_fn.go, builder/id_fn.go: a function type plus a
// resolved-by-name registry), generalized from "one function slot" to a
// three-kind tagged union and pointed at graphstore.Graph's two-path
// counts and attribute tables instead of builder's vertex/weight
// generators.
package effects
