package fixtures

import "errors"

// ErrTooFewNodes indicates a requested node count below the generator's
// minimum (mirrors builder.ErrTooFewVertices).
var ErrTooFewNodes = errors.New("fixtures: too few nodes")

// ErrInvalidProbability indicates a probability outside [0,1] (mirrors
// builder.ErrInvalidProbability).
var ErrInvalidProbability = errors.New("fixtures: probability out of range")

// ErrNeedRandSource indicates a stochastic generator was invoked with a nil
// *rand.Rand (mirrors builder.ErrNeedRandSource).
var ErrNeedRandSource = errors.New("fixtures: rng is required")
