// Package sampler_test exercises the basic and IFD samplers against spec
// §8 properties 4 (detailed balance at θ=0) and 5 (IFD arc-count
// conservation).
package sampler_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/fixtures"
	"github.com/katalvlaran/ergmee/graphstore"
	"github.com/katalvlaran/ergmee/sampler"
	"github.com/stretchr/testify/require"
)

func newArcRegistry(t *testing.T) *effects.Registry {
	t.Helper()
	arc, ok := effects.StructuralByName("Arc", 2.0)
	require.True(t, ok)
	reg, err := effects.NewRegistry([]effects.Effect{arc}, nil, nil)
	require.NoError(t, err)

	return reg
}

// TestBasic_DetailedBalanceAtZero is spec §8 property 4: with θ=0 every
// proposal's acceptance ratio is exp(0)=1, so every proposal is accepted
// and the expected acceptance rate is exactly 1 (since total is always 0
// regardless of add/delete, there is nothing to ever reject at θ=0).
func TestBasic_DetailedBalanceAtZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := graphstore.New(6)
	require.NoError(t, err)
	reg := newArcRegistry(t)
	theta := []float64{0}

	var basic sampler.Basic
	result := basic.Step(g, reg, theta, rng, sampler.Params{M: 500, PerformMove: true})
	require.InDelta(t, 1.0, result.AcceptanceRate, 1e-9)
}

func TestBasic_NonPerformMoveLeavesGraphUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g, err := fixtures.RandomSparse(10, 0.2, rng)
	require.NoError(t, err)
	before := snapshotArcs(g)

	reg := newArcRegistry(t)
	var basic sampler.Basic
	basic.Step(g, reg, []float64{0.3}, rng, sampler.Params{M: 200, PerformMove: false})

	require.Equal(t, before, snapshotArcs(g))
}

func TestBasic_ForbidReciprocity_NeverCreatesMutualDyad(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := fixtures.RandomSparse(12, 0.1, rng)
	require.NoError(t, err)
	reg := newArcRegistry(t)

	var basic sampler.Basic
	basic.Step(g, reg, []float64{5.0}, rng, sampler.Params{
		M: 300, PerformMove: true, ForbidReciprocity: true,
	})

	for i := 0; i < g.N(); i++ {
		for _, j := range g.Out(graphstore.Node(i)) {
			require.Falsef(t, g.IsArc(j, graphstore.Node(i)), "mutual dyad (%d,%d)", i, j)
		}
	}
}

func snapshotArcs(g *graphstore.Graph) map[[2]graphstore.Node]bool {
	m := make(map[[2]graphstore.Node]bool)
	for i := 0; i < g.N(); i++ {
		for _, j := range g.Out(graphstore.Node(i)) {
			m[[2]graphstore.Node{graphstore.Node(i), j}] = true
		}
	}

	return m
}
