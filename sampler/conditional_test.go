// TestConditional_PreservesOutermostWave is spec §8 property 6: under
// UseConditional, no accepted toggle may ever change an arc within the
// outermost wave or between the outermost and second-outermost waves.
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

// outermostPairs returns every ignore-direction pair (u,v) with u<v where
// at least one endpoint sits in the outermost wave (zone == zMax).
func outermostPairs(g *graphstore.Graph, zMax int32) map[[2]graphstore.Node]bool {
	snow := g.Snowball()
	pairs := make(map[[2]graphstore.Node]bool)
	for i := 0; i < g.N(); i++ {
		u := graphstore.Node(i)
		if snow.Zone(u) != zMax {
			continue
		}
		for _, v := range g.Out(u) {
			pairs[orderedPair(u, v)] = true
		}
		for _, v := range g.In(u) {
			pairs[orderedPair(u, v)] = true
		}
	}

	return pairs
}

func orderedPair(a, b graphstore.Node) [2]graphstore.Node {
	if a < b {
		return [2]graphstore.Node{a, b}
	}

	return [2]graphstore.Node{b, a}
}

func TestConditional_PreservesOutermostWave(t *testing.T) {
	rng := rand.New(rand.NewSource(71))
	g, err := fixtures.RandomSparse(24, 0.12, rng)
	require.NoError(t, err)

	zMax := 2
	zones := fixtures.DeriveZones(g, []graphstore.Node{0, 1}, zMax)
	require.NoError(t, g.AttachSnowball(zones, zMax))

	before := outermostPairs(g, int32(zMax))

	arc, ok := effects.StructuralByName("Arc", 2.0)
	require.True(t, ok)
	reg, err := effects.NewRegistry([]effects.Effect{arc}, nil, nil)
	require.NoError(t, err)

	var basic sampler.Basic
	for sweep := 0; sweep < 20; sweep++ {
		basic.Step(g, reg, []float64{1.5}, rng, sampler.Params{
			M: 50, PerformMove: true, UseConditional: true,
		})
	}

	after := outermostPairs(g, int32(zMax))
	require.Equal(t, before, after)
}
