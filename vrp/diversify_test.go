package vrp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vrptabu/vrp"
	"github.com/stretchr/testify/require"
)

// TestTemperature_CoolsTowardsZero confirms temperature decreases as
// iteration approaches runs.
func TestTemperature_CoolsTowardsZero(t *testing.T) {
	early := vrp.Temperature(1000, 1, 1)
	late := vrp.Temperature(1000, 999, 1)
	require.Greater(t, early, late)
	require.InDelta(t, 0, vrp.Temperature(1000, 1000, 1), 1e-9)
}

// TestRollback_NotEnoughHistoryReturnsWorking confirms Rollback is a
// no-op without a long enough saved-solutions window.
func TestRollback_NotEnoughHistoryReturnsWorking(t *testing.T) {
	working := vrp.Solution{Fitness: 5}
	best := vrp.Solution{Fitness: 1}
	got := vrp.Rollback(nil, 5, working, best)
	require.Equal(t, working.Fitness, got.Fitness)
}

// TestRollback_ImprovingTrendJumpsToBest confirms a consistently
// improving window triggers a jump to best when working differs from
// best.
func TestRollback_ImprovingTrendJumpsToBest(t *testing.T) {
	tenure := 2
	needed := tenure * 4
	saved := make([]vrp.Solution, 0, needed+1)
	for i := 0; i < needed+1; i++ {
		// strictly decreasing fitness => improving trend (earlier costlier)
		saved = append(saved, vrp.Solution{Fitness: float64(needed + 1 - i)})
	}
	working := vrp.Solution{Route: []vrp.Node{{Index: 1}}, Fitness: 50}
	best := vrp.Solution{Route: []vrp.Node{{Index: 2}}, Fitness: 1}

	got := vrp.Rollback(saved, tenure, working, best)
	require.Equal(t, best.Route, got.Route)
}

// TestSegmentReverseTripleSwap_PreservesMultiset confirms the mutation
// never drops or duplicates a node, only reorders them.
func TestSegmentReverseTripleSwap_PreservesMultiset(t *testing.T) {
	route := []vrp.Node{{Index: 1}, {Index: 2}, {Index: 3}, {Index: 4}, {Index: 5}}
	sol := vrp.Solution{Route: append([]vrp.Node(nil), route...)}

	rng := rand.New(rand.NewSource(1))
	vrp.SegmentReverseTripleSwap(&sol, rng)

	before := make(map[int]int)
	after := make(map[int]int)
	for _, n := range route {
		before[n.Index]++
	}
	for _, n := range sol.Route {
		after[n.Index]++
	}
	require.Equal(t, before, after)
}

// TestSteerTowardsBest_PreservesMultiset confirms relocating nodes
// towards best's layout never drops or duplicates a node.
func TestSteerTowardsBest_PreservesMultiset(t *testing.T) {
	working := vrp.Solution{Route: []vrp.Node{{Index: 1}, {Index: 2}, {Index: 3}, {Index: 4}}}
	best := vrp.Solution{Route: []vrp.Node{{Index: 4}, {Index: 3}, {Index: 2}, {Index: 1}}}

	rng := rand.New(rand.NewSource(1))
	vrp.SteerTowardsBest(&working, best, 0.9, rng)

	before := map[int]bool{1: true, 2: true, 3: true, 4: true}
	after := make(map[int]bool)
	for _, n := range working.Route {
		after[n.Index] = true
	}
	require.Equal(t, before, after)
	require.Len(t, working.Route, 4)
}
