package vrp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vrptabu/vrp"
	"github.com/stretchr/testify/require"
)

// TestNeighbourhood_CoversAllPairsSortedAscending confirms every (i,j),
// i<j, pair is evaluated exactly once and the result is sorted ascending
// by fitness.
func TestNeighbourhood_CoversAllPairsSortedAscending(t *testing.T) {
	instance, err := vrp.NewProblemInstance(lineMatrix(5), []int{100}, []int{0, 1, 1, 1, 1}, 1, nil)
	require.NoError(t, err)

	current := vrp.Solution{Route: []vrp.Node{
		{Index: 1, Demand: 1},
		{Index: 2, Demand: 1},
		{Index: 3, Demand: 1},
		{Index: 4, Demand: 1},
	}}
	current.Fitness = vrp.Fitness(current.Route, instance)

	candidates, err := vrp.Neighbourhood(context.Background(), current, instance)
	require.NoError(t, err)

	n := len(current.Route)
	require.Len(t, candidates, n*(n-1)/2)

	for i := 1; i < len(candidates); i++ {
		require.LessOrEqual(t, candidates[i-1].Fitness, candidates[i].Fitness)
	}
}

// TestNeighbourhood_DoesNotMutateInput confirms current.Route is left
// untouched after evaluation.
func TestNeighbourhood_DoesNotMutateInput(t *testing.T) {
	instance, err := vrp.NewProblemInstance(lineMatrix(4), []int{100}, []int{0, 1, 1, 1}, 1, nil)
	require.NoError(t, err)

	original := []vrp.Node{{Index: 1}, {Index: 2}, {Index: 3}}
	current := vrp.Solution{Route: append([]vrp.Node(nil), original...)}

	_, err = vrp.Neighbourhood(context.Background(), current, instance)
	require.NoError(t, err)
	require.Equal(t, original, current.Route)
}

// TestNeighbourhood_ShortRouteReturnsEmpty confirms a route with fewer
// than two nodes has no pairwise swaps to offer.
func TestNeighbourhood_ShortRouteReturnsEmpty(t *testing.T) {
	instance, err := vrp.NewProblemInstance(lineMatrix(2), []int{10}, []int{0, 1}, 1, nil)
	require.NoError(t, err)

	candidates, err := vrp.Neighbourhood(context.Background(), vrp.Solution{Route: []vrp.Node{{Index: 1}}}, instance)
	require.NoError(t, err)
	require.Empty(t, candidates)
}
