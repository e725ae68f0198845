package vrp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vrptabu/vrp"
	"github.com/stretchr/testify/require"
)

// TestLaw_SwapInvolution confirms applying the same swap twice restores
// the original route, distance, and fitness.
func TestLaw_SwapInvolution(t *testing.T) {
	instance, err := vrp.NewProblemInstance(lineMatrix(5), []int{100}, []int{0, 3, 3, 3, 3}, 1, nil)
	require.NoError(t, err)

	route := []vrp.Node{
		{Index: 1, Demand: 3},
		{Index: 2, Demand: 3},
		{Index: 3, Demand: 3},
		{Index: 4, Demand: 3},
	}
	originalFitness := vrp.Fitness(route, instance)

	swapOnce := append([]vrp.Node(nil), route...)
	swapOnce[1], swapOnce[2] = swapOnce[2], swapOnce[1]

	swapTwice := append([]vrp.Node(nil), swapOnce...)
	swapTwice[1], swapTwice[2] = swapTwice[2], swapTwice[1]

	require.Equal(t, route, swapTwice)
	require.Equal(t, originalFitness, vrp.Fitness(swapTwice, instance))
}

// TestInvariant_RepairPreservesPermutationAndMarkerCount covers scenario
// S3: an overloaded truck A and an under-loaded truck B converge to a
// feasible split after repair, and the result still carries exactly K-1
// depot markers over the same customer set.
func TestInvariant_RepairPreservesPermutationAndMarkerCount(t *testing.T) {
	instance, err := vrp.NewProblemInstance(lineMatrix(8), []int{100, 100}, []int{0, 60, 40, 20, 10, 10, 10, 20}, 1, nil)
	require.NoError(t, err)

	route := []vrp.Node{
		{Index: 1, Demand: 60},
		{Index: 2, Demand: 40},
		{Index: 3, Demand: 20},
		{Index: 0, Demand: 0, IsDepot: true},
		{Index: 4, Demand: 10},
		{Index: 5, Demand: 10},
		{Index: 6, Demand: 10},
		{Index: 7, Demand: 20},
	}
	sol := vrp.Solution{Route: route, Fitness: vrp.Fitness(route, instance)}

	repaired := vrp.Repair(sol, instance)
	require.NoError(t, vrp.ValidateSolution(repaired, instance))

	penaltyAfter := vrp.Fitness(repaired.Route, instance) - vrp.Distance(repaired.Route, instance.DistanceMatrix)
	require.Equal(t, 0.0, penaltyAfter)
}

// TestScenario_S1_TrivialSingleTruck covers the end-to-end scenario: a
// single truck with ample capacity should converge to the zero-penalty,
// minimum-distance visiting order.
func TestScenario_S1_TrivialSingleTruck(t *testing.T) {
	instance, err := vrp.NewProblemInstance(lineMatrix(4), []int{100}, []int{0, 10, 10, 10}, 1, nil)
	require.NoError(t, err)

	options := vrp.DefaultOptions()
	options.Runs = 300
	options.SingleStreamRNG = true

	rng := vrp.NewDeterministicRand(options.Seed)
	initial := vrp.NewInitialSolution(instance, rng)

	search, err := vrp.NewSearch(instance, initial, options)
	require.NoError(t, err)

	result, err := search.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 6.0, result.Best.Fitness)
}
