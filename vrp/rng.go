package vrp

import (
	"math/rand"
	"time"
)

// NewDeterministicRand returns the seeded RNG stream the mutation
// operators (SteerTowardsBest, SegmentReverseTripleSwap) draw from.
// Same seed, same platform, same sequence of draws.
//
// Complexity: O(1).
func NewDeterministicRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewNonDeterministicRand returns the RNG stream the probabilistic
// acceptance gates (rollback, final mutation) and the tenure jitter draw
// from, seeded from wall-clock time.
//
// Complexity: O(1).
func NewNonDeterministicRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffledPermutation returns a deterministic Fisher-Yates shuffle of
// 0..n-1 using rng.
//
// Complexity: O(n).
func shuffledPermutation(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// NewInitialSolution builds the starting route for a search: a random
// permutation of all N indices, each node taking its demand from
// instance.Demands. Indices 0..NumTrucks-2 are flagged IsDepot (the
// NumTrucks-1 depot markers PartitionByLoad/PartitionByExcess split on)
// wherever the shuffle places them.
//
// Complexity: O(n).
func NewInitialSolution(instance *ProblemInstance, rng *rand.Rand) Solution {
	n := len(instance.Demands)
	perm := shuffledPermutation(n, rng)

	route := make([]Node, 0, n)
	for _, loc := range perm {
		route = append(route, Node{
			Index:   loc,
			Demand:  instance.Demands[loc],
			IsDepot: loc < instance.NumTrucks-1,
		})
	}

	sol := Solution{Route: route}
	sol.Fitness = Fitness(sol.Route, instance)

	return sol
}
