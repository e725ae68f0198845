package vrp

import (
	"math"
	"math/rand"
)

// Temperature returns the search driver's cooling factor at iteration,
// given the total run budget and the current temperature multiplier
// (normally 1, bumped to 2 once stagnation passes half the
// no-improvement threshold).
//
// Complexity: O(1).
func Temperature(runs, iteration, temperatureFactor int) float64 {
	return (float64(runs-iteration) / float64(runs)) * float64(temperatureFactor)
}

// Rollback compares the fitness trend over the most recent
// 4*tabuTenure saved solutions; if that trend is improving (earlier
// entries costlier than later ones, net positive) and working does not
// already equal best, it returns best in place of working. Otherwise it
// returns working unchanged. Requires more than 4*tabuTenure saved
// solutions to have a long enough window; returns working unchanged
// below that.
//
// Complexity: O(tabuTenure).
func Rollback(saved []Solution, tabuTenure int, working, best Solution) Solution {
	needed := tabuTenure * 4
	if len(saved) <= needed {
		return working
	}

	window := saved[len(saved)-needed:]
	var trend float64
	for i := 1; i < len(window); i++ {
		trend += window[i-1].Fitness - window[i].Fitness
	}

	if trend > 0 && !routesEqual(working.Route, best.Route) {
		return best
	}

	return working
}

// SteerTowardsBest picks ceil(len(working.Route) * temperature *
// U(0,1)) unique positions from the deterministic RNG, and for each
// picked position p, relocates the node that best.Route[p] identifies
// (matched by Index, since positions differ between the two routes)
// back to position p in working, swapping it into place.
//
// Complexity: O(n²) worst case (a linear scan per relocated position).
func SteerTowardsBest(working *Solution, best Solution, temperature float64, rng *rand.Rand) {
	n := len(working.Route)
	if n == 0 {
		return
	}

	count := int(math.Ceil(float64(n) * temperature * rng.Float64()))
	if count <= 0 {
		return
	}
	if count > n {
		count = n
	}

	positions := shuffledPermutation(n, rng)[:count]
	for _, p := range positions {
		target := best.Route[p].Index
		from := indexOfNode(working.Route, target)
		if from < 0 {
			continue
		}
		working.Route[p], working.Route[from] = working.Route[from], working.Route[p]
	}
}

// SegmentReverseTripleSwap reverses a random inclusive slice of
// working.Route between two distinct positions drawn from the
// deterministic RNG, then — if the route has at least 3 nodes — picks
// three distinct, ascending positions x<y<z and performs swap(x,y)
// followed by swap(y,z).
//
// Complexity: O(n).
func SegmentReverseTripleSwap(working *Solution, rng *rand.Rand) {
	n := len(working.Route)
	if n < 2 {
		return
	}

	pair := choosePositions(n, 2, rng)
	reverseSlice(working.Route, pair[0], pair[1])

	if n < 3 {
		return
	}

	triple := choosePositions(n, 3, rng)
	x, y, z := triple[0], triple[1], triple[2]
	working.Route[x], working.Route[y] = working.Route[y], working.Route[x]
	working.Route[y], working.Route[z] = working.Route[z], working.Route[y]
}

// choosePositions draws k distinct positions in [0, n) from rng and
// returns them sorted ascending.
func choosePositions(n, k int, rng *rand.Rand) []int {
	picked := shuffledPermutation(n, rng)[:k]
	for i := 1; i < len(picked); i++ {
		v := picked[i]
		j := i - 1
		for j >= 0 && picked[j] > v {
			picked[j+1] = picked[j]
			j--
		}
		picked[j+1] = v
	}

	return picked
}

func reverseSlice(route []Node, i, j int) {
	for i < j {
		route[i], route[j] = route[j], route[i]
		i++
		j--
	}
}

func indexOfNode(route []Node, index int) int {
	for i, node := range route {
		if node.Index == index {
			return i
		}
	}

	return -1
}

func routesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
