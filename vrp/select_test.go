package vrp_test

import (
	"testing"

	"github.com/katalvlaran/vrptabu/vrp"
	"github.com/stretchr/testify/require"
)

// TestChooseCandidate_PrefersNonTabuBest confirms the best candidate is
// taken outright when it is not tabu.
func TestChooseCandidate_PrefersNonTabuBest(t *testing.T) {
	candidates := []vrp.Candidate{
		{Fitness: 1, Pair: vrp.Pair{I: 0, J: 1}},
		{Fitness: 2, Pair: vrp.Pair{I: 1, J: 2}},
	}
	tabu := vrp.NewTabuList(5)
	best := vrp.Solution{Fitness: 1}

	chosen := vrp.ChooseCandidate(candidates, tabu, best, 0, vrp.Pair{I: -1, J: -1})
	require.Equal(t, vrp.Pair{I: 0, J: 1}, chosen.Pair)
}

// TestChooseCandidate_AspirationOverridesTabu confirms a tabu move is
// still accepted when within the aspiration window and not overlapping
// the previous iteration's swap.
func TestChooseCandidate_AspirationOverridesTabu(t *testing.T) {
	candidates := []vrp.Candidate{
		{Fitness: 10, Pair: vrp.Pair{I: 0, J: 1}},
	}
	tabu := vrp.NewTabuList(5)
	tabu.Insert(vrp.Pair{I: 0, J: 1})
	best := vrp.Solution{Fitness: 10}

	chosen := vrp.ChooseCandidate(candidates, tabu, best, 5, vrp.Pair{I: 8, J: 9})
	require.Equal(t, vrp.Pair{I: 0, J: 1}, chosen.Pair)
}

// TestChooseCandidate_SkipsTabuOutsideAspiration confirms a tabu top
// candidate outside the aspiration window is passed over in favour of
// the first acceptable candidate.
func TestChooseCandidate_SkipsTabuOutsideAspiration(t *testing.T) {
	candidates := []vrp.Candidate{
		{Fitness: 100, Pair: vrp.Pair{I: 0, J: 1}},
		{Fitness: 110, Pair: vrp.Pair{I: 2, J: 3}},
	}
	tabu := vrp.NewTabuList(5)
	tabu.Insert(vrp.Pair{I: 0, J: 1})
	best := vrp.Solution{Fitness: 0}

	chosen := vrp.ChooseCandidate(candidates, tabu, best, 1, vrp.Pair{I: -1, J: -1})
	require.Equal(t, vrp.Pair{I: 2, J: 3}, chosen.Pair)
}
