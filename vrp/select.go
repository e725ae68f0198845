package vrp

// ChooseCandidate picks the move to apply this iteration out of
// candidates (already sorted ascending by fitness). The best candidate
// is taken outright unless it is tabu; a tabu move is still accepted if
// its fitness falls within best.Fitness±aspiration and it does not touch
// a position parentSwap touched last iteration (the aspiration
// criterion). Otherwise the candidate list is scanned in order for the
// first non-tabu, non-overlapping move; if none exists, the original
// best candidate is used anyway.
//
// Complexity: O(n) worst case.
func ChooseCandidate(candidates []Candidate, tabu *TabuList, best Solution, aspiration float64, parentSwap Pair) Candidate {
	if len(candidates) == 0 {
		return Candidate{}
	}

	top := candidates[0]
	if !tabu.Contains(top.Pair) {
		return top
	}

	withinWindow := top.Fitness >= best.Fitness-aspiration && top.Fitness <= best.Fitness+aspiration
	if withinWindow && !top.Pair.Overlaps(parentSwap) {
		return top
	}

	for _, c := range candidates {
		if !tabu.Contains(c.Pair) && !c.Pair.Overlaps(parentSwap) {
			return c
		}
	}

	return top
}
