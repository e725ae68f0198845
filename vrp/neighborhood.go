package vrp

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Candidate is one pairwise-swap move and the fitness it produces.
type Candidate struct {
	Fitness float64
	Pair    Pair
}

// Neighbourhood evaluates every pairwise swap (i, j), i < j, of current's
// route against instance, in parallel, and returns the candidates sorted
// ascending by fitness with ties broken by Pair order. It never mutates
// current.
//
// Complexity: O(n³) swap-and-evaluate work (n·(n-1)/2 swaps, each
// re-evaluated in O(n)), fanned out across min(runtime.NumCPU(),
// n·(n-1)/2) workers; O(n² log n) for the final sort.
func Neighbourhood(ctx context.Context, current Solution, instance *ProblemInstance) ([]Candidate, error) {
	n := len(current.Route)
	if n < 2 {
		return nil, nil
	}

	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}

	candidates := make([]Candidate, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for idx, p := range pairs {
		idx, p := idx, p

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			swapped := swappedRoute(current.Route, p.I, p.J)
			candidates[idx] = Candidate{Fitness: Fitness(swapped, instance), Pair: p}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Fitness != candidates[b].Fitness {
			return candidates[a].Fitness < candidates[b].Fitness
		}
		if candidates[a].Pair.I != candidates[b].Pair.I {
			return candidates[a].Pair.I < candidates[b].Pair.I
		}

		return candidates[a].Pair.J < candidates[b].Pair.J
	})

	return candidates, nil
}

// swappedRoute returns a copy of route with positions i and j exchanged.
func swappedRoute(route []Node, i, j int) []Node {
	out := make([]Node, len(route))
	copy(out, route)
	out[i], out[j] = out[j], out[i]

	return out
}
