package vrp

import (
	"context"
	"math"
	"math/rand"
)

// Update records a fitness improvement against the best-so-far solution.
type Update struct {
	Iteration int
	Fitness   float64
}

// Diagnostics carries the diversification fire counts and
// early-termination bookkeeping a caller can report to an operator.
type Diagnostics struct {
	RollbackFired      int
	SteerFired         int
	TenureJitterFired  int
	MutationFired      int
	MaxStagnationSeen  int
	HasEnded           bool
	EndedEarlyValue    float64
	EndedEarlyIteration int
}

// Result is what Search.Run returns: the best solution found, the
// iteration it was found at, its improvement history, and diagnostics.
type Result struct {
	Best          Solution
	BestIteration int
	UpdateTrace   []Update
	Diagnostics   Diagnostics
}

// Search drives the tabu-search loop described by the per-iteration
// pipeline: neighbourhood generation, tabu-aware candidate selection,
// diversification, conditional repair, and stagnation/temperature
// bookkeeping.
type Search struct {
	instance *ProblemInstance
	options  Options

	current  Solution
	best     Solution
	bestIter int

	saved []Solution
	tabu  *TabuList

	parentSwap Pair
	stagnation int
	maxStag    int
	tempFactor int

	maxNoImprovement int

	hasEnded            bool
	endedEarlyValue      float64
	endedEarlyIteration int

	detRand    *rand.Rand
	nonDetRand *rand.Rand

	trace []Update
	diag  Diagnostics
}

// NewSearch constructs a Search over instance, starting from initial.
//
// Errors: whatever Options.Validate returns.
func NewSearch(instance *ProblemInstance, initial Solution, options Options) (*Search, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	detRand := NewDeterministicRand(options.Seed)
	nonDetRand := NewNonDeterministicRand()
	if options.SingleStreamRNG {
		nonDetRand = detRand
	}

	return &Search{
		instance:         instance,
		options:          options,
		current:          initial,
		best:             initial.Clone(),
		tabu:             NewTabuList(options.InitialTabuTenure),
		tempFactor:       1,
		maxNoImprovement: calculateMaxNoImprovement(len(instance.Demands)),
		detRand:          detRand,
		nonDetRand:       nonDetRand,
	}, nil
}

// calculateMaxNoImprovement scales the stagnation threshold with problem
// size: smaller instances get a steeper scale factor since their
// neighbourhood is cheap to re-explore.
func calculateMaxNoImprovement(n int) int {
	scale := 9.0
	if n < 50 {
		scale = 15.0
	}
	computed := int(math.Round(scale * math.Pow(float64(n), 1.33)))
	if computed < 300 {
		return 300
	}

	return computed
}

// Run executes up to Options.Runs iterations, returning the best
// solution found and its improvement trace. Run can be cancelled through
// ctx; a cancelled context propagates from the neighbourhood fan-out.
func (s *Search) Run(ctx context.Context) (Result, error) {
	for iteration := 1; iteration <= s.options.Runs; iteration++ {
		if err := s.performIteration(ctx, iteration); err != nil {
			return s.result(), err
		}
		if s.hasEnded && s.options.StopOnEarlyTermination {
			break
		}
	}

	return s.result(), nil
}

func (s *Search) result() Result {
	s.diag.HasEnded = s.hasEnded
	s.diag.EndedEarlyValue = s.endedEarlyValue
	s.diag.EndedEarlyIteration = s.endedEarlyIteration
	s.diag.MaxStagnationSeen = s.maxStag

	return Result{
		Best:          s.best,
		BestIteration: s.bestIter,
		UpdateTrace:   s.trace,
		Diagnostics:   s.diag,
	}
}

func (s *Search) performIteration(ctx context.Context, iteration int) error {
	s.saved = append(s.saved, s.current)

	candidates, err := Neighbourhood(ctx, s.current, s.instance)
	if err != nil {
		return err
	}

	chosen := ChooseCandidate(candidates, s.tabu, s.best, s.options.AspirationThreshold, s.parentSwap)
	s.tabu.Insert(chosen.Pair)

	finalNeighbour := Solution{
		Route:   swappedRoute(s.current.Route, chosen.Pair.I, chosen.Pair.J),
		Fitness: chosen.Fitness,
	}

	bestUpdated := s.considerBest(finalNeighbour, iteration)
	s.parentSwap = chosen.Pair

	next := finalNeighbour
	s.applyDiversification(iteration, &next)
	next.Fitness = Fitness(next.Route, s.instance)

	if next.Fitness > Distance(next.Route, s.instance.DistanceMatrix) {
		next = Repair(next, s.instance)
	}

	if s.considerBest(next, iteration) {
		bestUpdated = true
	}

	if bestUpdated {
		if s.stagnation > s.maxStag {
			s.maxStag = s.stagnation
		}
		s.stagnation = 0
		s.tempFactor = 1
	} else {
		s.stagnation++
		switch {
		case s.stagnation >= s.maxNoImprovement:
			if !s.hasEnded {
				s.hasEnded = true
				s.endedEarlyValue = s.best.Fitness
				s.endedEarlyIteration = iteration
			}
		case s.stagnation >= s.maxNoImprovement/2:
			s.tempFactor = 2
		}
	}

	s.current = next

	return nil
}

func (s *Search) considerBest(candidate Solution, iteration int) bool {
	if candidate.Fitness >= s.best.Fitness {
		return false
	}
	s.best = candidate.Clone()
	s.bestIter = iteration
	s.trace = append(s.trace, Update{Iteration: iteration, Fitness: candidate.Fitness})

	return true
}

// applyDiversification gates and applies rollback, steer-towards-best,
// tabu-tenure jitter, and segment-reverse+triple-swap mutation against
// working, in that order. The rollback and mutation gates draw their
// uniform samples from the non-deterministic RNG stream on every
// iteration (rollback's even when its cadence check fails); the tenure
// jitter draws its new tenure from that stream only on its cadence; the
// steer gate is cadence-only. SteerTowardsBest and
// SegmentReverseTripleSwap themselves draw from the deterministic stream.
func (s *Search) applyDiversification(iteration int, working *Solution) {
	temp := Temperature(s.options.Runs, iteration, s.tempFactor)

	rollbackU1 := s.nonDetRand.Float64()
	rollbackU2 := 0.3 + s.nonDetRand.Float64()*0.3
	rollbackU3 := 0.9 + s.nonDetRand.Float64()*0.1
	rollbackGate := rollbackU1*rollbackU2 <= temp*rollbackU3 &&
		iteration%50 == 0 &&
		len(s.saved) > s.tabu.MaxLen()*4

	if rollbackGate {
		*working = Rollback(s.saved, s.tabu.MaxLen(), *working, s.best).Clone()
		s.diag.RollbackFired++
	} else if iteration%40 == 0 {
		SteerTowardsBest(working, s.best, temp, s.detRand)
		s.diag.SteerFired++
	}

	if iteration%20 == 0 && s.options.TabuTenureMin < s.options.TabuTenureMax {
		span := s.options.TabuTenureMax - s.options.TabuTenureMin
		newTenure := s.options.TabuTenureMin + s.nonDetRand.Intn(span)
		s.tabu.SetMaxLen(newTenure)
		s.diag.TenureJitterFired++
	}

	mutateU1 := s.nonDetRand.Float64()
	mutateU2 := 0.4 + s.nonDetRand.Float64()*0.2
	mutateU3 := 0.8 + s.nonDetRand.Float64()*0.2
	if mutateU1*mutateU2 <= temp*mutateU3 {
		SegmentReverseTripleSwap(working, s.detRand)
		s.diag.MutationFired++
	}
}
