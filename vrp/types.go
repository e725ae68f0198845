// Package vrp implements the tabu-search core of a capacitated vehicle
// routing solver: a single depot, a heterogeneous fleet, and soft capacity
// constraints enforced through a fitness penalty rather than a hard
// feasibility check.
//
// Design goals:
//   - Determinism where it matters: the mutation operators draw from a
//     seeded RNG; only the acceptance gates draw from a non-deterministic
//     one, so a run is reproducible up to those gates.
//   - Zero surprises: a Solution is a flat sequence of Nodes with depot
//     markers woven in; there is no first-class Truck during search, only
//     a derived view produced on demand.
//   - No side effects: this package never logs and never touches the
//     filesystem. Callers (cmd/vrptabu) own observability.
package vrp

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a
// sentinel suffices.
var (
	// ErrEmptyFleet indicates NumTrucks is less than 1.
	ErrEmptyFleet = errors.New("vrp: fleet must have at least one truck")

	// ErrNonPositiveCapacity indicates a vehicle capacity is <= 0.
	ErrNonPositiveCapacity = errors.New("vrp: vehicle capacity must be positive")

	// ErrDemandMatrixMismatch indicates len(Demands) != distance matrix dimension.
	ErrDemandMatrixMismatch = errors.New("vrp: demand count does not match distance matrix size")

	// ErrNonSquareMatrix indicates the distance matrix is not N×N.
	ErrNonSquareMatrix = errors.New("vrp: distance matrix is not square")

	// ErrNegativeDemand indicates a customer demand is negative.
	ErrNegativeDemand = errors.New("vrp: demand must be non-negative")

	// ErrNegativePenalty indicates PenaltyValue is negative.
	ErrNegativePenalty = errors.New("vrp: penalty value must be non-negative")

	// ErrEmptyRoute indicates a Solution with zero nodes was given to an
	// operator that requires at least one node.
	ErrEmptyRoute = errors.New("vrp: route is empty")

	// ErrTenureRangeInvalid indicates TabuTenureMin >= TabuTenureMax.
	ErrTenureRangeInvalid = errors.New("vrp: tabu tenure range is invalid")

	// ErrRouteShapeInvalid indicates a Solution's route is not a valid
	// permutation of [0, N) with exactly NumTrucks-1 depot markers.
	ErrRouteShapeInvalid = errors.New("vrp: route is not a valid permutation with the expected depot markers")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Data model
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Node is one element of a flat route: either a customer or a depot
// marker. A depot marker carries Demand 0 and IsDepot true; everything
// else about it (its Index) is still meaningful, since Index addresses a
// row/column of the distance matrix.
type Node struct {
	// Index addresses the distance matrix; 0 is the physical depot.
	Index int

	// Demand is the customer's demand, or 0 for a depot marker.
	Demand int

	// IsDepot marks a node as a depot marker rather than a customer.
	IsDepot bool
}

// Solution is a candidate tour: a flat sequence of Nodes (customers
// interleaved with depot markers) and its cached Fitness. Fitness is a
// cache, not a derived property read on demand — callers must keep it in
// sync by calling Fitness(route, instance) after mutating Route.
type Solution struct {
	Route   []Node
	Fitness float64
}

// Clone returns a deep copy; Route is never shared between a Solution and
// its clone.
func (s Solution) Clone() Solution {
	route := make([]Node, len(s.Route))
	copy(route, s.Route)

	return Solution{Route: route, Fitness: s.Fitness}
}

// Truck is a derived view of one vehicle's assignment, produced by
// PartitionByLoad/PartitionByExcess. It is not kept between iterations;
// it exists only to support evaluation and repair, and Repair edits the
// trucks of its own partition before rebuilding the route.
type Truck struct {
	// Route is the customer-only sub-sequence assigned to this truck (no
	// depot markers).
	Route []Node

	// Load is the summed demand of Route.
	Load int

	// Capacity is the vehicle capacity assigned to this truck's rank.
	Capacity int

	// Excess is Load - Capacity; negative means spare capacity.
	Excess int

	// EndingWarehouse is the Index of the depot marker that closed this
	// truck, or the route length if it was closed implicitly at the end
	// of the sequence.
	EndingWarehouse int
}

// Pair is an unordered pair of route positions identifying a candidate
// swap move.
type Pair struct {
	I, J int
}

// Normalize returns Pair with I <= J, the canonical form stored in a
// TabuList.
func (p Pair) Normalize() Pair {
	if p.I > p.J {
		return Pair{I: p.J, J: p.I}
	}

	return p
}

// Overlaps reports whether p and other share a position.
func (p Pair) Overlaps(other Pair) bool {
	return p.I == other.I || p.I == other.J || p.J == other.I || p.J == other.J
}

// ProblemInstance is the static description of a CVRP: distances,
// demands, and a fleet of truck capacities. It is read-only for the
// lifetime of a search run.
type ProblemInstance struct {
	// LocationIDs optionally labels each distance-matrix row/column
	// (e.g. postal codes). Nil if the caller never supplied labels.
	LocationIDs []string

	// DistanceMatrix is an N×N matrix of non-negative distances, where N
	// is the number of physical locations (customers + depot).
	DistanceMatrix Matrix

	// VehicleCapacities holds one capacity per truck, sorted descending.
	VehicleCapacities []int

	// Demands holds one demand per location, indexed the same way as
	// DistanceMatrix; Demands[0] is the depot's demand (always 0).
	Demands []int

	// NumTrucks is the fleet size. NumTrucks-1 depot markers are woven
	// into every Solution's Route.
	NumTrucks int

	// PenaltyValue scales the overload penalty applied per unit of
	// excess demand.
	PenaltyValue int
}

// Matrix is the subset of matrix.Matrix this package depends on. Declared
// locally so vrp does not import the matrix package's concrete types,
// only its contract.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) (float64, error)
}

// NewProblemInstance validates and constructs a ProblemInstance.
// VehicleCapacities holds a copy of capacities sorted descending, to
// match the rank-based assignment PartitionByExcess performs; the
// caller's capacities slice is left unchanged.
//
// Errors: ErrEmptyFleet, ErrNonPositiveCapacity, ErrNonSquareMatrix,
// ErrDemandMatrixMismatch, ErrNegativeDemand, ErrNegativePenalty.
func NewProblemInstance(dm Matrix, capacities, demands []int, penalty int, locationIDs []string) (*ProblemInstance, error) {
	if len(capacities) < 1 {
		return nil, ErrEmptyFleet
	}
	for _, c := range capacities {
		if c <= 0 {
			return nil, ErrNonPositiveCapacity
		}
	}
	if dm.Rows() != dm.Cols() {
		return nil, ErrNonSquareMatrix
	}
	if len(demands) != dm.Rows() {
		return nil, ErrDemandMatrixMismatch
	}
	for _, d := range demands {
		if d < 0 {
			return nil, ErrNegativeDemand
		}
	}
	if penalty < 0 {
		return nil, ErrNegativePenalty
	}

	sortedCaps := make([]int, len(capacities))
	copy(sortedCaps, capacities)
	sortDescInt(sortedCaps)

	return &ProblemInstance{
		LocationIDs:       locationIDs,
		DistanceMatrix:    dm,
		VehicleCapacities: sortedCaps,
		Demands:           demands,
		NumTrucks:         len(sortedCaps),
		PenaltyValue:      penalty,
	}, nil
}

func sortDescInt(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] < v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs, carried over from the reference tuning of this search
// (tabu tenure bounds, aspiration threshold, tenure-jitter/rollback/steer
// cadence).
const (
	// DefaultRuns is the number of iterations the search performs absent
	// early termination.
	DefaultRuns = 2000

	// DefaultSeed seeds the deterministic RNG stream.
	DefaultSeed = 64

	// DefaultPenaltyValue scales the overload penalty per unit of excess.
	DefaultPenaltyValue = 20

	// DefaultAspirationThreshold is the fitness-window half-width used by
	// ChooseCandidate's aspiration criterion.
	DefaultAspirationThreshold = 20.0

	// DefaultTabuTenure is the initial tabu list length.
	DefaultTabuTenure = 20

	// DefaultTabuTenureMin is the lower bound tenure-jitter resamples
	// within.
	DefaultTabuTenureMin = 11

	// DefaultTabuTenureMax is the upper (exclusive) bound tenure-jitter
	// resamples within.
	DefaultTabuTenureMax = 29
)

// Options configures a Search. Zero value is not meaningful; use
// DefaultOptions() and override fields as needed.
type Options struct {
	// Runs bounds the number of iterations performed.
	Runs int

	// Seed feeds the deterministic RNG stream used by the mutation
	// operators (SteerTowardsBest, SegmentReverseTripleSwap).
	Seed int64

	// AspirationThreshold is the fitness-window half-width a tabu move
	// must fall within, relative to the best-so-far fitness, to be
	// accepted despite being tabu.
	AspirationThreshold float64

	// InitialTabuTenure is the tabu list's starting maximum length.
	InitialTabuTenure int

	// TabuTenureMin/TabuTenureMax bound the tenure-jitter resample range.
	TabuTenureMin int
	TabuTenureMax int

	// StopOnEarlyTermination, if true, stops Run as soon as the search
	// marks itself ended (stagnation past the computed threshold).
	// Reference behaviour is to keep iterating to Runs regardless, since
	// the original driver only records the early-termination point
	// without actually stopping the loop.
	StopOnEarlyTermination bool

	// SingleStreamRNG routes all randomness (the acceptance gates
	// included) through the deterministic stream, trading the dual-RNG
	// design's behavioural fidelity for bit-exact reproducibility. Off
	// by default.
	SingleStreamRNG bool
}

// DefaultOptions returns a fully populated Options struct with the
// reference tuning:
//   - 2000 iterations, seed 64, aspiration window ±20
//   - initial tabu tenure 20, jitter range [11, 29)
//   - keep iterating after early-termination is flagged
//   - two independent RNG streams
func DefaultOptions() Options {
	return Options{
		Runs:                   DefaultRuns,
		Seed:                   DefaultSeed,
		AspirationThreshold:    DefaultAspirationThreshold,
		InitialTabuTenure:      DefaultTabuTenure,
		TabuTenureMin:          DefaultTabuTenureMin,
		TabuTenureMax:          DefaultTabuTenureMax,
		StopOnEarlyTermination: false,
		SingleStreamRNG:        false,
	}
}

// Validate checks Options for internal consistency.
//
// Errors: ErrTenureRangeInvalid.
func (o Options) Validate() error {
	if o.TabuTenureMin >= o.TabuTenureMax {
		return ErrTenureRangeInvalid
	}

	return nil
}
