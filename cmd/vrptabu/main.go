// Command vrptabu runs the capacitated vehicle routing tabu-search
// solver end to end: load or synthesize a problem instance, run the
// search, log the best fitness found with the run's diagnostics, and
// write the update trace to CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrptabu/internal/csvio"
	"github.com/katalvlaran/vrptabu/internal/distance"
	"github.com/katalvlaran/vrptabu/internal/telemetry"
	"github.com/katalvlaran/vrptabu/vrp"
)

// config holds the parsed CLI flags.
type config struct {
	locationsPath string
	trucksPath    string
	trucksList    string
	penalty       int
	runs          int
	seed          int64
	aspiration    float64
	outPath       string
	logFormat     string
	locationCount int
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.locationsPath, "locations", "", "CSV file of (id, demand) rows; empty generates a synthetic instance")
	flag.StringVar(&c.trucksPath, "trucks", "", "CSV file of capacity rows")
	flag.StringVar(&c.trucksList, "truck-sizes", "1000000,500000", "comma-separated capacities, used when -trucks is empty")
	flag.IntVar(&c.penalty, "penalty", vrp.DefaultPenaltyValue, "overload penalty per unit of excess demand")
	flag.IntVar(&c.runs, "runs", vrp.DefaultRuns, "number of search iterations")
	flag.Int64Var(&c.seed, "seed", vrp.DefaultSeed, "deterministic RNG seed")
	flag.Float64Var(&c.aspiration, "aspiration", vrp.DefaultAspirationThreshold, "aspiration fitness window half-width")
	flag.StringVar(&c.outPath, "out", "best_so_far.csv", "path to write the update trace CSV")
	flag.StringVar(&c.logFormat, "log-format", "console", "log output format: console or json")
	flag.IntVar(&c.locationCount, "locations-count", 76, "synthetic instance size, used when -locations is empty")
	flag.Parse()

	return c
}

func main() {
	cfg := parseFlags()

	logger, err := telemetry.New(telemetry.Format(cfg.logFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vrptabu: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	instance, err := buildInstance(cfg)
	if err != nil {
		logger.Fatalw("failed to build problem instance", "error", err)
	}

	options := vrp.DefaultOptions()
	options.Runs = cfg.runs
	options.Seed = cfg.seed
	options.AspirationThreshold = cfg.aspiration

	rng := vrp.NewDeterministicRand(cfg.seed)
	initial := vrp.NewInitialSolution(instance, rng)

	search, err := vrp.NewSearch(instance, initial, options)
	if err != nil {
		logger.Fatalw("invalid search options", "error", err)
	}

	logger.Infow("starting search", "runs", options.Runs, "locations", len(instance.Demands), "trucks", instance.NumTrucks)

	result, err := search.Run(context.Background())
	if err != nil {
		logger.Fatalw("search failed", "error", err)
	}

	logger.Infow("search complete",
		"best_fitness", result.Best.Fitness,
		"best_iteration", result.BestIteration,
		"rollback_fired", result.Diagnostics.RollbackFired,
		"steer_fired", result.Diagnostics.SteerFired,
		"tenure_jitter_fired", result.Diagnostics.TenureJitterFired,
		"mutation_fired", result.Diagnostics.MutationFired,
	)

	if result.Diagnostics.HasEnded {
		improvement := 0.0
		if result.UpdateTrace != nil {
			first := result.UpdateTrace[0].Fitness
			if first != 0 {
				improvement = (first - result.Diagnostics.EndedEarlyValue) / first * 100
			}
		}
		logger.Infow("stagnation threshold reached",
			"ended_early_iteration", result.Diagnostics.EndedEarlyIteration,
			"ended_early_value", result.Diagnostics.EndedEarlyValue,
			"improvement_pct", improvement,
		)
	}

	if err := csvio.WriteUpdateTrace(cfg.outPath, result.UpdateTrace, result.Diagnostics.EndedEarlyIteration); err != nil {
		logger.Fatalw("failed to write update trace", "error", err)
	}
}

// buildInstance loads a problem instance from CSV when -locations is
// set, otherwise synthesizes one from a deterministic random point
// cloud.
func buildInstance(cfg config) (*vrp.ProblemInstance, error) {
	capacities, err := loadCapacities(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.locationsPath != "" {
		locations, err := csvio.LoadLocations(cfg.locationsPath)
		if err != nil {
			return nil, err
		}

		ids := make([]string, len(locations))
		demands := make([]int, len(locations))
		for i, loc := range locations {
			ids[i] = loc.ID
			demands[i] = loc.Demand
		}

		rng := vrp.NewDeterministicRand(cfg.seed)
		points := distance.GenerateRandomPoints(len(locations), 100, rng)
		dm, err := distance.EuclideanMatrix(points)
		if err != nil {
			return nil, err
		}

		return vrp.NewProblemInstance(dm, capacities, demands, cfg.penalty, ids)
	}

	rng := vrp.NewDeterministicRand(cfg.seed)
	demands := make([]int, cfg.locationCount)
	for i := 1; i < cfg.locationCount; i++ {
		demands[i] = 1 + rng.Intn(20)
	}
	points := distance.GenerateRandomPoints(cfg.locationCount, 100, rng)
	dm, err := distance.EuclideanMatrix(points)
	if err != nil {
		return nil, err
	}

	return vrp.NewProblemInstance(dm, capacities, demands, cfg.penalty, nil)
}

func loadCapacities(cfg config) ([]int, error) {
	if cfg.trucksPath != "" {
		return csvio.LoadCapacities(cfg.trucksPath)
	}

	parts := strings.Split(cfg.trucksList, ",")
	capacities := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("vrptabu: parse truck size %q: %w", p, err)
		}
		capacities = append(capacities, v)
	}

	return capacities, nil
}
