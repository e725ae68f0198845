// Package csvio loads CVRP problem instances from CSV files and writes a
// search's update trace back out to CSV, generalising the original
// project's hard-coded postal-code JSON fixture into a plain,
// spreadsheet-editable format.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/vrptabu/vrp"
)

// Location is one row of a locations CSV: an opaque ID (e.g. a postal
// code) and its demand. The depot is always row 0 and must have demand 0.
type Location struct {
	ID     string
	Demand int
}

// LoadLocations reads a two-column CSV (id, demand) with a header row and
// returns the parsed Locations in file order.
func LoadLocations(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open locations file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	if _, err := r.Read(); err != nil { // header
		return nil, fmt.Errorf("csvio: read locations header: %w", err)
	}

	var locations []Location
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read locations row: %w", err)
		}

		demand, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("csvio: parse demand for %q: %w", record[0], err)
		}

		locations = append(locations, Location{ID: record[0], Demand: demand})
	}

	return locations, nil
}

// LoadCapacities reads a single-column CSV (capacity) with a header row.
func LoadCapacities(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open trucks file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 1

	if _, err := r.Read(); err != nil { // header
		return nil, fmt.Errorf("csvio: read trucks header: %w", err)
	}

	var capacities []int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read trucks row: %w", err)
		}

		capacity, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("csvio: parse capacity %q: %w", record[0], err)
		}

		capacities = append(capacities, capacity)
	}

	return capacities, nil
}

// WriteUpdateTrace writes a search's update trace to path: one row per
// improvement, columns "iteration", "new_best_so_far", and
// "ended_early_iteration" — the third column repeats the same scalar on
// every row, matching the original project's output format.
func WriteUpdateTrace(path string, trace []vrp.Update, endedEarlyIteration int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create trace file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "new_best_so_far", "ended_early_iteration"}); err != nil {
		return fmt.Errorf("csvio: write trace header: %w", err)
	}

	for _, update := range trace {
		row := []string{
			strconv.Itoa(update.Iteration),
			strconv.FormatFloat(update.Fitness, 'f', -1, 64),
			strconv.Itoa(endedEarlyIteration),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csvio: write trace row: %w", err)
		}
	}

	return w.Error()
}
