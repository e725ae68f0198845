// Package distance synthesizes a distance matrix for demo and test runs.
// Acquiring real-world distances from a geocoding or routing API is out
// of scope for the solver core; this package stands in for that
// acquisition step with a deterministic Euclidean-on-random-points
// generator, the same role the original project's fixture data generator
// played.
package distance

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/vrptabu/matrix"
)

// Point is a 2D coordinate used only to derive synthetic distances; it
// carries no meaning beyond that.
type Point struct {
	X, Y float64
}

// GenerateRandomPoints scatters n points uniformly in [0, extent)² using
// rng, for later conversion into a distance matrix with
// EuclideanMatrix.
//
// Complexity: O(n).
func GenerateRandomPoints(n int, extent float64, rng *rand.Rand) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * extent, Y: rng.Float64() * extent}
	}

	return points
}

// EuclideanMatrix builds an N×N matrix.Dense of straight-line distances
// between points.
//
// Complexity: O(n²).
func EuclideanMatrix(points []Point) (*matrix.Dense, error) {
	n := len(points)
	dm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			if err := dm.Set(i, j, math.Sqrt(dx*dx+dy*dy)); err != nil {
				return nil, err
			}
		}
	}

	return dm, nil
}
