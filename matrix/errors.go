package matrix

import "errors"

// Sentinel errors for the matrix package. Callers use errors.Is; no
// fmt.Errorf wrapping is applied where a sentinel already says enough.
var (
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare indicates a distance matrix is not square.
	ErrNonSquare = errors.New("matrix: not square")
)
