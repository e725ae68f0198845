package matrix

import "fmt"

// Dense is a row-major distance matrix: a flat slice holds r*c elements,
// element (i, j) lives at data[i*c+j]. Chosen over [][]float64 for a
// single allocation and cache-friendly row scans, since the neighbourhood
// generator re-reads this matrix from every parallel worker on every
// iteration.
type Dense struct {
	r, c int
	data []float64
}

// compile-time assertion that *Dense satisfies Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense allocates an r×c Dense matrix initialized to zero.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense matrix from a slice of equal-length rows.
// Returns ErrNonSquare if rows are ragged or the shape isn't square — a
// distance matrix between N nodes is always N×N.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(d.data[i*n:(i+1)*n], row)
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("matrix.Dense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). Distance matrices are built once at setup
// and read-only for the rest of a run, but construction needs a writer.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}
