// File: dense.go
// Role: Row-major dense float64 matrix with bounds-checked accessors.
//       The flat buffer keeps the Floyd-Warshall hot loops cache-friendly
//       and allocation-free.

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix operations.
var (
	// ErrBadDimension indicates a negative dimension passed to NewDense.
	ErrBadDimension = errors.New("matrix: dimensions must be non-negative")

	// ErrIndexOutOfRange indicates an At/Set index outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a non-square matrix passed to an
	// operation that requires one.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilGraph indicates a nil *core.Graph passed to a constructor.
	ErrNilGraph = errors.New("matrix: graph is nil")
)

// Dense is a row-major r x c matrix backed by a single flat buffer.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zeroed r x c matrix.
// Returns ErrBadDimension when either dimension is negative.
func NewDense(r, c int) (*Dense, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimension, r, c)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// Rows reports the row count.
func (d *Dense) Rows() int { return d.r }

// Cols reports the column count.
func (d *Dense) Cols() int { return d.c }

// At returns the value at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfRange, i, j, d.r, d.c)
	}

	return d.data[i*d.c+j], nil
}

// Set stores v at (i, j).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrIndexOutOfRange, i, j, d.r, d.c)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, d.r)
	}
	out := make([]float64, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// validateSquare rejects non-square matrices.
func validateSquare(d *Dense) error {
	if d == nil {
		return ErrDimensionMismatch
	}
	if d.r != d.c {
		return fmt.Errorf("%w: non-square %dx%d", ErrDimensionMismatch, d.r, d.c)
	}

	return nil
}
