// Package linalg implements dense linear algebra on top of the array
// engine: LU decomposition with partial pivoting, Gauss-Jordan elimination,
// Cholesky, and the operations built from them. Matrices enter and leave as
// *ndarray.NDArray views; internally the algorithms work on Float64 row
// copies obtained through the engine's public element contract only.
package linalg

import (
	"fmt"
	"math"

	"github.com/numgo-ml/numgo/internal/ndarray"
)

// epsilon is the double-precision machine epsilon, the singularity threshold
// for pivot magnitudes throughout the package.
var epsilon = math.Nextafter(1, 2) - 1

// rowsOf extracts a 2-dimensional view into Float64 working rows.
func rowsOf(op string, a *ndarray.NDArray) ([][]float64, error) {
	if a.NDim() != 2 {
		return nil, &ndarray.DimensionError{
			Op:     op,
			Actual: a.Shape().Clone(),
			Reason: fmt.Sprintf("requires a 2-dimensional array, got shape %v", a.Shape()),
		}
	}
	n, m := a.Shape()[0], a.Shape()[1]
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}
	return rows, nil
}

// squareRowsOf is rowsOf plus the square precondition.
func squareRowsOf(op string, a *ndarray.NDArray) ([][]float64, int, error) {
	rows, err := rowsOf(op, a)
	if err != nil {
		return nil, 0, err
	}
	n, m := a.Shape()[0], a.Shape()[1]
	if n != m {
		return nil, 0, &NonSquareMatrixError{Op: op, Rows: n, Cols: m}
	}
	return rows, n, nil
}

// fromRows materializes working rows back into a Float64 array view.
func fromRows(rows [][]float64) (*ndarray.NDArray, error) {
	n := len(rows)
	m := 0
	if n > 0 {
		m = len(rows[0])
	}
	flat := make([]float64, 0, n*m)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return ndarray.FromSlice(flat, ndarray.Shape{n, m}, ndarray.Float64)
}

// vectorOf extracts a 1-dimensional view into a Float64 working vector.
func vectorOf(op string, b *ndarray.NDArray) ([]float64, error) {
	if b.NDim() != 1 {
		return nil, &ndarray.DimensionError{
			Op:     op,
			Actual: b.Shape().Clone(),
			Reason: fmt.Sprintf("right-hand side must be 1-dimensional, got shape %v", b.Shape()),
		}
	}
	out := make([]float64, b.Shape()[0])
	for i := range out {
		v, err := b.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
