package linalg

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/numgo-ml/numgo/internal/ndarray"
)

// NormKind selects the matrix norm computed by Norm.
type NormKind int

const (
	// NormFrobenius is the square root of the sum of squared entries.
	NormFrobenius NormKind = iota
	// Norm1 is the maximum absolute column sum.
	Norm1
	// NormInf is the maximum absolute row sum.
	NormInf
)

// Det computes the determinant of a square matrix. Sizes 1 and 2 use the
// closed forms; larger matrices multiply U's diagonal from the pivoted LU
// factorization, with the sign given by the exact row-swap count. A matrix
// that is singular to machine precision has determinant 0.
func Det(a *ndarray.NDArray) (float64, error) {
	rows, n, err := squareRowsOf("det", a)
	if err != nil {
		return 0, err
	}
	switch n {
	case 0:
		return 0, &ndarray.EmptyArrayError{Op: "det"}
	case 1:
		return rows[0][0], nil
	case 2:
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0], nil
	}

	fact, err := luFactor("det", rows)
	if err != nil {
		var singular *SingularMatrixError
		if errors.As(err, &singular) {
			return 0, nil
		}
		return 0, err
	}

	det := 1.0
	for i := 0; i < n; i++ {
		det *= fact.u[i][i]
	}
	if fact.swaps%2 == 1 {
		det = -det
	}
	return det, nil
}

// Inv computes the inverse of a square matrix. Sizes 1 and 2 use the closed
// forms scaled by the reciprocal determinant; larger matrices run
// Gauss-Jordan elimination with partial pivoting on the augmented [A | I]
// and return the right half.
func Inv(a *ndarray.NDArray) (*ndarray.NDArray, error) {
	rows, n, err := squareRowsOf("inv", a)
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return nil, &ndarray.EmptyArrayError{Op: "inv"}
	case 1:
		v := rows[0][0]
		if math.Abs(v) < epsilon {
			return nil, &SingularMatrixError{Op: "inv", Pivot: math.Abs(v)}
		}
		return fromRows([][]float64{{1 / v}})
	case 2:
		det := rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
		if math.Abs(det) < epsilon {
			return nil, &SingularMatrixError{Op: "inv", Pivot: math.Abs(det)}
		}
		return fromRows([][]float64{
			{rows[1][1] / det, -rows[0][1] / det},
			{-rows[1][0] / det, rows[0][0] / det},
		})
	}

	// Gauss-Jordan on [A | I].
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], rows[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		maxAbs := math.Abs(aug[col][col])
		for i := col + 1; i < n; i++ {
			if abs := math.Abs(aug[i][col]); abs > maxAbs {
				maxAbs = abs
				pivot = i
			}
		}
		if maxAbs < epsilon {
			return nil, &SingularMatrixError{Op: "inv", Pivot: maxAbs}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		scale := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= scale
		}
		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			factor := aug[i][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[i][j] -= factor * aug[col][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i := 0; i < n; i++ {
		inv[i] = aug[i][n:]
	}
	return fromRows(inv)
}

// Rank reduces a copy of the matrix to row-echelon form with partial
// pivoting, eliminating above and below each pivot, and counts the rows with
// at least one entry above machine epsilon in magnitude. The input need not
// be square.
func Rank(a *ndarray.NDArray) (int, error) {
	rows, err := rowsOf("rank", a)
	if err != nil {
		return 0, err
	}
	n := len(rows)
	if n == 0 {
		return 0, nil
	}
	m := len(rows[0])

	row := 0
	for col := 0; col < m && row < n; col++ {
		pivot := row
		maxAbs := math.Abs(rows[row][col])
		for i := row + 1; i < n; i++ {
			if abs := math.Abs(rows[i][col]); abs > maxAbs {
				maxAbs = abs
				pivot = i
			}
		}
		if maxAbs < epsilon {
			continue // no usable pivot in this column, advance
		}
		rows[row], rows[pivot] = rows[pivot], rows[row]

		for i := 0; i < n; i++ {
			if i == row {
				continue
			}
			factor := rows[i][col] / rows[row][col]
			if factor == 0 {
				continue
			}
			for j := col; j < m; j++ {
				rows[i][j] -= factor * rows[row][j]
			}
		}
		row++
	}

	rank := 0
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if math.Abs(rows[i][j]) > epsilon {
				rank++
				break
			}
		}
	}
	return rank, nil
}

// Trace sums the diagonal of a square matrix.
func Trace(a *ndarray.NDArray) (float64, error) {
	rows, n, err := squareRowsOf("trace", a)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rows[i][i]
	}
	return sum, nil
}

// Norm computes a matrix norm of a 2-dimensional array. The matrix need not
// be square.
func Norm(a *ndarray.NDArray, kind NormKind) (float64, error) {
	rows, err := rowsOf("norm", a)
	if err != nil {
		return 0, err
	}

	switch kind {
	case NormFrobenius:
		flat := make([]float64, 0)
		for _, row := range rows {
			flat = append(flat, row...)
		}
		if len(flat) == 0 {
			return 0, nil
		}
		return floats.Norm(flat, 2), nil
	case Norm1:
		if len(rows) == 0 || len(rows[0]) == 0 {
			return 0, nil
		}
		best := 0.0
		for j := range rows[0] {
			sum := 0.0
			for i := range rows {
				sum += math.Abs(rows[i][j])
			}
			best = math.Max(best, sum)
		}
		return best, nil
	case NormInf:
		best := 0.0
		for _, row := range rows {
			sum := 0.0
			for _, v := range row {
				sum += math.Abs(v)
			}
			best = math.Max(best, sum)
		}
		return best, nil
	default:
		return 0, &ndarray.InvalidParameterError{
			Param:    "kind",
			Expected: "NormFrobenius, Norm1 or NormInf",
			Actual:   kind,
		}
	}
}

// IsSymmetric reports whether a 2-dimensional array equals its transpose
// within tol. A non-positive tol means machine epsilon. Non-square matrices
// are not symmetric rather than erroneous.
func IsSymmetric(a *ndarray.NDArray, tol float64) (bool, error) {
	rows, err := rowsOf("isSymmetric", a)
	if err != nil {
		return false, err
	}
	n := len(rows)
	if n == 0 || len(rows[0]) != n {
		return false, nil
	}
	if tol <= 0 {
		tol = epsilon
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > tol {
				return false, nil
			}
		}
	}
	return true, nil
}
