package linalg

import (
	"math"

	"github.com/numgo-ml/numgo/internal/ndarray"
)

// Cholesky decomposes a symmetric positive-definite matrix into A = L·Lᵀ,
// returning the lower-triangular L. The accumulation is the full partial
// sum over already-computed columns; a non-positive pivot fails fast with a
// MathematicalError, which is exactly the signal IsPositiveDefinite relies
// on.
func Cholesky(a *ndarray.NDArray) (*ndarray.NDArray, error) {
	rows, n, err := squareRowsOf("cholesky", a)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &ndarray.EmptyArrayError{Op: "cholesky"}
	}

	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}

	for j := 0; j < n; j++ {
		sum := rows[j][j]
		for k := 0; k < j; k++ {
			sum -= l[j][k] * l[j][k]
		}
		if sum <= 0 {
			return nil, &ndarray.MathematicalError{Op: "cholesky", Operands: []float64{sum}}
		}
		l[j][j] = math.Sqrt(sum)

		for i := j + 1; i < n; i++ {
			s := rows[i][j]
			for k := 0; k < j; k++ {
				s -= l[i][k] * l[j][k]
			}
			l[i][j] = s / l[j][j]
		}
	}

	return fromRows(l)
}

// IsPositiveDefinite reports whether the matrix is symmetric positive
// definite by attempting a genuine Cholesky decomposition and reporting any
// failure as non-positive-definite. Non-square and non-symmetric matrices
// are simply not positive definite.
func IsPositiveDefinite(a *ndarray.NDArray) (bool, error) {
	symmetric, err := IsSymmetric(a, 1e-10)
	if err != nil {
		return false, err
	}
	if !symmetric {
		return false, nil
	}
	if _, err := Cholesky(a); err != nil {
		return false, nil
	}
	return true, nil
}
