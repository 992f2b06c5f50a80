package linalg

import (
	"math"

	"github.com/numgo-ml/numgo/internal/ndarray"
)

// luFactorization is the internal result of luFactor: unit lower-triangular
// L, upper-triangular U, the permutation as a row-index vector, and the
// number of row swaps performed, which carries the exact parity sign for the
// determinant.
type luFactorization struct {
	l     [][]float64
	u     [][]float64
	perm  []int
	swaps int
}

// luFactor runs LU decomposition with partial pivoting on working rows.
// For each column the largest-magnitude candidate pivot among the remaining
// rows is swapped into place; a pivot below machine epsilon means the matrix
// is singular.
func luFactor(op string, a [][]float64) (*luFactorization, error) {
	n := len(a)
	u := make([][]float64, n)
	l := make([][]float64, n)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		u[i] = append([]float64(nil), a[i]...)
		l[i] = make([]float64, n)
		l[i][i] = 1
		perm[i] = i
	}

	swaps := 0
	for k := 0; k < n-1; k++ {
		pivot := k
		maxAbs := math.Abs(u[k][k])
		for i := k + 1; i < n; i++ {
			if abs := math.Abs(u[i][k]); abs > maxAbs {
				maxAbs = abs
				pivot = i
			}
		}
		if maxAbs < epsilon {
			return nil, &SingularMatrixError{Op: op, Pivot: maxAbs}
		}
		if pivot != k {
			u[k], u[pivot] = u[pivot], u[k]
			// Only the already-computed multipliers move with the row.
			for j := 0; j < k; j++ {
				l[k][j], l[pivot][j] = l[pivot][j], l[k][j]
			}
			perm[k], perm[pivot] = perm[pivot], perm[k]
			swaps++
		}

		for i := k + 1; i < n; i++ {
			factor := u[i][k] / u[k][k]
			l[i][k] = factor
			for j := k; j < n; j++ {
				u[i][j] -= factor * u[k][j]
			}
		}
	}

	return &luFactorization{l: l, u: u, perm: perm, swaps: swaps}, nil
}

// LU decomposes a square matrix into PA = LU with partial pivoting.
// It returns L (unit lower-triangular), U (upper-triangular) and the
// permutation P as a 1-dimensional Int32 row-index vector: row i of the
// permuted matrix is row P[i] of the input.
func LU(a *ndarray.NDArray) (l, u, p *ndarray.NDArray, err error) {
	rows, n, err := squareRowsOf("lu", a)
	if err != nil {
		return nil, nil, nil, err
	}
	if n == 0 {
		return nil, nil, nil, &ndarray.EmptyArrayError{Op: "lu"}
	}

	fact, err := luFactor("lu", rows)
	if err != nil {
		return nil, nil, nil, err
	}

	if l, err = fromRows(fact.l); err != nil {
		return nil, nil, nil, err
	}
	if u, err = fromRows(fact.u); err != nil {
		return nil, nil, nil, err
	}
	permFlat := make([]float64, n)
	for i, v := range fact.perm {
		permFlat[i] = float64(v)
	}
	if p, err = ndarray.FromSlice(permFlat, ndarray.Shape{n}, ndarray.Int32); err != nil {
		return nil, nil, nil, err
	}
	return l, u, p, nil
}

// Solve solves Ax = b for a square A via LU decomposition: b is permuted by
// P, Ly = Pb is forward-substituted, and Ux = y back-substituted. The
// solution is a 1-dimensional Float64 array.
func Solve(a, b *ndarray.NDArray) (*ndarray.NDArray, error) {
	rows, n, err := squareRowsOf("solve", a)
	if err != nil {
		return nil, err
	}
	rhs, err := vectorOf("solve", b)
	if err != nil {
		return nil, err
	}
	if len(rhs) != n {
		return nil, &ndarray.DimensionError{
			Op:       "solve",
			Expected: ndarray.Shape{n},
			Actual:   b.Shape().Clone(),
		}
	}
	if n == 0 {
		return nil, &ndarray.EmptyArrayError{Op: "solve"}
	}

	fact, err := luFactor("solve", rows)
	if err != nil {
		return nil, err
	}

	pb := make([]float64, n)
	for i, src := range fact.perm {
		pb[i] = rhs[src]
	}

	// Forward substitution: Ly = Pb, L unit lower-triangular.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := pb[i]
		for j := 0; j < i; j++ {
			sum -= fact.l[i][j] * y[j]
		}
		y[i] = sum
	}

	// Back substitution: Ux = y. The final pivot is not examined during
	// factorization, so guard it here.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		diag := fact.u[i][i]
		if math.Abs(diag) < epsilon {
			return nil, &SingularMatrixError{Op: "solve", Pivot: math.Abs(diag)}
		}
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= fact.u[i][j] * x[j]
		}
		x[i] = sum / diag
	}

	return ndarray.FromSlice(x, ndarray.Shape{n}, ndarray.Float64)
}
