package linalg

import "fmt"

// SingularMatrixError reports a pivot too small to eliminate against:
// the matrix is singular to machine precision.
type SingularMatrixError struct {
	Op    string
	Pivot float64
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("%s: matrix is singular (pivot magnitude %g below machine epsilon)", e.Op, e.Pivot)
}

// NonSquareMatrixError reports a square-matrix precondition violation.
type NonSquareMatrixError struct {
	Op   string
	Rows int
	Cols int
}

func (e *NonSquareMatrixError) Error() string {
	return fmt.Sprintf("%s: requires a square matrix, got %dx%d", e.Op, e.Rows, e.Cols)
}
