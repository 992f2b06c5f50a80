// Copyright 2025 NumGo Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for dense linear algebra on
// NDArray views: LU decomposition with partial pivoting, determinant,
// inverse, rank, trace, matrix norms, linear solving, and symmetry /
// positive-definiteness checks.
//
// All operations require 2-dimensional views and, except for Rank, Norm and
// IsSymmetric, square ones. Singular matrices fail with
// *SingularMatrixError, rectangular inputs to square-only operations with
// *NonSquareMatrixError.
//
// Example:
//
//	a, _ := ndarray.FromNested([][]float64{{2, 1}, {1, 1}}, ndarray.Float64)
//	b, _ := ndarray.FromNested([]float64{3, 2}, ndarray.Float64)
//	x, err := linalg.Solve(a, b) // [1, 1]
package linalg

import (
	"github.com/numgo-ml/numgo/internal/linalg"
	"github.com/numgo-ml/numgo/ndarray"
)

// NormKind selects the matrix norm computed by Norm.
type NormKind = linalg.NormKind

// Supported matrix norms.
const (
	// NormFrobenius is the square root of the sum of squared entries.
	NormFrobenius NormKind = linalg.NormFrobenius
	// Norm1 is the maximum absolute column sum.
	Norm1 NormKind = linalg.Norm1
	// NormInf is the maximum absolute row sum.
	NormInf NormKind = linalg.NormInf
)

// SingularMatrixError reports a matrix singular to machine precision.
type SingularMatrixError = linalg.SingularMatrixError

// NonSquareMatrixError reports a square-matrix precondition violation.
type NonSquareMatrixError = linalg.NonSquareMatrixError

// LU decomposes a square matrix into PA = LU with partial pivoting,
// returning L (unit lower-triangular), U (upper-triangular) and the
// permutation P as a 1-dimensional Int32 row-index vector.
func LU(a *ndarray.NDArray) (l, u, p *ndarray.NDArray, err error) {
	return linalg.LU(a)
}

// Det computes the determinant of a square matrix.
func Det(a *ndarray.NDArray) (float64, error) {
	return linalg.Det(a)
}

// Inv computes the inverse of a square matrix.
func Inv(a *ndarray.NDArray) (*ndarray.NDArray, error) {
	return linalg.Inv(a)
}

// Rank computes the rank of a 2-dimensional array by row-echelon reduction.
func Rank(a *ndarray.NDArray) (int, error) {
	return linalg.Rank(a)
}

// Trace sums the diagonal of a square matrix.
func Trace(a *ndarray.NDArray) (float64, error) {
	return linalg.Trace(a)
}

// Norm computes a matrix norm of a 2-dimensional array.
func Norm(a *ndarray.NDArray, kind NormKind) (float64, error) {
	return linalg.Norm(a, kind)
}

// Solve solves Ax = b for a square A via LU decomposition with partial
// pivoting.
func Solve(a, b *ndarray.NDArray) (*ndarray.NDArray, error) {
	return linalg.Solve(a, b)
}

// Cholesky decomposes a symmetric positive-definite matrix into A = L·Lᵀ.
func Cholesky(a *ndarray.NDArray) (*ndarray.NDArray, error) {
	return linalg.Cholesky(a)
}

// IsSymmetric reports whether the matrix equals its transpose within tol;
// a non-positive tol means machine epsilon.
func IsSymmetric(a *ndarray.NDArray, tol float64) (bool, error) {
	return linalg.IsSymmetric(a, tol)
}

// IsPositiveDefinite reports whether the matrix is symmetric positive
// definite, by attempting a Cholesky decomposition.
func IsPositiveDefinite(a *ndarray.NDArray) (bool, error) {
	return linalg.IsPositiveDefinite(a)
}
