// Copyright 2025 NumGo Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/numgo-ml/numgo/linalg"
	"github.com/numgo-ml/numgo/ndarray"
)

// TestLinalgAPI verifies the public wrappers round-trip through the engine.
func TestLinalgAPI(t *testing.T) {
	a, err := ndarray.FromNested([][]float64{{2, 1}, {1, 1}}, ndarray.Float64)
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	det, err := linalg.Det(a)
	if err != nil {
		t.Fatalf("Det failed: %v", err)
	}
	if math.Abs(det-1) > 1e-12 {
		t.Errorf("Det = %v, want 1", det)
	}

	b, err := ndarray.FromSlice([]float64{3, 2}, ndarray.Shape{2}, ndarray.Float64)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	x, err := linalg.Solve(a, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	got := x.ToSlice()
	if math.Abs(got[0]-1) > 1e-10 || math.Abs(got[1]-1) > 1e-10 {
		t.Errorf("Solve = %v, want [1 1]", got)
	}
}

// TestSingularError verifies the error aliases work with errors.As.
func TestSingularError(t *testing.T) {
	a, err := ndarray.FromNested([][]float64{{1, 2}, {2, 4}}, ndarray.Float64)
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	_, err = linalg.Inv(a)
	var serr *linalg.SingularMatrixError
	if !errors.As(err, &serr) {
		t.Fatalf("Inv error = %v, want SingularMatrixError", err)
	}

	v, _ := ndarray.FromNested([][]float64{{1, 2, 3}}, ndarray.Float64)
	_, err = linalg.Det(v)
	var nerr *linalg.NonSquareMatrixError
	if !errors.As(err, &nerr) {
		t.Fatalf("Det error = %v, want NonSquareMatrixError", err)
	}
}
