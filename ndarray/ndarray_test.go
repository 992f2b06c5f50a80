// Copyright 2025 NumGo Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"testing"

	"github.com/numgo-ml/numgo/ndarray"
)

// TestArrayAPI verifies the NDArray alias exposes the expected API.
func TestArrayAPI(t *testing.T) {
	a, err := ndarray.Zeros(ndarray.Shape{2, 3}, ndarray.Float32)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}

	if !a.Shape().Equal(ndarray.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}
	if a.DType() != ndarray.Float32 {
		t.Errorf("DType() = %v, want Float32", a.DType())
	}
	if a.NDim() != 2 {
		t.Errorf("NDim() = %d, want 2", a.NDim())
	}
	if a.Size() != 6 {
		t.Errorf("Size() = %d, want 6", a.Size())
	}
}

// TestViewAliasing verifies views share storage and clones do not.
func TestViewAliasing(t *testing.T) {
	a, err := ndarray.FromNested([][]float64{{1, 2}, {3, 4}}, ndarray.Float64)
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	v := a.T()
	if !v.SharesDataWith(a) {
		t.Error("transpose should share the buffer")
	}
	if v.Clone().SharesDataWith(a) {
		t.Error("clone should not share the buffer")
	}
}

// TestSliceForms verifies the public slice specification forms.
func TestSliceForms(t *testing.T) {
	a, err := ndarray.Arange(0, 10, 1, ndarray.Float64)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}

	s, err := a.Slice("2:8:2")
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if got := s.ToSlice(); len(got) != 3 || got[0] != 2 || got[2] != 6 {
		t.Errorf("Slice(\"2:8:2\") = %v, want [2 4 6]", got)
	}

	g, err := a.Slice(ndarray.Picks{7, 0})
	if err != nil {
		t.Fatalf("Slice gather failed: %v", err)
	}
	if got := g.ToSlice(); got[0] != 7 || got[1] != 0 {
		t.Errorf("gather = %v, want [7 0]", got)
	}

	r, err := a.Slice(ndarray.Range{Start: 1, Stop: 4})
	if err != nil {
		t.Fatalf("Slice range failed: %v", err)
	}
	if r.Size() != 3 {
		t.Errorf("Range{1,4} size = %d, want 3", r.Size())
	}
}

// TestErrorTaxonomy verifies the error aliases work with errors.As.
func TestErrorTaxonomy(t *testing.T) {
	a, _ := ndarray.FromNested([]float64{1, 2, 3}, ndarray.Float64)
	b, _ := ndarray.FromNested([]float64{1, 2}, ndarray.Float64)

	_, err := ndarray.Add(a, b)
	var derr *ndarray.DimensionError
	if !errors.As(err, &derr) {
		t.Fatalf("Add mismatch error = %v, want DimensionError", err)
	}

	_, err = a.At(5)
	var berr *ndarray.IndexOutOfBoundsError
	if !errors.As(err, &berr) {
		t.Fatalf("At(5) error = %v, want IndexOutOfBoundsError", err)
	}
}

// TestPromote verifies the promotion helper is exposed.
func TestPromote(t *testing.T) {
	if got := ndarray.Promote(ndarray.Int8, ndarray.Float32); got != ndarray.Float32 {
		t.Errorf("Promote(Int8, Float32) = %v, want Float32", got)
	}
	if got := ndarray.Promote(ndarray.Uint16, ndarray.Int16); got != ndarray.Uint16 {
		t.Errorf("Promote(Uint16, Int16) = %v, want Uint16", got)
	}
}
