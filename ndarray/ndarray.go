// Copyright 2025 NumGo Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the public API for the NumGo array engine.
package ndarray

import (
	"github.com/numgo-ml/numgo/internal/ndarray"
)

// Type aliases for the public API.

// NDArray is a strided view over a shared storage buffer.
type NDArray = ndarray.NDArray

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} describes a 3-dimensional 2×3×4 array.
type Shape = ndarray.Shape

// DType is the runtime element-kind tag of an array.
type DType = ndarray.DType

// Element kind constants.
const (
	Int8    DType = ndarray.Int8
	Int16   DType = ndarray.Int16
	Int32   DType = ndarray.Int32
	Uint8   DType = ndarray.Uint8
	Uint16  DType = ndarray.Uint16
	Uint32  DType = ndarray.Uint32
	Float32 DType = ndarray.Float32
	Float64 DType = ndarray.Float64
)

// Slice specification types.

// Range is an explicit per-axis slice; a zero Step means 1.
type Range = ndarray.Range

// Picks is an explicit gather specification.
type Picks = ndarray.Picks

// Error taxonomy.

// DimensionError reports a shape or rank mismatch.
type DimensionError = ndarray.DimensionError

// InvalidParameterError reports a parameter with the wrong type or value.
type InvalidParameterError = ndarray.InvalidParameterError

// IndexOutOfBoundsError reports an index outside its axis.
type IndexOutOfBoundsError = ndarray.IndexOutOfBoundsError

// MathematicalError reports a numeric domain violation.
type MathematicalError = ndarray.MathematicalError

// EmptyArrayError reports a reduction over zero elements.
type EmptyArrayError = ndarray.EmptyArrayError

// NumericalOverflowError reports a value outside a kind's range.
type NumericalOverflowError = ndarray.NumericalOverflowError

// Promote returns the result kind of a binary operation between two kinds.
func Promote(a, b DType) DType {
	return ndarray.Promote(a, b)
}

// BroadcastShapes applies NumPy-style broadcasting rules to two shapes.
func BroadcastShapes(op string, a, b Shape) (Shape, error) {
	return ndarray.BroadcastShapes(op, a, b)
}

// ParseSlice parses a textual slice expression such as "1:4" or "::-1" and
// normalizes it against an axis of the given length.
func ParseSlice(expr string, dim int) (Range, error) {
	return ndarray.ParseSlice(expr, dim)
}

// Factories.

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a, err := ndarray.Zeros(ndarray.Shape{3, 4}, ndarray.Float64)
func Zeros(shape Shape, dtype DType) (*NDArray, error) {
	return ndarray.Zeros(shape, dtype)
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DType) (*NDArray, error) {
	return ndarray.Ones(shape, dtype)
}

// Full creates an array filled with value.
func Full(shape Shape, value float64, dtype DType) (*NDArray, error) {
	return ndarray.Full(shape, value, dtype)
}

// Eye creates an n-by-n identity matrix.
func Eye(n int, dtype DType) (*NDArray, error) {
	return ndarray.Eye(n, dtype)
}

// Arange creates a 1-D array of values from start up to but not including
// stop, in increments of step.
func Arange(start, stop, step float64, dtype DType) (*NDArray, error) {
	return ndarray.Arange(start, stop, step, dtype)
}

// Linspace creates a 1-D array of count values evenly spaced from start to
// stop inclusive.
func Linspace(start, stop float64, count int, dtype DType) (*NDArray, error) {
	return ndarray.Linspace(start, stop, count, dtype)
}

// FromSlice creates an array from a flat row-major slice of values.
func FromSlice(data []float64, shape Shape, dtype DType) (*NDArray, error) {
	return ndarray.FromSlice(data, shape, dtype)
}

// FromNested creates an array from a rectangular nested slice, inferring the
// shape from the nesting. Chain with AsReadOnly for an immutable array.
//
// Example:
//
//	a, err := ndarray.FromNested([][]float64{{1, 2}, {3, 4}}, ndarray.Float64)
func FromNested(nested any, dtype DType) (*NDArray, error) {
	return ndarray.FromNested(nested, dtype)
}

// Rand creates an array of uniform random values in [0, 1).
func Rand(shape Shape, dtype DType) (*NDArray, error) {
	return ndarray.Rand(shape, dtype)
}

// Randn creates an array of standard normal random values.
func Randn(shape Shape, dtype DType) (*NDArray, error) {
	return ndarray.Randn(shape, dtype)
}
