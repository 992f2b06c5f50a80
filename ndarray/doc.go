// Copyright 2025 NumGo Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides NumPy-style multi-dimensional arrays for Go.
//
// # Overview
//
// An NDArray is a strided view over a shared storage buffer. This package
// provides:
//   - Eight fixed-width element kinds (signed/unsigned 8/16/32-bit integers,
//     32/64-bit floats) behind one dynamic array type
//   - Zero-copy reshape, transpose, range slicing and views
//   - NumPy-style broadcasting for elementwise operations
//   - Gather and boolean-mask indexing into new storage
//
// # Basic Usage
//
//	import "github.com/numgo-ml/numgo/ndarray"
//
//	func main() {
//	    a, _ := ndarray.FromNested([][]float64{{1, 2}, {3, 4}}, ndarray.Float64)
//	    b, _ := ndarray.FromNested([]float64{10, 20}, ndarray.Float64)
//	    sum, _ := ndarray.Add(a, b) // broadcasts to [[11, 22], [13, 24]]
//	    _ = sum
//	}
//
// # Views and Aliasing
//
// Reshape, Transpose, Slice (with index/range specifications) and View
// return new view metadata over the same buffer: writes through any aliased
// view are immediately visible through all others, and SharesDataWith makes
// the aliasing queryable. Clone, gather/mask slicing, arithmetic results and
// Dot always allocate fresh storage.
//
// # Error Handling
//
// The engine never stores NaN or Infinity; domain violations, zero divisors
// and out-of-range writes fail synchronously with a typed error
// (DimensionError, IndexOutOfBoundsError, MathematicalError,
// InvalidParameterError, NumericalOverflowError, EmptyArrayError) that
// callers match with errors.As.
package ndarray
