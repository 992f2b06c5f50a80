package ndarray

import "fmt"

// Shape represents the dimensions of an array. An empty Shape denotes a
// 0-dimensional scalar container holding one element; a Shape containing a 0
// denotes an array holding no elements.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// The empty product is 1, so a scalar shape counts one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return &InvalidParameterError{
				Param:    "shape",
				Expected: fmt.Sprintf("non-negative dimension at axis %d", i),
				Actual:   dim,
			}
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major element strides for the shape:
// the last axis is fastest and stride[i] is the product of all dimensions
// after axis i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes applies NumPy-style broadcasting rules to two shapes.
//
// The shapes are right-aligned, the shorter padded on the left with 1s, and
// each aligned dimension pair must be equal or contain a 1. The result takes
// the larger dimension per axis. The op name is carried into the
// DimensionError raised for incompatible shapes.
func BroadcastShapes(op string, a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)

	for i := 0; i < n; i++ {
		aDim, bDim := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			aDim = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bDim = b[j]
		}

		switch {
		case aDim == bDim, bDim == 1:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
		default:
			return nil, &DimensionError{Op: op, Expected: a.Clone(), Actual: b.Clone()}
		}
	}
	return result, nil
}
