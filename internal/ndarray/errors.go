package ndarray

import "fmt"

// DimensionError reports a shape or rank mismatch between what an operation
// requires and what it was given.
type DimensionError struct {
	Op       string
	Expected Shape
	Actual   Shape
	Reason   string
}

func (e *DimensionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: incompatible shapes %v and %v", e.Op, e.Expected, e.Actual)
}

// InvalidParameterError reports a parameter with the wrong type or value.
type InvalidParameterError struct {
	Param    string
	Expected string
	Actual   any
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: expected %s, got %v", e.Param, e.Expected, e.Actual)
}

// IndexOutOfBoundsError reports an index outside [0, Length) on a given axis,
// after negative-index resolution.
type IndexOutOfBoundsError struct {
	Index  int
	Axis   int
	Length int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for axis %d (size %d)", e.Index, e.Axis, e.Length)
}

// MathematicalError reports a numeric domain violation: square root of a
// negative, logarithm of a non-positive, division by zero. The engine raises
// these instead of storing NaN or Infinity.
type MathematicalError struct {
	Op       string
	Operands []float64
}

func (e *MathematicalError) Error() string {
	if len(e.Operands) == 0 {
		return fmt.Sprintf("%s: domain violation", e.Op)
	}
	return fmt.Sprintf("%s: domain violation for operand(s) %v", e.Op, e.Operands)
}

// EmptyArrayError reports a reduction over zero elements.
type EmptyArrayError struct {
	Op string
}

func (e *EmptyArrayError) Error() string {
	return fmt.Sprintf("%s: empty array", e.Op)
}

// NumericalOverflowError reports a value outside the representable range of
// the destination kind.
type NumericalOverflowError struct {
	Op    string
	Value float64
	DType DType
}

func (e *NumericalOverflowError) Error() string {
	return fmt.Sprintf("%s: value %v overflows %s", e.Op, e.Value, e.DType)
}
