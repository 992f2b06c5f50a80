package ndarray

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
)

// Zeros creates an array filled with zeros.
func Zeros(shape Shape, dtype DType) (*NDArray, error) {
	if !dtype.valid() {
		return nil, &InvalidParameterError{Param: "dtype", Expected: "one of the eight element kinds", Actual: dtype}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newArray(shape, dtype), nil
}

// Ones creates an array filled with ones.
func Ones(shape Shape, dtype DType) (*NDArray, error) {
	return Full(shape, 1, dtype)
}

// Full creates an array filled with value, which must be finite and
// representable in dtype.
func Full(shape Shape, value float64, dtype DType) (*NDArray, error) {
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	if err := checkValue("full", value, dtype); err != nil {
		return nil, err
	}
	for i := 0; i < a.buf.n; i++ {
		a.buf.store(i, value)
	}
	return a, nil
}

// Eye creates an n-by-n identity matrix.
func Eye(n int, dtype DType) (*NDArray, error) {
	if n <= 0 {
		return nil, &InvalidParameterError{Param: "n", Expected: "positive integer", Actual: n}
	}
	a, err := Zeros(Shape{n, n}, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		a.buf.store(i*n+i, 1)
	}
	return a, nil
}

// Arange creates a 1-D array of values start, start+step, ... up to but not
// including stop. The count is max(0, ceil((stop-start)/step)), so an empty
// range yields a size-0 array rather than an error.
func Arange(start, stop, step float64, dtype DType) (*NDArray, error) {
	for name, v := range map[string]float64{"start": start, "stop": stop, "step": step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidParameterError{Param: name, Expected: "finite number", Actual: v}
		}
	}
	if step == 0 {
		return nil, &InvalidParameterError{Param: "step", Expected: "non-zero step", Actual: step}
	}
	count := int(math.Ceil((stop - start) / step))
	if count < 0 {
		count = 0
	}
	a, err := Zeros(Shape{count}, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		v := start + float64(i)*step
		if err := checkValue("arange", v, dtype); err != nil {
			return nil, err
		}
		a.buf.store(i, v)
	}
	return a, nil
}

// Linspace creates a 1-D array of count values evenly spaced from start to
// stop inclusive. count must be at least 1; with count 1 the single value is
// start.
func Linspace(start, stop float64, count int, dtype DType) (*NDArray, error) {
	for name, v := range map[string]float64{"start": start, "stop": stop} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidParameterError{Param: name, Expected: "finite number", Actual: v}
		}
	}
	if count < 1 {
		return nil, &InvalidParameterError{Param: "count", Expected: "integer >= 1", Actual: count}
	}
	a, err := Zeros(Shape{count}, dtype)
	if err != nil {
		return nil, err
	}
	if count == 1 {
		a.buf.store(0, start)
		return a, nil
	}
	step := (stop - start) / float64(count-1)
	for i := 0; i < count; i++ {
		v := start + float64(i)*step
		if err := checkValue("linspace", v, dtype); err != nil {
			return nil, err
		}
		a.buf.store(i, v)
	}
	return a, nil
}

// FromSlice creates an array from a flat row-major slice of values.
// The slice length must match the shape's element count and every value must
// be finite and representable in dtype.
func FromSlice(data []float64, shape Shape, dtype DType) (*NDArray, error) {
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(data) != a.Size() {
		return nil, &DimensionError{
			Op:       "fromSlice",
			Expected: shape.Clone(),
			Reason:   fmt.Sprintf("shape %v requires %d elements, got %d", shape, a.Size(), len(data)),
		}
	}
	for i, v := range data {
		if err := checkValue("fromSlice", v, dtype); err != nil {
			return nil, err
		}
		a.buf.store(i, v)
	}
	return a, nil
}

// FromNested creates an array from a rectangular nested slice of numbers,
// inferring the shape from the nesting. Accepts any combination of slice
// kinds via reflection, e.g. [][]float64, []int32 or []any with numeric
// leaves. Ragged nesting and non-finite leaves are rejected. For an
// immutable array, chain with AsReadOnly:
//
//	a, err := FromNested(rows, Float64)
//	frozen := a.AsReadOnly()
func FromNested(nested any, dtype DType) (*NDArray, error) {
	shape, err := nestedShape(reflect.ValueOf(nested), 0)
	if err != nil {
		return nil, err
	}
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	flat := make([]float64, 0, a.Size())
	flat, err = flattenNested(reflect.ValueOf(nested), shape, 0, flat)
	if err != nil {
		return nil, err
	}
	for i, v := range flat {
		if err := checkValue("fromNested", v, dtype); err != nil {
			return nil, err
		}
		a.buf.store(i, v)
	}
	return a, nil
}

// Rand creates an array of uniform random values in [0, 1).
// Only float kinds are supported.
func Rand(shape Shape, dtype DType) (*NDArray, error) {
	if !dtype.IsFloat() {
		return nil, &InvalidParameterError{Param: "dtype", Expected: "float kind", Actual: dtype}
	}
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.buf.n; i++ {
		a.buf.store(i, rand.Float64()) //nolint:gosec // statistical use, not cryptographic
	}
	return a, nil
}

// Randn creates an array of standard normal random values using the
// Box-Muller transform. Only float kinds are supported.
func Randn(shape Shape, dtype DType) (*NDArray, error) {
	if !dtype.IsFloat() {
		return nil, &InvalidParameterError{Param: "dtype", Expected: "float kind", Actual: dtype}
	}
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.buf.n; i += 2 {
		u1 := rand.Float64() //nolint:gosec // statistical use, not cryptographic
		u2 := rand.Float64() //nolint:gosec // statistical use, not cryptographic
		r := math.Sqrt(-2.0 * math.Log(1-u1))
		a.buf.store(i, r*math.Cos(2.0*math.Pi*u2))
		if i+1 < a.buf.n {
			a.buf.store(i+1, r*math.Sin(2.0*math.Pi*u2))
		}
	}
	return a, nil
}

// nestedShape walks the first spine of a nested value to infer its shape.
func nestedShape(v reflect.Value, depth int) (Shape, error) {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return Shape{0}, nil
		}
		inner, err := nestedShape(v.Index(0), depth+1)
		if err != nil {
			return nil, err
		}
		return append(Shape{v.Len()}, inner...), nil
	default:
		if _, err := numericLeaf(v); err != nil {
			return nil, err
		}
		return Shape{}, nil
	}
}

// flattenNested appends the leaves of v in row-major order, verifying that
// every level matches the inferred shape (rectangularity).
func flattenNested(v reflect.Value, shape Shape, depth int, out []float64) ([]float64, error) {
	for v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if depth == len(shape) {
		leaf, err := numericLeaf(v)
		if err != nil {
			return nil, err
		}
		return append(out, leaf), nil
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, &DimensionError{
			Op:     "fromNested",
			Reason: "ragged nesting: scalar found where a sequence was expected",
		}
	}
	if v.Len() != shape[depth] {
		return nil, &DimensionError{
			Op:     "fromNested",
			Reason: fmt.Sprintf("ragged nesting: expected %d entries at depth %d, got %d", shape[depth], depth, v.Len()),
		}
	}
	var err error
	for i := 0; i < v.Len(); i++ {
		out, err = flattenNested(v.Index(i), shape, depth+1, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// numericLeaf converts a scalar reflect value to float64.
func numericLeaf(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	default:
		return 0, &InvalidParameterError{
			Param:    "nested",
			Expected: "numeric element",
			Actual:   v.Kind().String(),
		}
	}
}
