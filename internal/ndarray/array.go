package ndarray

import (
	"fmt"
	"math"

	"github.com/numgo-ml/numgo/internal/parallel"
)

// NDArray is a strided view over a storage buffer: shape, per-axis element
// strides (possibly negative), a base offset, and a mutability flag. Many
// views may alias one buffer; zero-copy transformations produce new view
// metadata over the same buffer, copying transformations allocate a new one.
type NDArray struct {
	buf      *buffer
	shape    Shape
	strides  []int
	offset   int
	readonly bool
}

// newArray allocates a fresh contiguous, zero-filled array.
// The shape must already be validated.
func newArray(shape Shape, dtype DType) *NDArray {
	return &NDArray{
		buf:     newBuffer(shape.NumElements(), dtype),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// Shape returns the array's shape. The caller must not modify it.
func (a *NDArray) Shape() Shape {
	return a.shape
}

// Strides returns the array's per-axis element strides.
// The caller must not modify it.
func (a *NDArray) Strides() []int {
	return a.strides
}

// DType returns the element kind of the underlying buffer.
func (a *NDArray) DType() DType {
	return a.buf.dtype
}

// NDim returns the number of axes.
func (a *NDArray) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *NDArray) Size() int {
	return a.shape.NumElements()
}

// ReadOnly reports whether mutating operations on this view fail.
func (a *NDArray) ReadOnly() bool {
	return a.readonly
}

// AsReadOnly returns a view over the same buffer with writes disabled.
// The guard is per view: other writable views over the buffer still mutate it.
func (a *NDArray) AsReadOnly() *NDArray {
	v := a.View()
	v.readonly = true
	return v
}

// View returns an identity zero-copy view: same buffer, shape, strides,
// offset and mutability.
func (a *NDArray) View() *NDArray {
	return &NDArray{
		buf:      a.buf,
		shape:    a.shape.Clone(),
		strides:  append([]int(nil), a.strides...),
		offset:   a.offset,
		readonly: a.readonly,
	}
}

// SharesDataWith reports whether both views reference the same storage
// buffer, regardless of shape or overlap.
func (a *NDArray) SharesDataWith(other *NDArray) bool {
	return other != nil && a.buf == other.buf
}

// String returns a short description of the view.
func (a *NDArray) String() string {
	return fmt.Sprintf("NDArray[%s]%v", a.buf.dtype, a.shape)
}

// flatAt maps a normalized logical index tuple to a buffer cell.
// Indices must already be in range.
func (a *NDArray) flatAt(indices []int) int {
	pos := a.offset
	for i, idx := range indices {
		pos += idx * a.strides[i]
	}
	return pos
}

// resolveIndices normalizes a user-supplied index tuple: arity must equal
// NDim, negative indices address from the end of their axis, and each
// resolved index must fall inside [0, dim).
func (a *NDArray) resolveIndices(op string, indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, &DimensionError{
			Op:       op,
			Expected: a.shape.Clone(),
			Reason:   fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)),
		}
	}
	pos := a.offset
	for i, idx := range indices {
		dim := a.shape[i]
		resolved := idx
		if resolved < 0 {
			resolved += dim
		}
		if resolved < 0 || resolved >= dim {
			return 0, &IndexOutOfBoundsError{Index: idx, Axis: i, Length: dim}
		}
		pos += resolved * a.strides[i]
	}
	return pos, nil
}

// At returns the element at the given indices. Negative indices address from
// the end of their axis.
func (a *NDArray) At(indices ...int) (float64, error) {
	pos, err := a.resolveIndices("get", indices)
	if err != nil {
		return 0, err
	}
	return a.buf.load(pos), nil
}

// SetAt writes value at the given indices. The value must be finite and
// representable in the array's kind, and the view must be writable.
func (a *NDArray) SetAt(value float64, indices ...int) error {
	if a.readonly {
		return &InvalidParameterError{Param: "array", Expected: "writable view", Actual: "read-only view"}
	}
	if err := checkValue("set", value, a.buf.dtype); err != nil {
		return err
	}
	pos, err := a.resolveIndices("set", indices)
	if err != nil {
		return err
	}
	a.buf.store(pos, value)
	return nil
}

// checkValue validates that v may be stored into kind dt: finite, and within
// the kind's representable range.
func checkValue(op string, v float64, dt DType) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParameterError{Param: "value", Expected: "finite number", Actual: v}
	}
	lo, hi := dt.bounds()
	if v < lo || v > hi {
		return &NumericalOverflowError{Op: op, Value: v, DType: dt}
	}
	return nil
}

// increment advances a row-major odometer over shape, returning false once
// the counter wraps past the final position. An empty shape wraps
// immediately, so a loop body still runs exactly once for scalars.
func increment(idx []int, shape Shape) bool {
	for ax := len(idx) - 1; ax >= 0; ax-- {
		idx[ax]++
		if idx[ax] < shape[ax] {
			return true
		}
		idx[ax] = 0
	}
	return false
}

// IsContiguous reports whether the view walks its buffer in row-major order
// with no gaps, the precondition for reinterpreting it under a new shape
// without copying. Axes of size 0 or 1 impose no constraint.
func (a *NDArray) IsContiguous() bool {
	want := a.shape.ComputeStrides()
	for i := range want {
		if a.shape[i] > 1 && a.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// Clone deep-copies the view into a new buffer with standard contiguous
// strides. The copy is always writable.
func (a *NDArray) Clone() *NDArray {
	out := newArray(a.shape, a.buf.dtype)
	if a.Size() == 0 {
		return out
	}
	idx := make([]int, a.NDim())
	dst := 0
	for {
		out.buf.store(dst, a.buf.load(a.flatAt(idx)))
		dst++
		if !increment(idx, a.shape) {
			break
		}
	}
	return out
}

// ToSlice flattens the view into a fresh []float64 in row-major order.
// Together with Shape and DType this is the interchange representation
// consumed by layers outside the engine.
func (a *NDArray) ToSlice() []float64 {
	out := make([]float64, 0, a.Size())
	if a.Size() == 0 {
		return out
	}
	idx := make([]int, a.NDim())
	for {
		out = append(out, a.buf.load(a.flatAt(idx)))
		if !increment(idx, a.shape) {
			break
		}
	}
	return out
}

// ToNested exports the view as nested slices mirroring its shape: a float64
// for a 0-dimensional view, []float64 for one axis, []any of sub-trees above
// that.
func (a *NDArray) ToNested() any {
	return a.nested(make([]int, 0, a.NDim()))
}

func (a *NDArray) nested(prefix []int) any {
	switch rest := a.NDim() - len(prefix); rest {
	case 0:
		return a.buf.load(a.flatAt(prefix))
	case 1:
		row := make([]float64, a.shape[len(prefix)])
		for i := range row {
			row[i] = a.buf.load(a.flatAt(append(prefix, i)))
		}
		return row
	default:
		out := make([]any, a.shape[len(prefix)])
		for i := range out {
			out[i] = a.nested(append(prefix, i))
		}
		return out
	}
}

// Reshape returns a view with the given shape and freshly computed row-major
// strides. The element count must be preserved. A non-contiguous view is
// materialized into a contiguous copy first, so element order is always
// row-major order of the current view, never a silent reinterpretation of
// the buffer.
func (a *NDArray) Reshape(dims ...int) (*NDArray, error) {
	newShape := Shape(dims)
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != a.Size() {
		return nil, &DimensionError{
			Op:       "reshape",
			Expected: a.shape.Clone(),
			Actual:   newShape.Clone(),
			Reason:   fmt.Sprintf("cannot reshape %d elements into shape %v", a.Size(), newShape),
		}
	}
	src := a
	if !a.IsContiguous() {
		src = a.Clone()
		src.readonly = a.readonly
	}
	return &NDArray{
		buf:      src.buf,
		shape:    newShape.Clone(),
		strides:  newShape.ComputeStrides(),
		offset:   src.offset,
		readonly: src.readonly,
	}, nil
}

// Transpose returns a view permuting shape and strides by axes, which must
// use each of 0..NDim-1 exactly once. With no axes given the order of all
// axes is reversed.
func (a *NDArray) Transpose(axes ...int) (*NDArray, error) {
	n := a.NDim()
	if len(axes) == 0 {
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	if len(axes) != n {
		return nil, &InvalidParameterError{
			Param:    "axes",
			Expected: fmt.Sprintf("permutation of length %d", n),
			Actual:   axes,
		}
	}
	seen := make([]bool, n)
	for _, ax := range axes {
		if ax < 0 || ax >= n || seen[ax] {
			return nil, &InvalidParameterError{
				Param:    "axes",
				Expected: fmt.Sprintf("permutation of 0..%d", n-1),
				Actual:   axes,
			}
		}
		seen[ax] = true
	}

	shape := make(Shape, n)
	strides := make([]int, n)
	for i, ax := range axes {
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}
	return &NDArray{
		buf:      a.buf,
		shape:    shape,
		strides:  strides,
		offset:   a.offset,
		readonly: a.readonly,
	}, nil
}

// T reverses all axes, the usual shorthand for the matrix transpose.
// Transpose without explicit axes accepts any rank, so T cannot fail.
func (a *NDArray) T() *NDArray {
	t, _ := a.Transpose()
	return t
}

// Fill writes value into every element of the view.
func (a *NDArray) Fill(value float64) error {
	if a.readonly {
		return &InvalidParameterError{Param: "array", Expected: "writable view", Actual: "read-only view"}
	}
	if err := checkValue("fill", value, a.buf.dtype); err != nil {
		return err
	}
	if a.Size() == 0 {
		return nil
	}
	if a.IsContiguous() {
		parallel.For(a.Size(), func(i int) {
			a.buf.store(a.offset+i, value)
		}, parallel.DefaultConfig())
		return nil
	}
	idx := make([]int, a.NDim())
	for {
		a.buf.store(a.flatAt(idx), value)
		if !increment(idx, a.shape) {
			break
		}
	}
	return nil
}
