package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an explicit per-axis slice specification. A zero Step means the
// default step of 1; an explicit zero step is impossible to express with this
// type, which keeps the "zero step is rejected" rule where it belongs, in the
// textual and triple forms.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// Picks is an explicit gather specification: the listed indices are selected
// along the axis, in order, into new storage. Use it when an index list of
// length 2 or 3 would otherwise be detected as a range triple.
type Picks []int

// specKind discriminates the five per-axis specification forms.
type specKind int

const (
	specIndex specKind = iota
	specRange
	specGather
	specMask
)

// parsedRange is a range triple with per-component presence, so that
// defaults can be resolved against the axis length and step sign later.
type parsedRange struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

type axisSpec struct {
	kind  specKind
	index int
	r     parsedRange
	picks []int
	mask  []bool
}

// classify detects which of the five specification forms arg represents.
// Detection is unambiguous: integers are single indices, strings are textual
// slices, all-integer arrays of length 2 or 3 are range triples, all-boolean
// arrays are masks, all-integer arrays of any other length are gathers.
// Mixed-type arrays and non-integer numbers are rejected.
func classify(arg any, axis int) (axisSpec, error) {
	switch v := arg.(type) {
	case int:
		return axisSpec{kind: specIndex, index: v}, nil
	case string:
		r, err := parseSliceExpr(v)
		if err != nil {
			return axisSpec{}, err
		}
		return axisSpec{kind: specRange, r: r}, nil
	case Range:
		r := parsedRange{start: v.Start, stop: v.Stop, step: v.Step, hasStart: true, hasStop: true, hasStep: v.Step != 0}
		return axisSpec{kind: specRange, r: r}, nil
	case Picks:
		return axisSpec{kind: specGather, picks: v}, nil
	case []int:
		return classifyInts(v)
	case []bool:
		return axisSpec{kind: specMask, mask: v}, nil
	case []any:
		return classifyMixed(v, axis)
	default:
		return axisSpec{}, &InvalidParameterError{
			Param:    fmt.Sprintf("spec[%d]", axis),
			Expected: "integer, range, slice expression, index array or boolean mask",
			Actual:   fmt.Sprintf("%T", arg),
		}
	}
}

// classifyInts applies the length rule for homogeneous integer arrays:
// length 2 or 3 is a range triple, anything else is a gather.
func classifyInts(v []int) (axisSpec, error) {
	switch len(v) {
	case 2:
		return axisSpec{kind: specRange, r: parsedRange{start: v[0], stop: v[1], hasStart: true, hasStop: true}}, nil
	case 3:
		if v[2] == 0 {
			return axisSpec{}, &InvalidParameterError{Param: "step", Expected: "non-zero step", Actual: 0}
		}
		return axisSpec{kind: specRange, r: parsedRange{start: v[0], stop: v[1], step: v[2], hasStart: true, hasStop: true, hasStep: true}}, nil
	default:
		return axisSpec{kind: specGather, picks: append([]int(nil), v...)}, nil
	}
}

// classifyMixed handles untyped []any arguments: all elements must be
// integers, or all booleans.
func classifyMixed(v []any, axis int) (axisSpec, error) {
	ints := make([]int, 0, len(v))
	bools := make([]bool, 0, len(v))
	for _, e := range v {
		switch x := e.(type) {
		case int:
			ints = append(ints, x)
		case bool:
			bools = append(bools, x)
		default:
			return axisSpec{}, &InvalidParameterError{
				Param:    fmt.Sprintf("spec[%d]", axis),
				Expected: "homogeneous integer or boolean array",
				Actual:   fmt.Sprintf("%T element", e),
			}
		}
	}
	if len(ints) > 0 && len(bools) > 0 {
		return axisSpec{}, &InvalidParameterError{
			Param:    fmt.Sprintf("spec[%d]", axis),
			Expected: "homogeneous integer or boolean array",
			Actual:   "mixed element types",
		}
	}
	if len(bools) > 0 || len(v) == 0 {
		return axisSpec{kind: specMask, mask: bools}, nil
	}
	return classifyInts(ints)
}

// parseSliceExpr parses the textual slice grammar "start:stop" and
// "start:stop:step". Empty components mean "default", resolved against the
// axis length once the step sign is known.
func parseSliceExpr(expr string) (parsedRange, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return parsedRange{}, &InvalidParameterError{
			Param:    "expr",
			Expected: `slice expression "start:stop" or "start:stop:step"`,
			Actual:   expr,
		}
	}
	var r parsedRange
	var err error
	if r.start, r.hasStart, err = parseComponent(parts[0], expr); err != nil {
		return parsedRange{}, err
	}
	if r.stop, r.hasStop, err = parseComponent(parts[1], expr); err != nil {
		return parsedRange{}, err
	}
	if len(parts) == 3 {
		if r.step, r.hasStep, err = parseComponent(parts[2], expr); err != nil {
			return parsedRange{}, err
		}
		if r.hasStep && r.step == 0 {
			return parsedRange{}, &InvalidParameterError{Param: "step", Expected: "non-zero step", Actual: expr}
		}
	}
	return r, nil
}

func parseComponent(s, expr string) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, &InvalidParameterError{
			Param:    "expr",
			Expected: "integer or empty slice component",
			Actual:   expr,
		}
	}
	return v, true, nil
}

// normalize resolves a parsed range against an axis length, returning the
// first selected index, the step, and the selection count. Negative bounds
// are resolved by adding the axis length; bounds are then clamped rather than
// rejected, so an oversized range degrades to the available elements and an
// inverted one to an empty axis.
func (r parsedRange) normalize(dim int) (start, step, count int) {
	step = 1
	if r.hasStep {
		step = r.step
	}
	if dim == 0 {
		return 0, step, 0
	}

	if step > 0 {
		start = 0
		if r.hasStart {
			start = r.start
			if start < 0 {
				start += dim
			}
		}
		start = clamp(start, 0, dim)

		stop := dim
		if r.hasStop {
			stop = r.stop
			if stop < 0 {
				stop += dim
			}
		}
		stop = clamp(stop, 0, dim)

		if stop > start {
			count = (stop - start + step - 1) / step
		}
		return start, step, count
	}

	start = dim - 1
	if r.hasStart {
		start = r.start
		if start < 0 {
			start += dim
		}
	}
	start = clamp(start, 0, dim-1)

	// The default stop for a negative step is the -1 sentinel, meaning
	// "through the first element". An explicit negative stop is resolved
	// against the axis length like any other bound.
	stop := -1
	if r.hasStop {
		stop = r.stop
		if stop < 0 {
			stop += dim
		}
		stop = clamp(stop, -1, dim-1)
	}

	if stop < start {
		count = (start - stop - step - 1) / -step
	}
	return start, step, count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseSlice parses a textual slice expression and normalizes it against an
// axis of the given length, returning the resolved range triple. The
// returned Stop is the exclusive bound actually used, which for a negative
// step may be the -1 sentinel.
func ParseSlice(expr string, dim int) (Range, error) {
	if dim < 0 {
		return Range{}, &InvalidParameterError{Param: "dim", Expected: "non-negative axis length", Actual: dim}
	}
	r, err := parseSliceExpr(expr)
	if err != nil {
		return Range{}, err
	}
	start, step, count := r.normalize(dim)
	return Range{Start: start, Stop: start + count*step, Step: step}, nil
}

// Slice selects along the leading axes of the view, one specification per
// axis; missing trailing axes pass through unchanged. Pure index/range
// specifications produce a zero-copy view sharing this view's buffer; any
// gather or mask materializes the selection into new storage, because an
// arbitrary index set cannot generally be expressed as a fixed stride.
func (a *NDArray) Slice(specs ...any) (*NDArray, error) {
	if len(specs) > a.NDim() {
		return nil, &DimensionError{
			Op:       "slice",
			Expected: a.shape.Clone(),
			Reason:   fmt.Sprintf("got %d specifications for %d axes", len(specs), a.NDim()),
		}
	}

	parsed := make([]axisSpec, len(specs))
	copying := false
	for i, s := range specs {
		spec, err := classify(s, i)
		if err != nil {
			return nil, err
		}
		if spec.kind == specGather || spec.kind == specMask {
			copying = true
		}
		parsed[i] = spec
	}

	if copying {
		return a.sliceCopy(parsed)
	}
	return a.sliceView(parsed)
}

// sliceView computes the shape/stride/offset delta of index and range
// specifications without touching element data.
func (a *NDArray) sliceView(parsed []axisSpec) (*NDArray, error) {
	shape := make(Shape, 0, a.NDim())
	strides := make([]int, 0, a.NDim())
	offset := a.offset

	for ax := 0; ax < a.NDim(); ax++ {
		if ax >= len(parsed) {
			shape = append(shape, a.shape[ax])
			strides = append(strides, a.strides[ax])
			continue
		}
		dim := a.shape[ax]
		switch spec := parsed[ax]; spec.kind {
		case specIndex:
			idx := spec.index
			if idx < 0 {
				idx += dim
			}
			if idx < 0 || idx >= dim {
				return nil, &IndexOutOfBoundsError{Index: spec.index, Axis: ax, Length: dim}
			}
			offset += idx * a.strides[ax]
		case specRange:
			start, step, count := spec.r.normalize(dim)
			offset += start * a.strides[ax]
			shape = append(shape, count)
			strides = append(strides, step*a.strides[ax])
		}
	}

	return &NDArray{
		buf:      a.buf,
		shape:    shape,
		strides:  strides,
		offset:   offset,
		readonly: a.readonly,
	}, nil
}

// sliceCopy materializes a selection that includes at least one gather or
// mask axis into a new contiguous buffer.
func (a *NDArray) sliceCopy(parsed []axisSpec) (*NDArray, error) {
	ndim := a.NDim()
	sel := make([][]int, ndim)
	elim := make([]bool, ndim)

	for ax := 0; ax < ndim; ax++ {
		dim := a.shape[ax]
		if ax >= len(parsed) {
			sel[ax] = fullAxis(dim)
			continue
		}
		switch spec := parsed[ax]; spec.kind {
		case specIndex:
			idx := spec.index
			if idx < 0 {
				idx += dim
			}
			if idx < 0 || idx >= dim {
				return nil, &IndexOutOfBoundsError{Index: spec.index, Axis: ax, Length: dim}
			}
			sel[ax] = []int{idx}
			elim[ax] = true
		case specRange:
			start, step, count := spec.r.normalize(dim)
			list := make([]int, count)
			for i := range list {
				list[i] = start + i*step
			}
			sel[ax] = list
		case specGather:
			list := make([]int, len(spec.picks))
			for i, idx := range spec.picks {
				resolved := idx
				if resolved < 0 {
					resolved += dim
				}
				if resolved < 0 || resolved >= dim {
					return nil, &IndexOutOfBoundsError{Index: idx, Axis: ax, Length: dim}
				}
				list[i] = resolved
			}
			sel[ax] = list
		case specMask:
			if len(spec.mask) != dim {
				return nil, &DimensionError{
					Op:       "slice",
					Expected: a.shape.Clone(),
					Reason:   fmt.Sprintf("boolean mask of length %d for axis %d (size %d)", len(spec.mask), ax, dim),
				}
			}
			var list []int
			for i, keep := range spec.mask {
				if keep {
					list = append(list, i)
				}
			}
			sel[ax] = list
		}
	}

	grid := make(Shape, ndim)
	outShape := make(Shape, 0, ndim)
	for ax := 0; ax < ndim; ax++ {
		grid[ax] = len(sel[ax])
		if !elim[ax] {
			outShape = append(outShape, len(sel[ax]))
		}
	}

	out := newArray(outShape, a.buf.dtype)
	if out.Size() == 0 {
		return out, nil
	}

	cnt := make([]int, ndim)
	src := make([]int, ndim)
	dst := 0
	for {
		for ax := range src {
			src[ax] = sel[ax][cnt[ax]]
		}
		out.buf.store(dst, a.buf.load(a.flatAt(src)))
		dst++
		if !increment(cnt, grid) {
			break
		}
	}
	return out, nil
}

// fullAxis returns the identity selection 0..n-1.
func fullAxis(n int) []int {
	list := make([]int, n)
	for i := range list {
		list[i] = i
	}
	return list
}
