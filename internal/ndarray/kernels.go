package ndarray

import "math"

// broadcastStrides maps an operand's actual strides onto the broadcast
// result shape: axes padded on the left and axes of size 1 stretched to a
// larger dimension get a logical stride of 0, so the same element is reread
// instead of physically duplicated.
func broadcastStrides(shape Shape, strides []int, out Shape) []int {
	result := make([]int, len(out))
	pad := len(out) - len(shape)
	for i := range out {
		j := i - pad
		switch {
		case j < 0:
			result[i] = 0
		case shape[j] == 1 && out[i] > 1:
			result[i] = 0
		default:
			result[i] = strides[j]
		}
	}
	return result
}

// applyUnary materializes f applied to every element of a into a fresh array
// of the same shape and kind. f reports domain violations as errors; results
// are range-checked before the store, so neither NaN nor Infinity ever
// reaches a buffer.
func applyUnary(op string, a *NDArray, f func(x float64) (float64, error)) (*NDArray, error) {
	out := newArray(a.shape, a.buf.dtype)
	if out.Size() == 0 {
		return out, nil
	}
	idx := make([]int, a.NDim())
	dst := 0
	for {
		v, err := f(a.buf.load(a.flatAt(idx)))
		if err != nil {
			return nil, err
		}
		if err := checkResult(op, v, out.buf.dtype); err != nil {
			return nil, err
		}
		out.buf.store(dst, v)
		dst++
		if !increment(idx, a.shape) {
			break
		}
	}
	return out, nil
}

// applyBinary broadcasts a against b and materializes f over the pair into a
// fresh array. outDType overrides the promoted result kind when
// non-negative; comparisons use it to produce Uint8 truth arrays.
func applyBinary(op string, a, b *NDArray, outDType DType, f func(x, y float64) (float64, error)) (*NDArray, error) {
	outShape, err := BroadcastShapes(op, a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	dtype := outDType
	if dtype < 0 {
		dtype = Promote(a.buf.dtype, b.buf.dtype)
	}

	out := &NDArray{
		buf:     newBuffer(outShape.NumElements(), dtype),
		shape:   outShape,
		strides: outShape.ComputeStrides(),
	}
	if out.Size() == 0 {
		return out, nil
	}

	sa := broadcastStrides(a.shape, a.strides, outShape)
	sb := broadcastStrides(b.shape, b.strides, outShape)
	idx := make([]int, len(outShape))
	dst := 0
	for {
		pa, pb := a.offset, b.offset
		for i, ix := range idx {
			pa += ix * sa[i]
			pb += ix * sb[i]
		}
		v, err := f(a.buf.load(pa), b.buf.load(pb))
		if err != nil {
			return nil, err
		}
		if err := checkResult(op, v, dtype); err != nil {
			return nil, err
		}
		out.buf.store(dst, v)
		dst++
		if !increment(idx, outShape) {
			break
		}
	}
	return out, nil
}

// checkResult rejects non-finite and out-of-range kernel results. A NaN here
// is a domain violation the kernel did not pre-check; an Infinity or an
// integer out of range is an overflow.
func checkResult(op string, v float64, dt DType) error {
	if math.IsNaN(v) {
		return &MathematicalError{Op: op, Operands: []float64{v}}
	}
	if math.IsInf(v, 0) {
		return &NumericalOverflowError{Op: op, Value: v, DType: dt}
	}
	lo, hi := dt.bounds()
	if v < lo || v > hi {
		return &NumericalOverflowError{Op: op, Value: v, DType: dt}
	}
	return nil
}

// scalarOperand wraps a scalar as a 0-dimensional array of the given kind so
// that scalar forms reuse the broadcasting path.
func scalarOperand(op string, v float64, dtype DType) (*NDArray, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &InvalidParameterError{Param: "scalar", Expected: "finite number", Actual: v}
	}
	a := newArray(Shape{}, dtype)
	if err := checkValue(op, v, dtype); err != nil {
		return nil, err
	}
	a.buf.store(0, v)
	return a, nil
}
