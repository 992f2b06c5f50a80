package ndarray

import "math"

// Reductions over all elements of a view, honoring strides, so they are
// correct on transposed and sliced views. Reducing an array of zero elements
// raises an EmptyArrayError; there is deliberately no silent identity value.

// Sum returns the sum of all elements.
func Sum(a *NDArray) (float64, error) {
	return reduceAll("sum", a, 0, func(acc, x float64) float64 { return acc + x })
}

// Prod returns the product of all elements.
func Prod(a *NDArray) (float64, error) {
	return reduceAll("prod", a, 1, func(acc, x float64) float64 { return acc * x })
}

// Min returns the smallest element.
func Min(a *NDArray) (float64, error) {
	return reduceAll("min", a, math.Inf(1), math.Min)
}

// Max returns the largest element.
func Max(a *NDArray) (float64, error) {
	return reduceAll("max", a, math.Inf(-1), math.Max)
}

// Mean returns the arithmetic mean of all elements.
func Mean(a *NDArray) (float64, error) {
	sum, err := reduceAll("mean", a, 0, func(acc, x float64) float64 { return acc + x })
	if err != nil {
		return 0, err
	}
	return sum / float64(a.Size()), nil
}

// Std returns the population standard deviation of all elements.
func Std(a *NDArray) (float64, error) {
	mean, err := Mean(a)
	if err != nil {
		return 0, err
	}
	ss, err := reduceAll("std", a, 0, func(acc, x float64) float64 {
		d := x - mean
		return acc + d*d
	})
	if err != nil {
		return 0, err
	}
	return math.Sqrt(ss / float64(a.Size())), nil
}

// ArgMin returns the row-major flat position of the smallest element.
// Ties resolve to the earliest position.
func ArgMin(a *NDArray) (int, error) {
	return argReduce("argmin", a, func(x, best float64) bool { return x < best })
}

// ArgMax returns the row-major flat position of the largest element.
// Ties resolve to the earliest position.
func ArgMax(a *NDArray) (int, error) {
	return argReduce("argmax", a, func(x, best float64) bool { return x > best })
}

func reduceAll(op string, a *NDArray, init float64, f func(acc, x float64) float64) (float64, error) {
	if a.Size() == 0 {
		return 0, &EmptyArrayError{Op: op}
	}
	acc := init
	idx := make([]int, a.NDim())
	for {
		acc = f(acc, a.buf.load(a.flatAt(idx)))
		if !increment(idx, a.shape) {
			break
		}
	}
	return acc, nil
}

func argReduce(op string, a *NDArray, better func(x, best float64) bool) (int, error) {
	if a.Size() == 0 {
		return 0, &EmptyArrayError{Op: op}
	}
	idx := make([]int, a.NDim())
	best := a.buf.load(a.flatAt(idx))
	bestPos, pos := 0, 0
	for increment(idx, a.shape) {
		pos++
		if v := a.buf.load(a.flatAt(idx)); better(v, best) {
			best = v
			bestPos = pos
		}
	}
	return bestPos, nil
}

// SumAxis sums along one axis, returning an array whose shape is the input
// shape with that axis removed. A negative axis addresses from the end.
func SumAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis("sum", a, axis, 0, func(acc, x float64) float64 { return acc + x }, nil)
}

// MeanAxis averages along one axis.
func MeanAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis("mean", a, axis, 0, func(acc, x float64) float64 { return acc + x },
		func(acc float64, n int) float64 { return acc / float64(n) })
}

func reduceAxis(op string, a *NDArray, axis int, init float64, f func(acc, x float64) float64, finish func(acc float64, n int) float64) (*NDArray, error) {
	ax := axis
	if ax < 0 {
		ax += a.NDim()
	}
	if ax < 0 || ax >= a.NDim() {
		return nil, &InvalidParameterError{
			Param:    "axis",
			Expected: "axis index within the array's rank",
			Actual:   axis,
		}
	}
	n := a.shape[ax]
	if n == 0 {
		return nil, &EmptyArrayError{Op: op}
	}

	outShape := make(Shape, 0, a.NDim()-1)
	for i, dim := range a.shape {
		if i != ax {
			outShape = append(outShape, dim)
		}
	}
	out := newArray(outShape, a.buf.dtype)
	if out.Size() == 0 {
		return out, nil
	}

	idx := make([]int, len(outShape))
	src := make([]int, a.NDim())
	dst := 0
	for {
		for i, v := range idx {
			j := i
			if i >= ax {
				j = i + 1
			}
			src[j] = v
		}
		acc := init
		for k := 0; k < n; k++ {
			src[ax] = k
			acc = f(acc, a.buf.load(a.flatAt(src)))
		}
		if finish != nil {
			acc = finish(acc, n)
		}
		if err := checkResult(op, acc, out.buf.dtype); err != nil {
			return nil, err
		}
		out.buf.store(dst, acc)
		dst++
		if !increment(idx, outShape) {
			break
		}
	}
	return out, nil
}
