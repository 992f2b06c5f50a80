package ndarray

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/numgo-ml/numgo/internal/parallel"
)

// Dot computes the matrix product of two views into a new buffer:
// 1-D by 1-D is the inner product (a 0-dimensional result), 2-D by 2-D the
// matrix-matrix product, 2-D by 1-D and 1-D by 2-D the matrix-vector
// products. Contiguous Float64 matrix pairs go through BLAS; everything else
// takes the generic strided path.
func Dot(a, b *NDArray) (*NDArray, error) {
	switch {
	case a.NDim() == 1 && b.NDim() == 1:
		return dotVecVec(a, b)
	case a.NDim() == 2 && b.NDim() == 2:
		return dotMatMat(a, b)
	case a.NDim() == 2 && b.NDim() == 1:
		return dotMatVec(a, b)
	case a.NDim() == 1 && b.NDim() == 2:
		return dotVecMat(a, b)
	default:
		return nil, &DimensionError{
			Op:       "dot",
			Expected: a.shape.Clone(),
			Actual:   b.shape.Clone(),
			Reason:   fmt.Sprintf("dot requires 1- or 2-dimensional operands, got %d and %d axes", a.NDim(), b.NDim()),
		}
	}
}

func dotVecVec(a, b *NDArray) (*NDArray, error) {
	if a.shape[0] != b.shape[0] {
		return nil, &DimensionError{Op: "dot", Expected: a.shape.Clone(), Actual: b.shape.Clone()}
	}
	sum := 0.0
	for i := 0; i < a.shape[0]; i++ {
		sum += a.buf.load(a.offset+i*a.strides[0]) * b.buf.load(b.offset+i*b.strides[0])
	}
	out := newArray(Shape{}, Promote(a.buf.dtype, b.buf.dtype))
	if err := checkResult("dot", sum, out.buf.dtype); err != nil {
		return nil, err
	}
	out.buf.store(0, sum)
	return out, nil
}

func dotMatMat(a, b *NDArray) (*NDArray, error) {
	m, k := a.shape[0], a.shape[1]
	k2, n := b.shape[0], b.shape[1]
	if k != k2 {
		return nil, &DimensionError{Op: "dot", Expected: a.shape.Clone(), Actual: b.shape.Clone()}
	}
	dtype := Promote(a.buf.dtype, b.buf.dtype)
	out := newArray(Shape{m, n}, dtype)
	if m == 0 || n == 0 {
		return out, nil
	}

	if dtype == Float64 && a.buf.dtype == Float64 && b.buf.dtype == Float64 &&
		a.IsContiguous() && b.IsContiguous() && k > 0 {
		ga := blas64.General{Rows: m, Cols: k, Stride: k, Data: a.buf.asFloat64()[a.offset : a.offset+m*k]}
		gb := blas64.General{Rows: k, Cols: n, Stride: n, Data: b.buf.asFloat64()[b.offset : b.offset+k*n]}
		gc := blas64.General{Rows: m, Cols: n, Stride: n, Data: out.buf.asFloat64()}
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)
		// BLAS accumulates without range checks; overflow must surface as an
		// error here just as it does on the strided path.
		for _, v := range gc.Data {
			if err := checkResult("dot", v, Float64); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	// Every output cell is independent, so the strided path fans out over
	// workers.
	var mu sync.Mutex
	var firstErr error
	parallel.ForRows(m, n, func(i, j int) {
		sum := 0.0
		for p := 0; p < k; p++ {
			av := a.buf.load(a.offset + i*a.strides[0] + p*a.strides[1])
			bv := b.buf.load(b.offset + p*b.strides[0] + j*b.strides[1])
			sum += av * bv
		}
		if err := checkResult("dot", sum, dtype); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		out.buf.store(i*n+j, sum)
	}, parallel.DefaultConfig())
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func dotMatVec(a, b *NDArray) (*NDArray, error) {
	m, k := a.shape[0], a.shape[1]
	if k != b.shape[0] {
		return nil, &DimensionError{Op: "dot", Expected: a.shape.Clone(), Actual: b.shape.Clone()}
	}
	dtype := Promote(a.buf.dtype, b.buf.dtype)
	out := newArray(Shape{m}, dtype)
	for i := 0; i < m; i++ {
		sum := 0.0
		for p := 0; p < k; p++ {
			sum += a.buf.load(a.offset+i*a.strides[0]+p*a.strides[1]) * b.buf.load(b.offset+p*b.strides[0])
		}
		if err := checkResult("dot", sum, dtype); err != nil {
			return nil, err
		}
		out.buf.store(i, sum)
	}
	return out, nil
}

func dotVecMat(a, b *NDArray) (*NDArray, error) {
	k, n := b.shape[0], b.shape[1]
	if a.shape[0] != k {
		return nil, &DimensionError{Op: "dot", Expected: a.shape.Clone(), Actual: b.shape.Clone()}
	}
	dtype := Promote(a.buf.dtype, b.buf.dtype)
	out := newArray(Shape{n}, dtype)
	for j := 0; j < n; j++ {
		sum := 0.0
		for p := 0; p < k; p++ {
			sum += a.buf.load(a.offset+p*a.strides[0]) * b.buf.load(b.offset+p*b.strides[0]+j*b.strides[1])
		}
		if err := checkResult("dot", sum, dtype); err != nil {
			return nil, err
		}
		out.buf.store(j, sum)
	}
	return out, nil
}
