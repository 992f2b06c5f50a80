package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBroadcast(t *testing.T) {
	a := mustFromNested(t, [][]float64{{1, 2}, {3, 4}}, Float64)
	b := mustFromNested(t, []float64{10, 20}, Float64)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.True(t, Shape{2, 2}.Equal(sum.Shape()))
	assert.Equal(t, []float64{11, 22, 13, 24}, sum.ToSlice())
	assert.False(t, sum.SharesDataWith(a), "arithmetic results get fresh storage")
}

func TestAddIncompatibleShapes(t *testing.T) {
	a := mustFromNested(t, []float64{1, 2, 3}, Float64)
	b := mustFromNested(t, []float64{1, 2}, Float64)

	_, err := Add(a, b)
	var derr *DimensionError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "add", derr.Op)
}

func TestBroadcastScalarContainer(t *testing.T) {
	a := mustFromNested(t, [][]float64{{1, 2}, {3, 4}}, Float64)
	s, err := Full(Shape{}, 10, Float64)
	require.NoError(t, err)

	out, err := Mul(a, s)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, out.ToSlice())
}

func TestBroadcastColumnAgainstRow(t *testing.T) {
	col := mustFromNested(t, [][]float64{{1}, {2}, {3}}, Float64)
	row := mustFromNested(t, []float64{10, 20}, Float64)

	out, err := Add(col, row)
	require.NoError(t, err)
	assert.True(t, Shape{3, 2}.Equal(out.Shape()))
	assert.Equal(t, []float64{11, 21, 12, 22, 13, 23}, out.ToSlice())
}

func TestOpsOnStridedViews(t *testing.T) {
	a := mustFromNested(t, []float64{0, 1, 2, 3, 4, 5}, Float64)
	rev, err := a.Slice("::-1")
	require.NoError(t, err)

	out, err := Add(rev, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5, 5, 5}, out.ToSlice())
}

func TestDivByZero(t *testing.T) {
	a := mustFromNested(t, []float64{1, 2}, Float64)
	zero := mustFromNested(t, []float64{1, 0}, Float64)

	var merr *MathematicalError
	_, err := Div(a, zero)
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "divide", merr.Op)

	_, err = DivScalar(a, 0)
	require.ErrorAs(t, err, &merr)

	_, err = ModScalar(a, 0)
	require.ErrorAs(t, err, &merr)
}

func TestSqrtDomain(t *testing.T) {
	a := mustFromNested(t, []float64{4, 9}, Float64)
	out, err := Sqrt(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, out.ToSlice())

	neg := mustFromNested(t, []float64{-1}, Float64)
	var merr *MathematicalError
	_, err = Sqrt(neg)
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "sqrt", merr.Op)
}

func TestLogDomain(t *testing.T) {
	var merr *MathematicalError
	zero := mustFromNested(t, []float64{0}, Float64)
	_, err := Log(zero)
	require.ErrorAs(t, err, &merr)

	neg := mustFromNested(t, []float64{-2}, Float64)
	_, err = Log(neg)
	require.ErrorAs(t, err, &merr)
}

func TestPowDomain(t *testing.T) {
	a := mustFromNested(t, []float64{2}, Float64)
	out, err := PowScalar(a, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{1024}, out.ToSlice())

	var merr *MathematicalError
	zero := mustFromNested(t, []float64{0}, Float64)
	_, err = PowScalar(zero, -1)
	require.ErrorAs(t, err, &merr)

	neg := mustFromNested(t, []float64{-8}, Float64)
	_, err = PowScalar(neg, 0.5)
	require.ErrorAs(t, err, &merr)
}

func TestUnaryPreservesDTypeAndShape(t *testing.T) {
	a, err := Full(Shape{2, 3}, -5, Int16)
	require.NoError(t, err)

	out, err := Abs(a)
	require.NoError(t, err)
	assert.Equal(t, Int16, out.DType())
	assert.True(t, a.Shape().Equal(out.Shape()))
	assert.Equal(t, []float64{5, 5, 5, 5, 5, 5}, out.ToSlice())
}

func TestBinaryPromotion(t *testing.T) {
	i8, err := Full(Shape{2}, 3, Int8)
	require.NoError(t, err)
	f64 := mustFromNested(t, []float64{0.5, 1.5}, Float64)

	out, err := Add(i8, f64)
	require.NoError(t, err)
	assert.Equal(t, Float64, out.DType())
	assert.Equal(t, []float64{3.5, 4.5}, out.ToSlice())

	i16, err := Full(Shape{2}, 100, Int16)
	require.NoError(t, err)
	sum, err := Add(i8, i16)
	require.NoError(t, err)
	assert.Equal(t, Int16, sum.DType())
}

func TestScalarFormsKeepDType(t *testing.T) {
	a, err := Full(Shape{3}, 7, Int32)
	require.NoError(t, err)

	out, err := MulScalar(a, 3)
	require.NoError(t, err)
	assert.Equal(t, Int32, out.DType())
	assert.Equal(t, []float64{21, 21, 21}, out.ToSlice())

	// Integer kinds truncate toward zero.
	half, err := DivScalar(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, half.ToSlice())
}

func TestOverflowRejected(t *testing.T) {
	a, err := Full(Shape{1}, 127, Int8)
	require.NoError(t, err)

	var oerr *NumericalOverflowError
	_, err = AddScalar(a, 1)
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, Int8, oerr.DType)

	big := mustFromNested(t, []float64{1e308}, Float64)
	_, err = Mul(big, big)
	require.ErrorAs(t, err, &oerr)
}

func TestComparisonsYieldUint8(t *testing.T) {
	a := mustFromNested(t, []float64{1, 5, 3}, Float64)
	b := mustFromNested(t, []float64{2, 4, 3}, Float64)

	gt, err := Greater(a, b)
	require.NoError(t, err)
	assert.Equal(t, Uint8, gt.DType())
	assert.Equal(t, []float64{0, 1, 0}, gt.ToSlice())

	le, err := LessEqual(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, le.ToSlice())

	eq, err := Equal(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, eq.ToSlice())
}

func TestMinimumMaximum(t *testing.T) {
	a := mustFromNested(t, []float64{1, 5, 3}, Float64)
	b := mustFromNested(t, []float64{2, 4, 3}, Float64)

	lo, err := Minimum(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 3}, lo.ToSlice())

	hi, err := Maximum(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5, 3}, hi.ToSlice())
}

func TestActivations(t *testing.T) {
	a := mustFromNested(t, []float64{-1, 0, 2}, Float64)

	r, err := ReLU(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2}, r.ToSlice())

	lr, err := LeakyReLU(a, 0.1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.1, 0, 2}, lr.ToSlice(), 1e-12)

	s, err := Sigmoid(mustFromNested(t, []float64{0}, Float64))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.ToSlice()[0], 1e-12)

	th, err := Tanh(mustFromNested(t, []float64{0}, Float64))
	require.NoError(t, err)
	assert.InDelta(t, 0, th.ToSlice()[0], 1e-12)
}

func TestNonFiniteScalarRejected(t *testing.T) {
	a := mustFromNested(t, []float64{1}, Float64)
	var perr *InvalidParameterError

	_, err := AddScalar(a, math.NaN())
	require.ErrorAs(t, err, &perr)

	_, err = MulScalar(a, math.Inf(1))
	require.ErrorAs(t, err, &perr)
}
