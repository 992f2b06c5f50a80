package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosOnes(t *testing.T) {
	z, err := Zeros(Shape{2, 3}, Float32)
	require.NoError(t, err)
	assert.Equal(t, Float32, z.DType())
	assert.Equal(t, 6, z.Size())
	for _, v := range z.ToSlice() {
		assert.Zero(t, v)
	}

	o, err := Ones(Shape{4}, Int8)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, o.ToSlice())
}

func TestFull(t *testing.T) {
	a, err := Full(Shape{2, 2}, 7.5, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{7.5, 7.5, 7.5, 7.5}, a.ToSlice())

	// Integer fills truncate toward zero.
	b, err := Full(Shape{2}, -2.9, Int32)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, b.ToSlice())

	_, err = Full(Shape{2}, math.NaN(), Float64)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)

	_, err = Full(Shape{2}, 300, Int8)
	var oerr *NumericalOverflowError
	require.ErrorAs(t, err, &oerr)
}

func TestEye(t *testing.T) {
	a, err := Eye(3, Float64)
	require.NoError(t, err)
	assert.True(t, Shape{3, 3}.Equal(a.Shape()))
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, a.ToSlice())

	_, err = Eye(0, Float64)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
}

func TestArange(t *testing.T) {
	a, err := Arange(0, 5, 1, Int32)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, a.ToSlice())

	b, err := Arange(5, 0, -2, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, b.ToSlice())

	// Empty when the step walks away from stop.
	empty, err := Arange(0, 5, -1, Float64)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())

	_, err = Arange(0, 5, 0, Float64)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
}

func TestLinspace(t *testing.T) {
	a, err := Linspace(0, 1, 5, Float64)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, a.ToSlice(), 1e-12)
	assert.Equal(t, Float64, a.DType())

	one, err := Linspace(3, 9, 1, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, one.ToSlice())

	_, err = Linspace(0, 1, 0, Float64)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, Float64)
	require.NoError(t, err)
	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 2}, Float64)
	var derr *DimensionError
	require.ErrorAs(t, err, &derr)
}

func TestFromNested(t *testing.T) {
	a, err := FromNested([][]float64{{1, 2, 3}, {4, 5, 6}}, Int16)
	require.NoError(t, err)
	assert.True(t, Shape{2, 3}.Equal(a.Shape()))
	assert.Equal(t, Int16, a.DType())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.ToSlice())

	three, err := FromNested([][][]int{{{1, 2}}, {{3, 4}}}, Int32)
	require.NoError(t, err)
	assert.True(t, Shape{2, 1, 2}.Equal(three.Shape()))
}

func TestFromNestedRagged(t *testing.T) {
	_, err := FromNested([][]float64{{1, 2}, {3}}, Float64)
	var derr *DimensionError
	require.ErrorAs(t, err, &derr)
}

func TestFromNestedNonFinite(t *testing.T) {
	_, err := FromNested([]float64{1, math.Inf(1)}, Float64)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
}

func TestRand(t *testing.T) {
	a, err := Rand(Shape{100}, Float64)
	require.NoError(t, err)
	for _, v := range a.ToSlice() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	_, err = Rand(Shape{4}, Int32)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
}

func TestRandn(t *testing.T) {
	a, err := Randn(Shape{1000}, Float64)
	require.NoError(t, err)
	var sum float64
	for _, v := range a.ToSlice() {
		sum += v
	}
	mean := sum / float64(a.Size())
	assert.InDelta(t, 0, mean, 0.2)

	_, err = Randn(Shape{4}, Uint8)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
}
