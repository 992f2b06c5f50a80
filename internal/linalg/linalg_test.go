package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/ndarray"
)

func mustMatrix(t *testing.T, rows [][]float64) *ndarray.NDArray {
	t.Helper()
	a, err := ndarray.FromNested(rows, ndarray.Float64)
	require.NoError(t, err)
	return a
}

func TestDet(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"size one", [][]float64{{5}}, 5},
		{"size two", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"upper triangular", [][]float64{{2, 1, 3}, {0, 4, 5}, {0, 0, 6}}, 48},
		{"general three", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det, err := Det(mustMatrix(t, tt.rows))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, det, 1e-9)
		})
	}
}

func TestDetSwapParity(t *testing.T) {
	// Pivoting swaps the rows once; the sign must survive.
	a := mustMatrix(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}})
	det, err := Det(a)
	require.NoError(t, err)
	assert.InDelta(t, -1, det, 1e-12)
}

func TestDetNonSquare(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := Det(a)
	var nerr *NonSquareMatrixError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "det", nerr.Op)
}

func TestInvRoundTrip(t *testing.T) {
	a := mustMatrix(t, [][]float64{{4, 7, 2}, {2, 6, 1}, {1, 3, 9}})

	inv, err := Inv(a)
	require.NoError(t, err)

	prod, err := ndarray.Dot(a, inv)
	require.NoError(t, err)
	eye, err := ndarray.Eye(3, ndarray.Float64)
	require.NoError(t, err)
	assert.InDeltaSlice(t, eye.ToSlice(), prod.ToSlice(), 1e-10)
}

func TestInvClosedForms(t *testing.T) {
	one, err := Inv(mustMatrix(t, [][]float64{{4}}))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, one.ToSlice()[0], 1e-12)

	two, err := Inv(mustMatrix(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, 1, 1.5, -0.5}, two.ToSlice(), 1e-12)
}

func TestInvSingular(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {2, 4}})
	_, err := Inv(a)
	var serr *SingularMatrixError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "inv", serr.Op)
}

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want int
	}{
		{"full rank", [][]float64{{1, 0}, {0, 1}}, 2},
		{"dependent rows", [][]float64{{1, 2}, {2, 4}}, 1},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]float64{{1, 2, 3}, {4, 5, 6}}, 2},
		{"tall dependent", [][]float64{{1, 2}, {2, 4}, {3, 6}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Rank(mustMatrix(t, tt.rows))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestTrace(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	tr, err := Trace(a)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr)

	var nerr *NonSquareMatrixError
	_, err = Trace(mustMatrix(t, [][]float64{{1, 2, 3}}))
	require.ErrorAs(t, err, &nerr)
}

func TestNorm(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, -2}, {-3, 4}})

	fro, err := Norm(a, NormFrobenius)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(30), fro, 1e-12)

	one, err := Norm(a, Norm1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, one)

	inf, err := Norm(a, NormInf)
	require.NoError(t, err)
	assert.Equal(t, 7.0, inf)

	var perr *ndarray.InvalidParameterError
	_, err = Norm(a, NormKind(99))
	require.ErrorAs(t, err, &perr)
}

func TestIsSymmetric(t *testing.T) {
	sym := mustMatrix(t, [][]float64{{2, 1}, {1, 3}})
	ok, err := IsSymmetric(sym, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	asym := mustMatrix(t, [][]float64{{2, 1}, {0, 3}})
	ok, err = IsSymmetric(asym, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	// A loose tolerance absorbs small asymmetry.
	near := mustMatrix(t, [][]float64{{2, 1.0000001}, {1, 3}})
	ok, err = IsSymmetric(near, 1e-5)
	require.NoError(t, err)
	assert.True(t, ok)

	wide := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	ok, err = IsSymmetric(wide, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}
