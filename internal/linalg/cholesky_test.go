package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/ndarray"
)

func TestCholesky(t *testing.T) {
	a := mustMatrix(t, [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})

	l, err := Cholesky(a)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 0, 0, 6, 1, 0, -8, 5, 3}, l.ToSlice(), 1e-10)

	// L·Lᵀ reconstructs A.
	prod, err := ndarray.Dot(l, l.T())
	require.NoError(t, err)
	assert.InDeltaSlice(t, a.ToSlice(), prod.ToSlice(), 1e-10)
}

func TestCholeskyNotPositiveDefinite(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {2, 1}})

	var merr *ndarray.MathematicalError
	_, err := Cholesky(a)
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "cholesky", merr.Op)
}

func TestCholeskyNonSquare(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	var nerr *NonSquareMatrixError
	_, err := Cholesky(a)
	require.ErrorAs(t, err, &nerr)
}

func TestIsPositiveDefinite(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, true},
		{"spd", [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}, true},
		{"indefinite", [][]float64{{1, 2}, {2, 1}}, false},
		{"negative definite", [][]float64{{-2, 0}, {0, -3}}, false},
		{"asymmetric", [][]float64{{2, 1}, {0, 2}}, false},
		{"semidefinite", [][]float64{{1, 1}, {1, 1}}, false},
		{"non-square", [][]float64{{1, 0, 0}, {0, 1, 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPositiveDefinite(mustMatrix(t, tt.rows))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
