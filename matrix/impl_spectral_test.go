// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimob/matrix"
)

func TestSpectralAbscissa_Table(t *testing.T) {
	cases := []struct {
		name string
		vals []float64
		want float64
	}{
		{"symmetric", []float64{2, 1, 1, 2}, 3},
		{"upper triangular", []float64{1, 5, 0, 4}, 4},
		{"rotation has purely imaginary pair", []float64{0, -1, 1, 0}, 0},
		{"negative definite", []float64{-1, 0, 0, -2}, -1},
		{"row-stochastic", []float64{0.9, 0.1, 0.4, 0.6}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewFilledDense(t, 2, 2, tc.vals)
			got, err := matrix.SpectralAbscissa(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-10)

			got2, err := matrix.SpectralAbscissa(hide{m})
			require.NoError(t, err)
			assert.InDelta(t, got, got2, 0)
		})
	}
}

func TestEigenvalues_NonSymmetric3x3(t *testing.T) {
	// Companion matrix of (x-1)(x-2)(x-3) = x³ - 6x² + 11x - 6.
	m := NewFilledDense(t, 3, 3, []float64{
		6, -11, 6,
		1, 0, 0,
		0, 1, 0,
	})
	vals, err := matrix.Eigenvalues(m)
	require.NoError(t, err)
	require.Len(t, vals, 3)

	var reals []float64
	for _, v := range vals {
		assert.InDelta(t, 0, imag(v), 1e-9)
		reals = append(reals, real(v))
	}
	assert.ElementsMatch(t, []float64{1, 2, 3}, roundAll(reals, 1e-8))
}

func TestEigenvalues_Errors(t *testing.T) {
	_, err := matrix.Eigenvalues(NewFilledDense(t, 1, 2, []float64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Eigenvalues(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	v, err := matrix.SpectralAbscissa(nil)
	assert.Error(t, err)
	assert.True(t, math.IsNaN(v))
}

// roundAll snaps values to the nearest integer when within tol, for set comparisons.
func roundAll(xs []float64, tol float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		r := math.Round(x)
		if math.Abs(x-r) <= tol {
			out[i] = r
		} else {
			out[i] = x
		}
	}
	return out
}
