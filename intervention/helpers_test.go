// SPDX-License-Identifier: MIT

package intervention_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimob/matrix"
)

const tol = 1e-12

type hide struct{ matrix.Matrix }

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// requireRowsClose compares m against want entrywise.
func requireRowsClose(t *testing.T, want [][]float64, m matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	for i, row := range want {
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			if math.Abs(got-w) > atol {
				t.Fatalf("(%d,%d) = %g, want %g", i, j, got, w)
			}
		}
	}
}

// requireStochastic asserts non-negative entries and unit row sums.
func requireStochastic(t *testing.T, m matrix.Matrix) {
	t.Helper()
	require.NoError(t, matrix.ValidateNonNegative(m))
	require.NoError(t, matrix.ValidateRowStochastic(m, 1e-9))
}
