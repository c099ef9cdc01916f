// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/epimob/matrix"
)

func TestValidateNotNil(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var d *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix, "typed nil must be rejected")
	assert.NoError(t, matrix.ValidateNotNil(NewFilledDense(t, 1, 1, []float64{1})))
}

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(NewFilledDense(t, 1, 2, []float64{1, 2})), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateSquare(NewFilledDense(t, 2, 2, []float64{1, 0, 0, 1})))
}

func TestValidateVecLen(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrEmptyInput)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateNonNegativeAndFinite(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{0.5, 0.5, -0.1, 1.1})
	assert.ErrorIs(t, matrix.ValidateNonNegative(m), matrix.ErrNegativeEntry)
	assert.ErrorIs(t, matrix.ValidateNonNegative(hide{m}), matrix.ErrNegativeEntry)
	assert.NoError(t, matrix.ValidateFinite(m))
	assert.NoError(t, matrix.ValidateFiniteVec([]float64{1, 2}))
}

func TestValidateRowStochastic(t *testing.T) {
	ok := NewFilledDense(t, 2, 2, []float64{0.25, 0.75, 0.5, 0.5})
	assert.NoError(t, matrix.ValidateRowStochastic(ok, matrix.DefaultRowSumTolerance))

	bad := NewFilledDense(t, 2, 2, []float64{0.25, 0.75, 0.5, 0.6})
	assert.ErrorIs(t, matrix.ValidateRowStochastic(bad, 1e-9), matrix.ErrNotRowStochastic)
	assert.NoError(t, matrix.ValidateRowStochastic(bad, 0.2), "tolerance relaxes the check")
}
