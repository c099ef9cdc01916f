// SPDX-License-Identifier: MIT

// Package matrix - row statistics used to keep mobility matrices row-stochastic.
//
// Purpose:
//   - RowSums: Σ_j m[i,j] per row.
//   - NormalizeRowsL1: scale each row to unit L1 norm; degenerate rows untouched.
//
// Determinism:
//   - Fixed i→j traversal; no randomness.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RowSums returns Σ_j m[i,j] for every row i.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	sums := make([]float64, r)

	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			sums[i] = floats.Sum(d.data[i*c : (i+1)*c])
		}
		return sums, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// NormalizeRowsL1 scales each row to have L1-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate m (non-nil).
//   - Stage 2: Compute per-row L1 norms Σ_j |m_ij| deterministically.
//   - Stage 3: Build row scale factors (1/norm); for norm==0 use scale=1 to keep the row unchanged.
//   - Stage 4: Write the scaled copy.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged (all-zero rows stay all-zero).
//   - The input is never mutated.
//
// Returns:
//   - *Dense: normalized copy.
//   - []float64: original norms (callers use them to detect degenerate rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(m Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	var i, j int
	var v float64
	if d, ok := m.(*Dense); ok {
		copy(out.data, d.data)
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
				}
				out.data[i*c+j] = v
			}
		}
	}

	norms := make([]float64, r)
	var scale float64
	for i = 0; i < r; i++ {
		row := out.data[i*c : (i+1)*c]
		for j = 0; j < c; j++ {
			norms[i] += math.Abs(row[j])
		}
		if norms[i] == 0 {
			continue
		}
		scale = 1.0 / norms[i]
		floats.Scale(scale, row)
	}

	return out, norms, nil
}
