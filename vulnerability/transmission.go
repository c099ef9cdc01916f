// SPDX-License-Identifier: MIT

package vulnerability

import (
	"fmt"

	"github.com/katalvlaran/epimob/matrix"
)

// badInput tags err with ErrBadInput and the argument name, keeping err matchable.
func badInput(arg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrBadInput, arg, err)
}

// validateMobility checks that m is a finite square matrix and returns N.
func validateMobility(m matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, badInput("mobility", err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, badInput("mobility", err)
	}
	return m.Rows(), nil
}

// validateVec checks length n and finiteness of a named per-unit vector.
func validateVec(name string, v []float64, n int) error {
	if err := matrix.ValidateVecLen(v, n); err != nil {
		return badInput(name, fmt.Errorf("len %d, want %d: %w", len(v), n, err))
	}
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return badInput(name, err)
	}
	return nil
}

// rowsOf copies m into a row slice for indexed arithmetic.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}
	return out, nil
}

// TransmissionVBD builds the host-vector-host matrix M2 = M0·M1.
//
// Effective population N_eff[i] = Σ_j M[j][i]·human[j]. Any term whose
// N_eff denominator is not positive contributes zero.
//
// Errors: ErrBadInput (wrapping the matrix sentinel) for a nil, non-square
// or non-finite matrix, or a vector of the wrong length or with NaN/Inf.
func TransmissionVBD(m matrix.Matrix, mosquito, human []float64) (*matrix.Dense, error) {
	n, err := validateMobility(m)
	if err != nil {
		return nil, err
	}
	if err = validateVec("mosquito", mosquito, n); err != nil {
		return nil, err
	}
	if err = validateVec("human", human, n); err != nil {
		return nil, err
	}
	M, err := rowsOf(m)
	if err != nil {
		return nil, badInput("mobility", err)
	}

	mt, err := matrix.Transpose(m)
	if err != nil {
		return nil, badInput("mobility", err)
	}
	neff, err := matrix.MatVec(mt, human)
	if err != nil {
		return nil, badInput("human", err)
	}

	m0, _ := matrix.NewDense(n, n)
	m1, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if neff[j] > 0 {
				if err = m0.Set(i, j, M[i][j]*mosquito[j]/neff[j]); err != nil {
					return nil, err
				}
			}
			if neff[i] > 0 {
				if err = m1.Set(i, j, M[j][i]*human[j]/neff[i]); err != nil {
					return nil, err
				}
			}
		}
	}

	return matrix.Mul(m0, m1)
}

// TransmissionABD builds the airborne transmission matrix T.
//
// Every human and area entry must be non-zero; a zero is reported as
// ErrZeroDenominator naming the unit. Shape errors are as for TransmissionVBD.
func TransmissionABD(m matrix.Matrix, human, area []float64) (*matrix.Dense, error) {
	n, err := validateMobility(m)
	if err != nil {
		return nil, err
	}
	if err = validateVec("human", human, n); err != nil {
		return nil, err
	}
	if err = validateVec("area", area, n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if human[i] == 0 {
			return nil, fmt.Errorf("human[%d]: %w", i, ErrZeroDenominator)
		}
		if area[i] == 0 {
			return nil, fmt.Errorf("area[%d]: %w", i, ErrZeroDenominator)
		}
	}
	M, err := rowsOf(m)
	if err != nil {
		return nil, badInput("mobility", err)
	}

	t, _ := matrix.NewDense(n, n)
	var term1, term2, hRatio float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			hRatio = human[j] / human[i]
			term1 = M[i][i] * M[i][i] * hRatio * M[i][j] * M[j][j]
			term2 = (area[i] / area[j]) * M[i][j] * M[i][j] * hRatio * M[j][j]
			if err = t.Set(i, j, (human[i]/area[i])*(term1+term2)); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}
