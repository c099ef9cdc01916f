// SPDX-License-Identifier: MIT

// Package matrix - spectra of general (non-symmetric) square matrices.
//
// Purpose:
//   - Eigenvalues: all (possibly complex) eigenvalues of a real square matrix.
//   - SpectralAbscissa: max_k Re(λ_k), the quantity the vulnerability metrics need.
//
// Transmission matrices built from mobility data are not symmetric, so the
// decomposition goes through gonum's Geev-based mat.Eigen (Hessenberg
// reduction + shifted QR) rather than a symmetric-only Jacobi sweep.
//
// Determinism:
//   - Same input bytes ⇒ same eigenvalues; no randomness.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// toGonum copies any square Matrix into a gonum *mat.Dense.
// The *Dense fast path shares no storage with the result.
func toGonum(m Matrix) (*mat.Dense, error) {
	n := m.Rows()
	buf := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return mat.NewDense(n, n, buf), nil
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			buf[i*n+j] = v
		}
	}

	return mat.NewDense(n, n, buf), nil
}

// Eigenvalues returns all eigenvalues of the square matrix m.
// MAIN DESCRIPTION:
//   - General eigen-decomposition; no symmetry assumption.
//
// Implementation:
//   - Stage 1: ValidateSquare, ValidateFinite (LAPACK routines do not tolerate NaN).
//   - Stage 2: copy into gonum storage and factorize with EigenNone (values only).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrEigenFailed.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Eigenvalues(m Matrix) ([]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigenvalues, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrEigenFailed))
	}

	return eig.Values(nil), nil
}

// SpectralAbscissa returns max_k Re(λ_k) over the eigenvalues of m.
//
// For the non-negative matrices produced by the vulnerability metrics this is
// the Perron root (spectral radius); for general matrices it may be negative.
//
// Errors: see Eigenvalues.
// Complexity: O(n³).
func SpectralAbscissa(m Matrix) (float64, error) {
	vals, err := Eigenvalues(m)
	if err != nil {
		return math.NaN(), err
	}
	best := math.Inf(-1)
	for _, v := range vals {
		if cmplx.IsNaN(v) {
			continue
		}
		if real(v) > best {
			best = real(v)
		}
	}
	if math.IsInf(best, -1) {
		return math.NaN(), matrixErrorf(opEigenvalues, ErrEigenFailed)
	}

	return best, nil
}
