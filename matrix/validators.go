// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/value checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil -> Shape -> Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrEmptyInput)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects NaN/±Inf anywhere in m.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	bad := -1
	var badJ int
	visit(m, func(i, j int, v float64) bool {
		if isNonFinite(v) {
			bad, badJ = i, j
			return false
		}
		return true
	})
	if bad >= 0 {
		return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", bad, badJ, ErrNaNInf))
	}

	return nil
}

// ValidateFiniteVec rejects NaN/±Inf in x.
// Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFiniteVec", fmt.Errorf("[%d]: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateNonNegative rejects strictly negative entries (zero is allowed).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	bad := -1
	var badJ int
	visit(m, func(i, j int, v float64) bool {
		if v < 0 {
			bad, badJ = i, j
			return false
		}
		return true
	})
	if bad >= 0 {
		return validatorErrorf("ValidateNonNegative", fmt.Errorf("(%d,%d): %w", bad, badJ, ErrNegativeEntry))
	}

	return nil
}

// ValidateRowStochastic checks |Σ_j m[i,j] - 1| <= tol for every row.
//
// Inputs: non-nil matrix, tol >= 0 (negative tol is treated as DefaultRowSumTolerance).
// Errors: ErrNilMatrix, ErrNotRowStochastic (wrapped with the offending row).
// Complexity: O(r*c).
func ValidateRowStochastic(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if tol < 0 || isNonFinite(tol) {
		tol = DefaultRowSumTolerance
	}
	sums, err := RowSums(m)
	if err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	for i, s := range sums {
		if math.Abs(s-1) > tol {
			return validatorErrorf("ValidateRowStochastic", fmt.Errorf("row %d sums to %g: %w", i, s, ErrNotRowStochastic))
		}
	}

	return nil
}

// visit iterates any Matrix in row-major order, using the *Dense fast path
// when available. Out-of-range errors cannot occur for in-bounds loops, so
// At errors are ignored on the fallback path.
func visit(m Matrix, f func(i, j int, v float64) bool) {
	if d, ok := m.(*Dense); ok {
		d.Do(f)
		return
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			if !f(i, j, v) {
				return
			}
		}
	}
}
