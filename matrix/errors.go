// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines return these sentinels (optionally wrapped with %w)
// and tests check them via errors.Is. No routine panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grep-ability. Wrap with
// fmt.Errorf("Op: %w", ErrX) at the detection site when coordinates or the
// operation name help; callers keep matching with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> NaN/Inf -> structural violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyInput indicates an empty slice where at least one element is required.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrRaggedRows indicates rows of different lengths in a [][]float64 literal.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNegativeEntry signals a strictly negative value where a non-negative
	// matrix (e.g. mobility proportions) is required.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNotRowStochastic signals that a row sum deviates from 1 beyond tolerance.
	ErrNotRowStochastic = errors.New("matrix: row sums are not 1 within tolerance")

	// ErrEigenFailed indicates that the eigenvalue routine did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
