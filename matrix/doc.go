// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by epimob.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional finite-only numeric policy.
//   - Validators (square, vector length, finite, non-negative, row-stochastic)
//     that every higher-level package runs before numeric work.
//   - Mul, Transpose and MatVec with deterministic loop orders.
//   - RowSums and NormalizeRowsL1 for keeping mobility matrices row-stochastic.
//   - Eigenvalues and SpectralAbscissa for general (non-symmetric) matrices,
//     backed by gonum's LAPACK-style Geev implementation.
//
// Mobility matrices in this module are small (one row per spatial unit), so
// O(n²) memory and O(n³) products are acceptable everywhere.
package matrix
