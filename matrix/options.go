// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
// This file is the single source of truth for tolerances and the finite-only
// policy used by Dense and the validators.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each default is consumed by at least one routine.
package matrix

import "math"

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultRowSumTolerance bounds |Σ_j m[i,j] - 1| for ValidateRowStochastic
	// when callers load externally produced mobility data.
	DefaultRowSumTolerance = 1e-6

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
