// SPDX-License-Identifier: MIT

// Package intervention builds modified mobility matrices that model
// policies reshaping movement between hotspots and suburbs.
//
// Three generators share one interface:
//
//   - Redistribution (Direct): severs hotspot→hotspot flow and moves it onto
//     the same row's suburb columns. Deterministic.
//   - GroupMixing (RandomizedA): one δ ~ U[0,1] per call sets within-group
//     and cross-group mixing for both groups (κ = 1−δ for hotspots).
//   - AreaMixing (RandomizedB): targets κ* = 1/(γ+1), δ* = γ/(γ+1) from the
//     suburb/hotspot land-area ratio γ, perturbed per cell by N(target, σ).
//
// Every output is a fresh N×N row-stochastic, non-negative *matrix.Dense;
// the input matrix is never modified. Validation runs before any output is
// allocated, so a failing call returns no partial matrix.
//
// Randomness:
//
//	Generators draw only from the *rand.Rand passed to Generate. A nil rng
//	selects a fixed default stream. A *rand.Rand is not safe for concurrent
//	use; give every worker its own stream via DeriveRNG.
package intervention
