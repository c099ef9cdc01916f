// SPDX-License-Identifier: MIT

// Package montecarlo estimates the distribution of vulnerability ratios
// (modified / baseline) under repeated randomized interventions.
//
// A run:
//  1. validates the scenario and derives the hotspot/suburb partition once
//     (or takes one supplied with WithPartition);
//  2. scores the unmodified mobility matrix for every disease;
//  3. for each trial, asks the intervention Generator for a new matrix,
//     scores it and keeps modified/baseline when the baseline is positive
//     and both scores are finite.
//
// Trials are split across WithWorkers goroutines. Worker w draws from
// intervention.DeriveRNG(seed, w) and the per-worker series are joined in
// worker order, so a fixed (seed, workers) pair reproduces the output.
package montecarlo
