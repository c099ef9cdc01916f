// SPDX-License-Identifier: MIT

// Package vulnerability scores how exposed a mobility network is to an
// outbreak, as the leading eigenvalue of a disease-specific transmission
// matrix built from mobility, population, area and vector data.
//
// Two diseases are modelled:
//
//	VBD (vector-borne):
//	  N_eff[i] = Σ_j M[j][i]·h[j]
//	  M0[i][j] = M[i][j]·v[j] / N_eff[j]      (0 when N_eff[j] ≤ 0)
//	  M1[i][j] = M[j][i]·h[j] / N_eff[i]      (0 when N_eff[i] ≤ 0)
//	  score    = √λ_max(M0·M1)
//
//	ABD (airborne):
//	  T[i][j] = (h[i]/a[i])·( M[i][i]²·(h[j]/h[i])·M[i][j]·M[j][j]
//	                        + (a[i]/a[j])·M[i][j]²·(h[j]/h[i])·M[j][j] )
//	  score   = λ_max(T)
//
// λ_max is the largest real part over all eigenvalues of the (generally
// non-symmetric) transmission matrix. When it is negative the score is
// undefined: the evaluator logs a warning and returns math.NaN() with a nil
// error so batch runs keep going. Malformed input is an error.
//
// The package functions ScoreVBD and ScoreABD use a default Evaluator that logs to
// slog.Default(). Build an Evaluator with New(WithLogger(l)) to redirect.
package vulnerability
