// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Segment splits units into hotspots and suburbs by density.
//
// Algorithm Outline:
//  1. Stable ascending argsort of density (ties keep index order).
//  2. cum[k] = Σ sorted[0..k].
//  3. Fit a not-a-knot cubic spline through (k, cum[k]), k = 0..N-1, and
//     read y = S(N-1), s = S'(N-1).
//  4. Tangent t(k) = y + s·(k − (N−1)); x1 = smallest k with t(k) > 0, or 0.
//  5. Sorted positions ≥ x1 are hotspots, positions < x1 are suburbs.
//
// Small inputs: N = 3 uses the interpolating parabola (the unique not-a-knot
// spline through three points), N = 2 the chord, N = 1 a flat tangent.
//
// Errors:
//   - ErrEmptyDensity: density has no entries.
//   - ErrNonFinite: any entry is NaN or ±Inf.
//
// Complexity: O(N log N) time, O(N) memory.
func Segment(density []float64) (Partition, error) {
	x1, order, err := Threshold(density)
	if err != nil {
		return Partition{}, err
	}

	hot := make([]int, len(order)-x1)
	copy(hot, order[x1:])
	sub := make([]int, x1)
	copy(sub, order[:x1])

	return Partition{Hotspots: hot, Suburbs: sub}, nil
}

// Threshold returns the split position x1 in [0, N] together with the
// ascending-density order of unit indices that Segment slices.
func Threshold(density []float64) (x1 int, order []int, err error) {
	n := len(density)
	if n == 0 {
		return 0, nil, ErrEmptyDensity
	}
	for i, v := range density {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, nil, fmt.Errorf("density[%d]=%v: %w", i, v, ErrNonFinite)
		}
	}

	order = argsortStable(density)
	sorted := make([]float64, n)
	for k, i := range order {
		sorted[k] = density[i]
	}
	cum := floats.CumSum(make([]float64, n), sorted)

	y, slope, err := endTangent(cum)
	if err != nil {
		return 0, nil, err
	}

	last := float64(n - 1)
	x1 = 0
	for k := 0; k < n; k++ {
		if y+slope*(float64(k)-last) > 0 {
			x1 = k
			break
		}
	}

	return clamp(x1, 0, n), order, nil
}

// argsortStable returns indices ordering v ascending; equal values keep index order.
func argsortStable(v []float64) []int {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	return idx
}

// endTangent returns the value and first derivative of the not-a-knot cubic
// interpolant of cum at its last knot. Knots sit at x = 0..n-1.
func endTangent(cum []float64) (y, slope float64, err error) {
	n := len(cum)
	y = cum[n-1]
	switch n {
	case 1:
		return y, 0, nil
	case 2:
		return y, cum[1] - cum[0], nil
	case 3:
		// p(x) through (0,c0), (1,c1), (2,c2): p'(2) = (c0 − 4c1 + 3c2)/2.
		return y, (cum[0] - 4*cum[1] + 3*cum[2]) / 2, nil
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	var spline interp.NotAKnotCubic
	if err = spline.Fit(xs, cum); err != nil {
		return 0, 0, fmt.Errorf("segment: spline fit: %w", err)
	}
	last := xs[n-1]

	return spline.Predict(last), spline.PredictDerivative(last), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
