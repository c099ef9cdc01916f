// SPDX-License-Identifier: MIT

// Package segment splits spatial units into hotspots and suburbs from a
// per-unit population density vector.
//
// What it does:
//
//	The densities are sorted ascending and accumulated. A not-a-knot cubic
//	spline is fitted through (k, cum[k]) and the tangent line at the last
//	knot is extended back toward k = 0. The first sorted position where the
//	tangent is positive is the threshold x1; units at sorted position ≥ x1
//	are hotspots, the rest are suburbs.
//
// Key properties:
//   - Deterministic, no randomness and no allocation beyond O(N).
//   - Ties are broken by original index (stable sort).
//   - Multiplying every density by the same positive factor keeps the split.
//   - Either group may be empty; consumers must tolerate that.
//
// Usage:
//
//	p, err := segment.Segment(density)
//	if err != nil {
//	  // ErrEmptyDensity or ErrNonFinite
//	}
//	fmt.Println(p.Hotspots, p.Suburbs)
//
// Complexity:
//   - Time O(N log N) for the sort, O(N) for the spline.
//   - Memory O(N).
package segment
