// SPDX-License-Identifier: MIT

package segment_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimob/segment"
)

func TestSegment_Fixtures(t *testing.T) {
	cases := []struct {
		name     string
		density  []float64
		hotspots []int
		suburbs  []int
	}{
		{"uniform", []float64{10, 10, 10, 10}, []int{0, 1, 2, 3}, nil},
		{"two dense tail units", []float64{1, 1, 1, 1, 1, 1, 1, 1, 50, 100}, []int{8, 9}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{"shuffled", []float64{5, 120, 7, 3, 90, 4, 6, 200, 8, 2}, []int{1, 7}, []int{9, 3, 5, 0, 6, 2, 8, 4}},
		{"linear ramp", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []int{4, 5, 6, 7, 8, 9}, []int{0, 1, 2, 3}},
		{"three units", []float64{3, 1, 2}, []int{2, 0}, []int{1}},
		{"two units", []float64{1, 2}, []int{0, 1}, nil},
		{"single unit", []float64{7}, []int{0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := segment.Segment(tc.density)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.hotspots, p.Hotspots)
			assert.ElementsMatch(t, tc.suburbs, p.Suburbs)
		})
	}
}

func TestSegment_LongFlatTail(t *testing.T) {
	d := make([]float64, 20)
	for i := range d {
		d[i] = 1
	}
	d[18], d[19] = 40, 60

	p, err := segment.Segment(d)
	require.NoError(t, err)
	// Position 17 is a tied unit of density 1; stability picks the last index.
	assert.Equal(t, []int{17, 18, 19}, p.Hotspots)
	assert.Len(t, p.Suburbs, 17)
}

func TestSegment_DensityOrder(t *testing.T) {
	p, err := segment.Segment([]float64{5, 120, 7, 3, 90, 4, 6, 200, 8, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7}, p.Hotspots, "hotspots come back in ascending density")
	assert.Equal(t, []int{9, 3, 5, 0, 6, 2, 8, 4}, p.Suburbs)
}

func TestSegment_CoversAllUnits(t *testing.T) {
	inputs := [][]float64{
		{7},
		{2, 1},
		{0, 0, 0},
		{10, 10, 10, 10},
		{4, 8, 15, 16, 23, 42},
		{1, 1, 1, 1, 1, 1, 1, 1, 50, 100},
		{0.3, 9e5, 12, 0.001, 77, 77, 77, 3},
	}
	for _, d := range inputs {
		p, err := segment.Segment(d)
		require.NoError(t, err)
		require.NoError(t, p.Validate(len(d)))
		assert.Equal(t, len(d), len(p.Hotspots)+len(p.Suburbs), "union must be 0..N-1 for %v", d)
	}
}

func TestSegment_ScaleInvariance(t *testing.T) {
	base := []float64{5, 120, 7, 3, 90, 4, 6, 200, 8, 2}
	want, err := segment.Segment(base)
	require.NoError(t, err)

	for _, f := range []float64{0.01, 3.7, 1e6} {
		scaled := make([]float64, len(base))
		for i, v := range base {
			scaled[i] = v * f
		}
		got, err := segment.Segment(scaled)
		require.NoError(t, err)
		assert.Equal(t, want, got, "factor %g", f)
	}
}

// Adding a constant to every density is not neutral: the cumulative curve
// steepens uniformly, the end tangent reaches back further and the hotspot
// group grows until it covers every unit. For the ramp 1..10 the cumulative
// sum is quadratic, so the spline is exact and the cut is
// x1 = ceil(9 - (55+10c)/(10.5+c)).
func TestSegment_ShiftMovesThreshold(t *testing.T) {
	cases := []struct {
		shift float64
		x1    int
	}{
		{0, 4},
		{1, 4},
		{5, 3},
		{100, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("shift=%g", tc.shift), func(t *testing.T) {
			d := make([]float64, 10)
			for i := range d {
				d[i] = float64(i+1) + tc.shift
			}
			x1, _, err := segment.Threshold(d)
			require.NoError(t, err)
			assert.Equal(t, tc.x1, x1)

			p, err := segment.Segment(d)
			require.NoError(t, err)
			assert.Len(t, p.Hotspots, 10-tc.x1)
			assert.Len(t, p.Suburbs, tc.x1)
		})
	}
}

func TestSegment_Deterministic(t *testing.T) {
	d := []float64{4, 8, 15, 16, 23, 42}
	a, err := segment.Segment(d)
	require.NoError(t, err)
	b, err := segment.Segment(d)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSegment_Errors(t *testing.T) {
	_, err := segment.Segment(nil)
	assert.ErrorIs(t, err, segment.ErrEmptyDensity)

	_, err = segment.Segment([]float64{1, math.NaN(), 2})
	assert.ErrorIs(t, err, segment.ErrNonFinite)

	_, err = segment.Segment([]float64{math.Inf(1)})
	assert.ErrorIs(t, err, segment.ErrNonFinite)
}

func TestThreshold(t *testing.T) {
	x1, order, err := segment.Threshold([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, x1)
	assert.Equal(t, []int{1, 2, 0}, order)

	x1, _, err = segment.Threshold([]float64{1, 1, 1, 1, 1, 1, 1, 1, 50, 100})
	require.NoError(t, err)
	assert.Equal(t, 8, x1)
}
