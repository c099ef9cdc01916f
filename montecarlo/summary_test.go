// SPDX-License-Identifier: MIT

package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/epimob/montecarlo"
	"github.com/katalvlaran/epimob/vulnerability"
)

func TestSummarize(t *testing.T) {
	in := []float64{5, 1, 4, 2, 3}
	s := montecarlo.Summarize(in)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 1.0, s.P05)
	assert.Equal(t, 3.0, s.P50)
	assert.Equal(t, 5.0, s.P95)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, in, "input must not be reordered")
}

func TestSummarize_Degenerate(t *testing.T) {
	empty := montecarlo.Summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Mean))
	assert.True(t, math.IsNaN(empty.P50))

	one := montecarlo.Summarize([]float64{0.8})
	assert.Equal(t, 0.0, one.StdDev)
	assert.Equal(t, 0.8, one.P95)
}

func TestResult_Summary(t *testing.T) {
	res := &montecarlo.Result{Series: map[vulnerability.Disease][]float64{
		vulnerability.ABD: {0.5, 0.7},
	}}
	assert.Equal(t, 2, res.Summary(vulnerability.ABD).Count)
	assert.Equal(t, 0, res.Summary(vulnerability.VBD).Count)
}
