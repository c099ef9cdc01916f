// SPDX-License-Identifier: MIT

package montecarlo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/epimob/intervention"
	"github.com/katalvlaran/epimob/montecarlo"
	"github.com/katalvlaran/epimob/scenario"
	"github.com/katalvlaran/epimob/vulnerability"
)

// ExampleSimulate runs the deterministic redistribution on three identical,
// isolated towns. Every unit is a hotspot, so nothing changes and every
// ratio is 1.
func ExampleSimulate() {
	sc := &scenario.Scenario{
		Name:     "isolated",
		Human:    []float64{100, 100, 100},
		Mosquito: []float64{100, 100, 100},
		Area:     []float64{1, 1, 1},
		Mobility: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	}
	res, err := montecarlo.Simulate(context.Background(), sc,
		montecarlo.WithVariant(intervention.Direct),
		montecarlo.WithTrials(4),
		montecarlo.WithLogger(quiet()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range vulnerability.Diseases() {
		s := res.Summary(d)
		fmt.Printf("%v baseline=%.1f samples=%d mean=%.3f\n", d, res.Baseline[d], s.Count, s.Mean)
	}
	// Output:
	// ABD baseline=200.0 samples=4 mean=1.000
	// VBD baseline=1.0 samples=4 mean=1.000
}
