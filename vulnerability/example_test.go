// SPDX-License-Identifier: MIT

package vulnerability_test

import (
	"fmt"

	"github.com/katalvlaran/epimob/matrix"
	"github.com/katalvlaran/epimob/vulnerability"
)

// Example scores three isolated districts: with no mobility each unit is
// its own outbreak and the scores reduce to single-unit formulas.
func Example() {
	m, _ := matrix.Identity(3)
	human := []float64{100, 100, 100}
	mosquito := []float64{100, 100, 100}
	area := []float64{1, 1, 1}

	vbd, _ := vulnerability.ScoreVBD(m, mosquito, human)
	abd, _ := vulnerability.ScoreABD(m, human, area)
	fmt.Printf("VBD=%.3f ABD=%.1f\n", vbd, abd)
	// Output:
	// VBD=1.000 ABD=200.0
}
