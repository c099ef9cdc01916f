// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/epimob/matrix"
)

// ExampleNormalizeRowsL1 turns raw trip counts into a row-stochastic matrix.
func ExampleNormalizeRowsL1() {
	trips, _ := matrix.NewDenseFromRows([][]float64{
		{30, 10},
		{5, 15},
	})
	p, norms, _ := matrix.NormalizeRowsL1(trips)
	fmt.Print(p)
	fmt.Println(norms)
	// Output:
	// [0.75, 0.25]
	// [0.25, 0.75]
	// [40 20]
}

// ExampleSpectralAbscissa shows the dominant real part of a non-symmetric matrix.
func ExampleSpectralAbscissa() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 5},
		{0, 4},
	})
	v, _ := matrix.SpectralAbscissa(a)
	fmt.Printf("%.4f\n", v)
	// Output:
	// 4.0000
}
