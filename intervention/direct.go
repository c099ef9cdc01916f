// SPDX-License-Identifier: MIT

package intervention

import (
	"math/rand/v2"

	"github.com/katalvlaran/epimob/matrix"
	"github.com/katalvlaran/epimob/segment"
)

// Redistribution severs hotspot→hotspot mobility.
//
// For every hotspot row i that has at least one suburb destination:
//  1. removed = Σ M[i][j] over hotspots j ≠ i; those entries become 0.
//  2. removed is added to the suburb columns of row i in proportion to
//     their current weights, or uniformly when they are all zero.
//
// Self-retention M[i][i] is kept. A hotspot row with no suburb to receive
// the mass is left as it was. Every row is then renormalized; a row
// summing to zero stays zero. An empty hotspot set returns a copy of m.
type Redistribution struct {
	Partition segment.Partition
}

// Generate implements Generator. rng is ignored.
func (r Redistribution) Generate(m matrix.Matrix, _ *rand.Rand) (*matrix.Dense, error) {
	g, err := checkInputs(m, r.Partition)
	if err != nil {
		return nil, err
	}
	rows, err := denseRows(m)
	if err != nil {
		return nil, err
	}
	if len(g.hot) == 0 || len(g.sub) == 0 {
		return matrix.NewDenseFromRows(rows)
	}

	var removed, weight float64
	for _, i := range g.hot {
		row := rows[i]
		removed = 0
		for _, j := range g.hot {
			if j == i {
				continue
			}
			removed += row[j]
			row[j] = 0
		}
		if removed == 0 {
			continue
		}
		weight = 0
		for _, s := range g.sub {
			weight += row[s]
		}
		for _, s := range g.sub {
			if weight > 0 {
				row[s] += removed * row[s] / weight
			} else {
				row[s] += removed / float64(len(g.sub))
			}
		}
	}

	out, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}
	return finishRows(out, false)
}

// denseRows copies m into a fresh row slice.
func denseRows(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	n := m.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}
	return rows, nil
}
