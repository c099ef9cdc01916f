// SPDX-License-Identifier: MIT

package intervention

import (
	"fmt"
	"math"

	"github.com/katalvlaran/epimob/matrix"
	"github.com/katalvlaran/epimob/segment"
)

// groups is a validated partition resolved against N.
type groups struct {
	n     int
	hot   []int
	sub   []int
	isHot []bool
	isSub []bool
	empty bool
}

// checkInputs validates m and p and returns the resolved groups.
// Units in neither group are left out of every block.
func checkInputs(m matrix.Matrix, p segment.Partition) (groups, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return groups{}, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return groups{}, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return groups{}, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	n := m.Rows()
	if err := p.Validate(n); err != nil {
		return groups{}, fmt.Errorf("%w: %w", ErrInvalidPartition, err)
	}

	g := groups{
		n:     n,
		hot:   p.Hotspots,
		sub:   p.Suburbs,
		isHot: p.Labels(n),
		isSub: make([]bool, n),
		empty: p.IsEmpty(),
	}
	for _, i := range p.Suburbs {
		g.isSub[i] = true
	}

	return g, nil
}

func checkArea(area []float64, n int) error {
	if len(area) != n {
		return fmt.Errorf("len(area)=%d, n=%d: %w", len(area), n, ErrAreaLength)
	}
	for i, a := range area {
		if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
			return fmt.Errorf("area[%d]=%v: %w", i, a, ErrInvalidArea)
		}
	}
	return nil
}

// finishRows returns out with every row L1-normalized, turning an all-zero
// row into a full self-loop when selfLoop is set.
func finishRows(out *matrix.Dense, selfLoop bool) (*matrix.Dense, error) {
	norm, sums, err := matrix.NormalizeRowsL1(out)
	if err != nil {
		return nil, err
	}
	if !selfLoop {
		return norm, nil
	}
	for i, s := range sums {
		if s == 0 {
			if err = norm.Set(i, i, 1); err != nil {
				return nil, err
			}
		}
	}
	return norm, nil
}
