// SPDX-License-Identifier: MIT

package intervention

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/epimob/matrix"
	"github.com/katalvlaran/epimob/segment"
)

// cellFunc returns the unnormalized mass for origin i → destination j.
// fromHot/toHot give the groups; size is the destination group size.
type cellFunc func(i, j int, fromHot, toHot bool, size int) float64

// fillBlocks builds an N×N matrix from scratch, visiting classified cells in
// row-major order, then normalizes rows with zero rows becoming self-loops.
// An empty partition classifies nothing, so every unit keeps to itself.
func fillBlocks(g groups, cell cellFunc) (*matrix.Dense, error) {
	if g.empty {
		return matrix.Identity(g.n)
	}
	out, err := matrix.NewDense(g.n, g.n)
	if err != nil {
		return nil, err
	}
	nh, ns := len(g.hot), len(g.sub)
	err = out.Apply(func(i, j int, _ float64) float64 {
		if !g.isHot[i] && !g.isSub[i] {
			return 0
		}
		switch {
		case g.isHot[j]:
			return cell(i, j, g.isHot[i], true, nh)
		case g.isSub[j]:
			return cell(i, j, g.isHot[i], false, ns)
		}
		return 0
	})
	if err != nil {
		return nil, err
	}

	return finishRows(out, true)
}

// GroupMixing draws δ ~ U[0,1] once per call and sets κ = 1−δ.
//
//	hotspot → hotspot  κ/|H|      hotspot → suburb   (1−κ)/|S|
//	suburb  → suburb   δ/|S|      suburb  → hotspot  (1−δ)/|H|
//
// The input matrix only supplies N. Rows are renormalized; an empty row
// becomes a full self-loop.
type GroupMixing struct {
	Partition segment.Partition
}

// Generate implements Generator.
func (gm GroupMixing) Generate(m matrix.Matrix, rng *rand.Rand) (*matrix.Dense, error) {
	delta := distuv.Uniform{Min: 0, Max: 1, Src: rngOrDefault(rng)}.Rand()

	return gm.WithDelta(m, delta)
}

// WithDelta builds the GroupMixing matrix for a fixed δ in [0, 1].
func (gm GroupMixing) WithDelta(m matrix.Matrix, delta float64) (*matrix.Dense, error) {
	if math.IsNaN(delta) || delta < 0 || delta > 1 {
		return nil, fmt.Errorf("intervention: delta %v outside [0, 1]", delta)
	}
	g, err := checkInputs(m, gm.Partition)
	if err != nil {
		return nil, err
	}
	return gm.build(g, delta)
}

func (gm GroupMixing) build(g groups, delta float64) (*matrix.Dense, error) {
	kappa := 1 - delta

	return fillBlocks(g, func(_, _ int, fromHot, toHot bool, size int) float64 {
		var w float64
		switch {
		case fromHot && toHot:
			w = kappa
		case fromHot:
			w = 1 - kappa
		case !toHot:
			w = delta
		default:
			w = 1 - delta
		}
		return w / float64(size)
	})
}

// AreaMixing targets within-group mixing from relative land area:
//
//	γ  = max(ΣA_S, AreaFloor) / max(ΣA_H, AreaFloor)
//	κ* = 1/(γ+1)   (hotspot rows)
//	δ* = γ/(γ+1)   (suburb rows)
//
// Each classified cell draws s ~ N(target, Sigma) clamped at 0; within-group
// cells get s/|group|, cross-group cells max(1−s, 0)/|group|. Rows are
// renormalized; an empty row becomes a full self-loop.
type AreaMixing struct {
	Partition segment.Partition
	Area      []float64
	Sigma     float64
}

// Targets returns (κ*, δ*) for the partition and area.
// Indices beyond len(Area) are skipped.
func (am AreaMixing) Targets() (kappa, delta float64) {
	sum := func(idx []int) (total float64) {
		for _, i := range idx {
			if i >= 0 && i < len(am.Area) {
				total += am.Area[i]
			}
		}
		return total
	}
	hot, sub := sum(am.Partition.Hotspots), sum(am.Partition.Suburbs)
	gamma := math.Max(sub, AreaFloor) / math.Max(hot, AreaFloor)

	return 1 / (gamma + 1), gamma / (gamma + 1)
}

// Generate implements Generator.
func (am AreaMixing) Generate(m matrix.Matrix, rng *rand.Rand) (*matrix.Dense, error) {
	g, err := checkInputs(m, am.Partition)
	if err != nil {
		return nil, err
	}
	if err = checkArea(am.Area, g.n); err != nil {
		return nil, err
	}
	kappa, delta := am.Targets()
	src := rngOrDefault(rng)
	hotDraw := distuv.Normal{Mu: kappa, Sigma: am.Sigma, Src: src}
	subDraw := distuv.Normal{Mu: delta, Sigma: am.Sigma, Src: src}

	return fillBlocks(g, func(_, _ int, fromHot, toHot bool, size int) float64 {
		var s float64
		if fromHot {
			s = hotDraw.Rand()
		} else {
			s = subDraw.Rand()
		}
		s = math.Max(s, 0)
		if fromHot == toHot {
			return s / float64(size)
		}
		return math.Max(1-s, 0) / float64(size)
	})
}

// New returns the Generator for variant. area is read only by RandomizedB.
func New(variant Variant, p segment.Partition, area []float64, opts ...Option) (Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch variant {
	case Direct:
		return Redistribution{Partition: p}, nil
	case RandomizedA:
		return GroupMixing{Partition: p}, nil
	case RandomizedB:
		return AreaMixing{Partition: p, Area: area, Sigma: o.sigma}, nil
	}
	return nil, fmt.Errorf("%v: %w", variant, ErrUnknownVariant)
}
