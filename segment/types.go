// SPDX-License-Identifier: MIT

package segment

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDensity is returned when the density vector has no entries.
	ErrEmptyDensity = errors.New("segment: empty density vector")

	// ErrNonFinite is returned when a density entry is NaN or ±Inf.
	ErrNonFinite = errors.New("segment: density contains NaN or Inf")

	// ErrIndexOutOfRange is returned by Partition.Validate for an index outside [0, n).
	ErrIndexOutOfRange = errors.New("segment: unit index out of range")

	// ErrOverlap is returned by Partition.Validate when a unit is listed twice.
	ErrOverlap = errors.New("segment: unit listed more than once")
)

// Partition is a hotspot/suburb split of the units 0..N-1.
//
// Both slices hold original unit indices. Segment fills them in ascending
// density order; hand-built partitions may use any order.
type Partition struct {
	Hotspots []int `json:"hotspots" yaml:"hotspots"`
	Suburbs  []int `json:"suburbs" yaml:"suburbs"`
}

// Validate checks that every index lies in [0, n) and that no unit appears
// twice across both groups. It does not require the union to cover 0..n-1.
func (p Partition) Validate(n int) error {
	seen := make(map[int]struct{}, len(p.Hotspots)+len(p.Suburbs))
	check := func(group string, idx []int) error {
		for _, i := range idx {
			if i < 0 || i >= n {
				return fmt.Errorf("%s index %d (n=%d): %w", group, i, n, ErrIndexOutOfRange)
			}
			if _, dup := seen[i]; dup {
				return fmt.Errorf("%s index %d: %w", group, i, ErrOverlap)
			}
			seen[i] = struct{}{}
		}
		return nil
	}
	if err := check("hotspot", p.Hotspots); err != nil {
		return err
	}

	return check("suburb", p.Suburbs)
}

// Labels returns a length-n mask with true at hotspot positions.
// Out-of-range indices are ignored; call Validate first.
func (p Partition) Labels(n int) []bool {
	out := make([]bool, n)
	for _, i := range p.Hotspots {
		if i >= 0 && i < n {
			out[i] = true
		}
	}

	return out
}

// IsEmpty reports whether the partition names no units at all.
func (p Partition) IsEmpty() bool {
	return len(p.Hotspots) == 0 && len(p.Suburbs) == 0
}
