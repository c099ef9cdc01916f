// SPDX-License-Identifier: MIT

package intervention

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/epimob/matrix"
)

var (
	// ErrInvalidMatrix wraps the matrix sentinel for a nil, non-square,
	// non-finite or negative mobility matrix.
	ErrInvalidMatrix = errors.New("intervention: invalid mobility matrix")

	// ErrInvalidPartition wraps segment.ErrIndexOutOfRange or segment.ErrOverlap.
	ErrInvalidPartition = errors.New("intervention: invalid partition")

	// ErrAreaLength is returned by AreaMixing when len(area) != N.
	ErrAreaLength = errors.New("intervention: area length does not match matrix")

	// ErrInvalidArea is returned by AreaMixing for a NaN, Inf or negative area.
	ErrInvalidArea = errors.New("intervention: area must be finite and non-negative")

	// ErrUnknownVariant is returned by ParseVariant and New.
	ErrUnknownVariant = errors.New("intervention: unknown variant")
)

const (
	// DefaultSigma is the standard deviation of the AreaMixing per-cell draw.
	DefaultSigma = 0.1

	// AreaFloor replaces an empty group's total area when forming γ.
	AreaFloor = 1e-12
)

// Generator produces a modified mobility matrix from m.
// Implementations never mutate m and return a new row-stochastic matrix.
type Generator interface {
	Generate(m matrix.Matrix, rng *rand.Rand) (*matrix.Dense, error)
}

// Variant tags a Generator implementation.
type Variant int

const (
	// Direct is the deterministic hotspot→suburb redistribution.
	Direct Variant = iota
	// RandomizedA is group mixing with a uniform δ per call.
	RandomizedA
	// RandomizedB is area-informed group mixing with Gaussian per-cell noise.
	RandomizedB
)

var variantNames = map[Variant]string{
	Direct:      "direct",
	RandomizedA: "randomized-a",
	RandomizedB: "randomized-b",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts "direct", "randomized-a" and "randomized-b"
// (case-insensitive; "a" and "b" are shorthands).
func ParseVariant(s string) (Variant, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "a":
		return RandomizedA, nil
	case "b":
		return RandomizedB, nil
	}
	for v, name := range variantNames {
		if name == key {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
}

// MarshalText renders the variant name.
func (v Variant) MarshalText() ([]byte, error) {
	if _, ok := variantNames[v]; !ok {
		return nil, fmt.Errorf("%d: %w", int(v), ErrUnknownVariant)
	}
	return []byte(v.String()), nil
}

// UnmarshalText parses a variant name.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
