// SPDX-License-Identifier: MIT

// Package scenario holds the per-unit inputs of one study area and loads
// them from YAML (or JSON, which YAML accepts).
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/epimob/matrix"
	"github.com/katalvlaran/epimob/vulnerability"
)

// RowSumTolerance is the allowed deviation of a mobility row sum from 1.
const RowSumTolerance = matrix.DefaultRowSumTolerance

var (
	// ErrEmpty is returned when the scenario has no units.
	ErrEmpty = errors.New("scenario: no spatial units")

	// ErrLength is returned when a per-unit vector length differs from N.
	ErrLength = errors.New("scenario: vector length mismatch")

	// ErrShape is returned when the mobility matrix is not N×N.
	ErrShape = errors.New("scenario: mobility matrix must be N×N")

	// ErrValue is returned for NaN, Inf or negative entries, or a non-positive area.
	ErrValue = errors.New("scenario: invalid value")

	// ErrNotStochastic is returned when a mobility row does not sum to 1.
	ErrNotStochastic = errors.New("scenario: mobility rows must sum to 1")
)

// Scenario is one study area. All slices are indexed by spatial unit.
// Density is optional; when empty it is derived as Human/Area.
type Scenario struct {
	Name     string      `json:"name" yaml:"name"`
	Human    []float64   `json:"human" yaml:"human"`
	Mosquito []float64   `json:"mosquito" yaml:"mosquito"`
	Area     []float64   `json:"area" yaml:"area"`
	Density  []float64   `json:"density,omitempty" yaml:"density,omitempty"`
	Mobility [][]float64 `json:"mobility" yaml:"mobility"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// N is the number of spatial units.
func (s *Scenario) N() int { return len(s.Human) }

// Validate checks lengths, shape, finiteness, sign and row sums.
func (s *Scenario) Validate() error {
	n := len(s.Human)
	if n == 0 {
		return ErrEmpty
	}
	vecs := []struct {
		name     string
		v        []float64
		optional bool
	}{
		{"human", s.Human, false},
		{"mosquito", s.Mosquito, false},
		{"area", s.Area, false},
		{"density", s.Density, true},
	}
	for _, vec := range vecs {
		if vec.optional && len(vec.v) == 0 {
			continue
		}
		if len(vec.v) != n {
			return fmt.Errorf("%s has %d entries, want %d: %w", vec.name, len(vec.v), n, ErrLength)
		}
		for i, x := range vec.v {
			if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
				return fmt.Errorf("%s[%d]=%v: %w", vec.name, i, x, ErrValue)
			}
		}
	}
	for i, a := range s.Area {
		if a == 0 {
			return fmt.Errorf("area[%d] is zero: %w", i, ErrValue)
		}
	}

	if len(s.Mobility) != n {
		return fmt.Errorf("mobility has %d rows, want %d: %w", len(s.Mobility), n, ErrShape)
	}
	for i, row := range s.Mobility {
		if len(row) != n {
			return fmt.Errorf("mobility row %d has %d columns, want %d: %w", i, len(row), n, ErrShape)
		}
	}
	m, err := s.MobilityMatrix()
	if err != nil {
		return fmt.Errorf("mobility: %w: %w", ErrValue, err)
	}
	if err = matrix.ValidateNonNegative(m); err != nil {
		return fmt.Errorf("mobility: %w: %w", ErrValue, err)
	}
	if err = matrix.ValidateRowStochastic(m, RowSumTolerance); err != nil {
		return fmt.Errorf("mobility: %w: %w", ErrNotStochastic, err)
	}

	return nil
}

// DensityOrDerived returns a copy of Density, or Human[i]/Area[i] when
// Density is empty.
func (s *Scenario) DensityOrDerived() []float64 {
	out := make([]float64, len(s.Human))
	if len(s.Density) == len(s.Human) {
		copy(out, s.Density)
		return out
	}
	for i := range out {
		if s.Area[i] != 0 {
			out[i] = s.Human[i] / s.Area[i]
		}
	}
	return out
}

// MobilityMatrix copies Mobility into a *matrix.Dense.
func (s *Scenario) MobilityMatrix() (*matrix.Dense, error) {
	return matrix.NewDenseFromRows(s.Mobility)
}

// Inputs returns the per-unit vectors in the form the evaluators take.
// The slices are shared with s.
func (s *Scenario) Inputs() vulnerability.Inputs {
	return vulnerability.Inputs{Human: s.Human, Mosquito: s.Mosquito, Area: s.Area}
}
