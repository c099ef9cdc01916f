// SPDX-License-Identifier: MIT

package vulnerability

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadInput wraps every shape, length or finiteness violation.
	// The matrix sentinel that triggered it is wrapped alongside.
	ErrBadInput = errors.New("vulnerability: bad input")

	// ErrZeroDenominator is returned by ABD when a unit has zero population or area.
	ErrZeroDenominator = errors.New("vulnerability: zero population or area")

	// ErrUnknownDisease is returned for a Disease value outside ABD/VBD.
	ErrUnknownDisease = errors.New("vulnerability: unknown disease")
)

// Disease selects a transmission model.
type Disease int

const (
	// ABD is an airborne disease: contact happens where people mix.
	ABD Disease = iota
	// VBD is a vector-borne disease: transmission goes host → vector → host.
	VBD
)

// Diseases lists every supported model in a fixed order.
func Diseases() []Disease { return []Disease{ABD, VBD} }

func (d Disease) String() string {
	switch d {
	case ABD:
		return "ABD"
	case VBD:
		return "VBD"
	default:
		return fmt.Sprintf("Disease(%d)", int(d))
	}
}

// ParseDisease accepts "abd" or "vbd" in any case.
func ParseDisease(s string) (Disease, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ABD":
		return ABD, nil
	case "VBD":
		return VBD, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDisease)
}

// MarshalText lets Disease act as a JSON object key.
func (d Disease) MarshalText() ([]byte, error) {
	if d != ABD && d != VBD {
		return nil, fmt.Errorf("%d: %w", int(d), ErrUnknownDisease)
	}
	return []byte(d.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (d *Disease) UnmarshalText(b []byte) error {
	v, err := ParseDisease(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Inputs bundles the per-unit vectors both models read from.
// Mosquito is only used by VBD, Area only by ABD.
type Inputs struct {
	Human    []float64
	Mosquito []float64
	Area     []float64
}
