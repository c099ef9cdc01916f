// SPDX-License-Identifier: MIT

package vulnerability

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/epimob/matrix"
)

// Evaluator computes vulnerability scores. The zero value is usable and
// logs to slog.Default(). An Evaluator holds no mutable state and is safe
// for concurrent use.
type Evaluator struct {
	logger *slog.Logger
}

// New returns an Evaluator configured by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) log() *slog.Logger {
	if e == nil || e.logger == nil {
		return slog.Default()
	}
	return e.logger
}

// VBD returns √λ_max of the vector-borne transmission matrix, or NaN when
// λ_max < 0. See TransmissionVBD for the matrix and its input errors.
func (e *Evaluator) VBD(m matrix.Matrix, mosquito, human []float64) (float64, error) {
	t, err := TransmissionVBD(m, mosquito, human)
	if err != nil {
		return math.NaN(), fmt.Errorf("VBD: %w", err)
	}
	lambda, err := e.leading(VBD, t)
	if err != nil || math.IsNaN(lambda) {
		return math.NaN(), err
	}

	return math.Sqrt(lambda), nil
}

// ABD returns λ_max of the airborne transmission matrix, or NaN when
// λ_max < 0. See TransmissionABD for the matrix and its input errors.
func (e *Evaluator) ABD(m matrix.Matrix, human, area []float64) (float64, error) {
	t, err := TransmissionABD(m, human, area)
	if err != nil {
		return math.NaN(), fmt.Errorf("ABD: %w", err)
	}

	return e.leading(ABD, t)
}

// Evaluate dispatches on d.
func (e *Evaluator) Evaluate(d Disease, m matrix.Matrix, in Inputs) (float64, error) {
	switch d {
	case ABD:
		return e.ABD(m, in.Human, in.Area)
	case VBD:
		return e.VBD(m, in.Mosquito, in.Human)
	default:
		return math.NaN(), fmt.Errorf("%v: %w", d, ErrUnknownDisease)
	}
}

// leading returns the spectral abscissa of t, or NaN with a warning if it is negative.
func (e *Evaluator) leading(d Disease, t *matrix.Dense) (float64, error) {
	lambda, err := matrix.SpectralAbscissa(t)
	if err != nil {
		return math.NaN(), fmt.Errorf("%v: %w", d, err)
	}
	if lambda < 0 {
		e.log().Warn("negative leading eigenvalue, vulnerability undefined",
			"disease", d.String(), "lambda", lambda, "n", t.Rows())
		return math.NaN(), nil
	}

	return lambda, nil
}

var defaultEvaluator = New()

// ScoreVBD scores m for a vector-borne disease with the default Evaluator.
func ScoreVBD(m matrix.Matrix, mosquito, human []float64) (float64, error) {
	return defaultEvaluator.VBD(m, mosquito, human)
}

// ScoreABD scores m for an airborne disease with the default Evaluator.
func ScoreABD(m matrix.Matrix, human, area []float64) (float64, error) {
	return defaultEvaluator.ABD(m, human, area)
}
