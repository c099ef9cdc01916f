// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/epimob/intervention"
	"github.com/katalvlaran/epimob/matrix"
	"github.com/katalvlaran/epimob/scenario"
	"github.com/katalvlaran/epimob/segment"
	"github.com/katalvlaran/epimob/vulnerability"
)

var (
	// ErrInvalidOption is returned for a trial count, worker count or sigma out of range.
	ErrInvalidOption = errors.New("montecarlo: invalid option")

	// ErrNilScenario is returned when Simulate is given no scenario.
	ErrNilScenario = errors.New("montecarlo: nil scenario")
)

// Result is the outcome of one Simulate call.
type Result struct {
	Variant   intervention.Variant                `json:"variant"`
	Partition segment.Partition                   `json:"partition"`
	Baseline  map[vulnerability.Disease]float64   `json:"baseline"`
	Series    map[vulnerability.Disease][]float64 `json:"series"`
	Excluded  map[vulnerability.Disease]int       `json:"excluded"`
	Trials    int                                 `json:"trials"`
	Seed      int64                               `json:"seed"`
	Workers   int                                 `json:"workers"`
	Elapsed   time.Duration                       `json:"elapsed"`
}

// Summary summarizes the ratio series of disease d.
func (r *Result) Summary(d vulnerability.Disease) Summary {
	return Summarize(r.Series[d])
}

// workerOut is one worker's contribution, kept separate until the join.
type workerOut struct {
	series   map[vulnerability.Disease][]float64
	excluded map[vulnerability.Disease]int
}

// Simulate runs the Monte Carlo intervention study on sc.
//
// Errors:
//   - ErrNilScenario, or the scenario's own validation error.
//   - ErrInvalidOption for trials < 1, workers < 1 or a negative/non-finite sigma.
//   - Evaluator input errors on the baseline (e.g. ABD with zero population).
//   - ctx.Err() when ctx is cancelled before all trials finish.
//
// A degenerate (NaN) baseline is not an error: every sample for that
// disease is excluded.
func Simulate(ctx context.Context, sc *scenario.Scenario, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrNilScenario
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("montecarlo: %w", err)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	var part segment.Partition
	if o.partition != nil {
		part = *o.partition
	} else {
		var err error
		if part, err = segment.Segment(sc.DensityOrDerived()); err != nil {
			return nil, fmt.Errorf("montecarlo: %w", err)
		}
	}

	m, err := sc.MobilityMatrix()
	if err != nil {
		return nil, fmt.Errorf("montecarlo: %w", err)
	}
	ev := vulnerability.New(vulnerability.WithLogger(logger))
	in := sc.Inputs()

	baseline := make(map[vulnerability.Disease]float64, 2)
	for _, d := range vulnerability.Diseases() {
		v, err := score(ev, d, m, in)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: baseline: %w", err)
		}
		if math.IsNaN(v) {
			logger.Warn("baseline undefined, excluding every sample",
				"scenario", sc.Name, "disease", d.String())
		}
		baseline[d] = v
	}

	gen, err := intervention.New(o.variant, part, sc.Area, intervention.WithSigma(o.sigma))
	if err != nil {
		return nil, fmt.Errorf("montecarlo: %w", err)
	}

	logger.Debug("simulation start",
		"scenario", sc.Name, "variant", o.variant.String(), "trials", o.trials,
		"workers", o.workers, "hotspots", len(part.Hotspots), "suburbs", len(part.Suburbs))

	outs := make([]workerOut, o.workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < o.workers; w++ {
		count := o.trials / o.workers
		if w < o.trials%o.workers {
			count++
		}
		local := m.Clone()
		g.Go(func() error {
			out, err := runWorker(gctx, gen, ev, local, in, baseline, count, intervention.DeriveRNG(o.seed, uint64(w)))
			if err != nil {
				return err
			}
			outs[w] = out
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Variant:   o.variant,
		Partition: part,
		Baseline:  baseline,
		Series:    make(map[vulnerability.Disease][]float64, 2),
		Excluded:  make(map[vulnerability.Disease]int, 2),
		Trials:    o.trials,
		Seed:      o.seed,
		Workers:   o.workers,
	}
	for _, d := range vulnerability.Diseases() {
		series := make([]float64, 0, o.trials)
		for _, out := range outs {
			series = append(series, out.series[d]...)
			res.Excluded[d] += out.excluded[d]
		}
		res.Series[d] = series
	}
	res.Elapsed = time.Since(start)

	logger.Info("simulation finished",
		"scenario", sc.Name, "variant", o.variant.String(), "trials", o.trials,
		"abd_samples", len(res.Series[vulnerability.ABD]),
		"vbd_samples", len(res.Series[vulnerability.VBD]),
		"elapsed", res.Elapsed)

	return res, nil
}

// runWorker performs count trials with its own rng and matrix copy.
func runWorker(
	ctx context.Context,
	gen intervention.Generator,
	ev *vulnerability.Evaluator,
	m matrix.Matrix,
	in vulnerability.Inputs,
	baseline map[vulnerability.Disease]float64,
	count int,
	rng *rand.Rand,
) (workerOut, error) {
	out := workerOut{
		series:   make(map[vulnerability.Disease][]float64, 2),
		excluded: make(map[vulnerability.Disease]int, 2),
	}
	for t := 0; t < count; t++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		modified, err := gen.Generate(m, rng)
		if err != nil {
			return out, err
		}
		for _, d := range vulnerability.Diseases() {
			v, err := score(ev, d, modified, in)
			if err != nil {
				return out, err
			}
			if ratio, ok := sampleRatio(v, baseline[d]); ok {
				out.series[d] = append(out.series[d], ratio)
			} else {
				out.excluded[d]++
			}
		}
	}
	return out, nil
}

// score evaluates d on m. A zero population or area makes the score
// undefined rather than failing the run: it is reported as NaN.
func score(ev *vulnerability.Evaluator, d vulnerability.Disease, m matrix.Matrix, in vulnerability.Inputs) (float64, error) {
	v, err := ev.Evaluate(d, m, in)
	if errors.Is(err, vulnerability.ErrZeroDenominator) {
		return math.NaN(), nil
	}
	return v, err
}

// sampleRatio returns v/base when base > 0 and both the score and the
// ratio are finite.
func sampleRatio(v, base float64) (float64, bool) {
	if !(base > 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	r := v / base
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func (o options) validate() error {
	if o.trials < 1 {
		return fmt.Errorf("%w: trials=%d", ErrInvalidOption, o.trials)
	}
	if o.workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidOption, o.workers)
	}
	if o.sigma < 0 || math.IsNaN(o.sigma) || math.IsInf(o.sigma, 0) {
		return fmt.Errorf("%w: sigma=%v", ErrInvalidOption, o.sigma)
	}
	return nil
}
