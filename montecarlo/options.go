// SPDX-License-Identifier: MIT

package montecarlo

import (
	"log/slog"

	"github.com/katalvlaran/epimob/intervention"
	"github.com/katalvlaran/epimob/segment"
)

const (
	// DefaultTrials is the number of interventions sampled per run.
	DefaultTrials = 1000
	// DefaultWorkers runs every trial on one goroutine.
	DefaultWorkers = 1
	// DefaultVariant is the generator used when none is chosen.
	DefaultVariant = intervention.RandomizedA
)

type options struct {
	variant   intervention.Variant
	trials    int
	seed      int64
	workers   int
	sigma     float64
	partition *segment.Partition
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		variant: DefaultVariant,
		trials:  DefaultTrials,
		workers: DefaultWorkers,
		sigma:   intervention.DefaultSigma,
	}
}

// Option configures Simulate.
type Option func(*options)

// WithVariant selects the intervention generator.
func WithVariant(v intervention.Variant) Option { return func(o *options) { o.variant = v } }

// WithTrials sets the number of trials; it must be at least 1.
func WithTrials(n int) Option { return func(o *options) { o.trials = n } }

// WithSeed roots the per-worker RNG streams. Zero selects the default seed.
func WithSeed(seed int64) Option { return func(o *options) { o.seed = seed } }

// WithWorkers sets the number of concurrent workers; it must be at least 1.
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithSigma sets the RandomizedB per-cell standard deviation.
func WithSigma(sigma float64) Option { return func(o *options) { o.sigma = sigma } }

// WithPartition skips the segmenter and uses p as given.
func WithPartition(p segment.Partition) Option {
	return func(o *options) { o.partition = &p }
}

// WithLogger sets the logger for run progress and degenerate-eigenvalue warnings.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }
