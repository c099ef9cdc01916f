// SPDX-License-Identifier: MIT

package intervention

import (
	"fmt"
	"math"
)

type options struct {
	sigma float64
}

func defaultOptions() options {
	return options{sigma: DefaultSigma}
}

// Option configures a Generator built by New.
type Option func(*options)

// WithSigma sets the per-cell standard deviation used by RandomizedB.
// It panics on a negative or non-finite sigma.
func WithSigma(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("intervention: WithSigma(%v): sigma must be finite and >= 0", sigma))
	}
	return func(o *options) { o.sigma = sigma }
}
