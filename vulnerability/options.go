// SPDX-License-Identifier: MIT

package vulnerability

import "log/slog"

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for degenerate-eigenvalue warnings.
// A nil logger falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}
