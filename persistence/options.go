// SPDX-License-Identifier: MIT

// Package persistence: functional configuration of an Engine.
//
//   - Option / options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies defaults then the caller's options.
package persistence

import "log/slog"

// Defaults.
const (
	// DefaultMinDimension is the lowest emitted interval dimension.
	DefaultMinDimension = 0

	// DefaultMaxDimension is the exclusive upper bound on emitted interval
	// dimensions; elements up to DefaultMaxDimension+1 are processed.
	DefaultMaxDimension = 2

	// DefaultVerification toggles the R = D·V self-check after every decomposition.
	DefaultVerification = false
)

const (
	panicNegativeDimension = "persistence: dimension bound must be non-negative"
	panicDimensionOrder    = "persistence: minimum dimension must not exceed maximum"
	panicNilLogger         = "persistence: WithLogger: logger must not be nil"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	minDim int          // ≥ 0; DefaultMinDimension
	maxDim int          // ≥ minDim; DefaultMaxDimension
	logger *slog.Logger // never nil; discards by default
	verify bool         // DefaultVerification
}

func gatherOptions(opts ...Option) options {
	o := options{
		minDim: DefaultMinDimension,
		maxDim: DefaultMaxDimension,
		logger: slog.New(slog.DiscardHandler),
		verify: DefaultVerification,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMinDimension sets the lowest emitted interval dimension.
// Panics if d < 0.
func WithMinDimension(d int) Option {
	if d < 0 {
		panic(panicNegativeDimension)
	}

	return func(o *options) { o.minDim = d }
}

// WithMaxDimension sets the exclusive upper bound on emitted interval
// dimensions. Panics if d < 0.
func WithMaxDimension(d int) Option {
	if d < 0 {
		panic(panicNegativeDimension)
	}

	return func(o *options) { o.maxDim = d }
}

// WithDimensions sets both bounds: emitted intervals satisfy min ≤ dim < max.
// Panics if min < 0 or min > max.
func WithDimensions(minDim, maxDim int) Option {
	if minDim < 0 || maxDim < 0 {
		panic(panicNegativeDimension)
	}
	if minDim > maxDim {
		panic(panicDimensionOrder)
	}

	return func(o *options) { o.minDim, o.maxDim = minDim, maxDim }
}

// WithLogger routes the engine's Debug-level reduction logs to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithVerification enables (or disables) the exact R = D·V check after every
// decomposition; a failed check returns ErrDecompositionMismatch.
func WithVerification(on bool) Option {
	return func(o *options) { o.verify = on }
}
