// SPDX-License-Identifier: MIT

// Package persistence: sentinel error set.
// Every message is prefixed with "persistence: ..."; detection sites wrap
// with fmt.Errorf("Op: ...: %w", ErrX) so callers match with errors.Is.

package persistence

import "errors"

var (
	// ErrFiltrationOrder indicates a stream whose boundary relation contradicts
	// its filtration: a face missing or entering after its coface, or a
	// resolved pair whose pivot sorts after the column that claims it.
	ErrFiltrationOrder = errors.New("persistence: filtration order violated")

	// ErrDecompositionMismatch indicates a failed exact check of R = D·V
	// (or of the triangularity and pivot uniqueness of the factors).
	ErrDecompositionMismatch = errors.New("persistence: decomposition check failed")

	// ErrUnknownPolicy indicates a Policy with an out-of-range Witness or Polarity.
	ErrUnknownPolicy = errors.New("persistence: unknown output policy")

	// ErrInvalidConfig indicates a Config that fails validation.
	ErrInvalidConfig = errors.New("persistence: invalid config")
)
