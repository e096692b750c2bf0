// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; call sites wrap with the
// operation name and callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative side.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	// Public indexers (At/Set) return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownBasis indicates a chain term whose basis element is not one of
	// the requested rows (FromColumns).
	ErrUnknownBasis = errors.New("matrix: basis element not among rows")
)
