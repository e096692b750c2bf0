// SPDX-License-Identifier: MIT

// Package stream - the Filtered contract, sentinel errors and generic validation.
package stream

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrFaceAfterCoface indicates a face whose filtration index exceeds its coface's.
	ErrFaceAfterCoface = errors.New("stream: face appears after its coface")

	// ErrMissingFace indicates a boundary face that the stream never yields.
	ErrMissingFace = errors.New("stream: boundary face not in stream")

	// ErrOutOfOrder indicates iteration that is not sorted by filtration index.
	ErrOutOfOrder = errors.New("stream: elements not in filtration order")

	// ErrNotFinalized indicates use of an Explicit stream before Finalize.
	ErrNotFinalized = errors.New("stream: stream not finalized")

	// ErrBoundaryShape indicates Boundary and BoundaryCoefficients of different length.
	ErrBoundaryShape = errors.New("stream: boundary and coefficients differ in length")

	// ErrInvalidSimplex indicates an empty vertex set or a negative or repeated vertex.
	ErrInvalidSimplex = errors.New("stream: invalid simplex")

	// ErrInvalidEdge indicates a flag-complex edge that is a loop or references an unknown vertex.
	ErrInvalidEdge = errors.New("stream: invalid edge")
)

// Filtered is a filtered chain complex presented as a stream of basis elements.
//
// Contract:
//   - All yields every element exactly once, in non-decreasing FiltrationIndex,
//     each face before its cofaces.
//   - Boundary(u)[i] has coefficient BoundaryCoefficients(u)[i].
//   - FiltrationIndex(face) ≤ FiltrationIndex(coface) for every boundary face.
//   - Implementations must not change while a computation iterates them.
type Filtered[U comparable] interface {
	All() iter.Seq[U]
	Dimension(u U) int
	FiltrationIndex(u U) int
	Boundary(u U) []U
	BoundaryCoefficients(u U) []int
}

// Ready returns ErrNotFinalized when s reports, through a Finalized method,
// that it is not ready for iteration. Streams without such a method are
// always ready.
func Ready[U comparable](s Filtered[U]) error {
	if f, ok := s.(interface{ Finalized() bool }); ok && !f.Finalized() {
		return fmt.Errorf("Ready: %w", ErrNotFinalized)
	}

	return nil
}

// Validate checks a stream against the Filtered contract.
//
// Implementation:
//   - Stage 1: walk All once, rejecting decreasing indices and duplicates.
//   - Stage 2: for every element, every face must have been yielded earlier
//     with an index not above the element's.
//
// Errors: ErrNotFinalized, ErrOutOfOrder, ErrMissingFace, ErrFaceAfterCoface, ErrBoundaryShape,
// each wrapped with the offending elements.
//
// Complexity: O(n + total boundary size) time, O(n) space.
func Validate[U comparable](s Filtered[U]) error {
	if err := Ready(s); err != nil {
		return err
	}
	seen := make(map[U]struct{})
	var (
		prev    int
		idx     int
		started bool
	)
	for u := range s.All() {
		idx = s.FiltrationIndex(u)
		if started && idx < prev {
			return fmt.Errorf("Validate: %v at index %d after index %d: %w", u, idx, prev, ErrOutOfOrder)
		}
		if _, dup := seen[u]; dup {
			return fmt.Errorf("Validate: %v yielded twice: %w", u, ErrOutOfOrder)
		}
		faces := s.Boundary(u)
		if len(faces) != len(s.BoundaryCoefficients(u)) {
			return fmt.Errorf("Validate: %v: %w", u, ErrBoundaryShape)
		}
		for _, face := range faces {
			if _, ok := seen[face]; !ok {
				return fmt.Errorf("Validate: face %v of %v: %w", face, u, ErrMissingFace)
			}
			if s.FiltrationIndex(face) > idx {
				return fmt.Errorf("Validate: face %v (index %d) of %v (index %d): %w",
					face, s.FiltrationIndex(face), u, idx, ErrFaceAfterCoface)
			}
		}
		seen[u] = struct{}{}
		prev, started = idx, true
	}

	return nil
}

// Collect returns the elements of s in stream order.
func Collect[U comparable](s Filtered[U]) []U {
	var out []U
	for u := range s.All() {
		out = append(out, u)
	}

	return out
}
