// SPDX-License-Identifier: MIT

// Package stream - Explicit, a hand-built filtered simplicial complex.
//
// Lifecycle:
//   - Build: AddElement / AddSimplex / Remove / EnsureAllFaces (mutating).
//   - Finalize: sort into filtration order and validate face ≤ coface.
//   - Use: All / Dimension / FiltrationIndex / Boundary (read-only, shareable).
//
// Any mutation after Finalize un-finalizes the stream.
package stream

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Explicit is a filtered simplicial complex given element by element.
type Explicit struct {
	index     map[Simplex]int
	order     []Simplex
	finalized bool
}

var _ Filtered[Simplex] = (*Explicit)(nil)

// NewExplicit returns an empty stream.
func NewExplicit() *Explicit {
	return &Explicit{index: make(map[Simplex]int)}
}

// AddElement inserts s at filtration index idx, replacing any previous index.
func (e *Explicit) AddElement(s Simplex, idx int) {
	e.index[s] = idx
	e.finalized = false
}

// AddSimplex inserts the simplex spanned by vs at filtration index idx.
func (e *Explicit) AddSimplex(idx int, vs ...int) error {
	s, err := NewSimplex(vs...)
	if err != nil {
		return err
	}
	e.AddElement(s, idx)

	return nil
}

// Remove deletes s and reports whether it was present.
func (e *Explicit) Remove(s Simplex) bool {
	if _, ok := e.index[s]; !ok {
		return false
	}
	delete(e.index, s)
	e.finalized = false

	return true
}

// Contains reports whether s was added.
func (e *Explicit) Contains(s Simplex) bool {
	_, ok := e.index[s]
	return ok
}

// Len returns the number of simplices.
func (e *Explicit) Len() int { return len(e.index) }

// EnsureAllFaces adds every missing face of every simplex. A missing face
// receives the minimum filtration index among the cofaces that required it,
// so the result always satisfies face ≤ coface for the added faces.
//
// Implementation:
//   - Stage 1: bucket the simplices by dimension.
//   - Stage 2: sweep dimensions top-down; when level d is reached every
//     simplex of dimension d, original or added, already has its final index.
//
// Complexity: O(total number of faces).
func (e *Explicit) EnsureAllFaces() {
	levels := make(map[int][]Simplex)
	top := -1
	for s := range e.index {
		levels[s.Dimension()] = append(levels[s.Dimension()], s)
		top = max(top, s.Dimension())
	}

	added := make(map[Simplex]int)
	var idx int
	for d := top; d >= 1; d-- {
		for _, s := range levels[d] {
			if v, ok := e.index[s]; ok {
				idx = v
			} else {
				idx = added[s]
			}
			for _, face := range s.Boundary() {
				if _, ok := e.index[face]; ok {
					continue
				}
				if prev, ok := added[face]; ok {
					added[face] = min(prev, idx)
					continue
				}
				added[face] = idx
				levels[d-1] = append(levels[d-1], face)
			}
		}
	}
	for s, idx := range added {
		e.AddElement(s, idx)
	}
}

// Finalize sorts the stream by (filtration index, dimension, vertices) and
// validates it.
//
// Errors: ErrMissingFace, ErrFaceAfterCoface (wrapped with the simplices).
func (e *Explicit) Finalize() error {
	e.order = e.order[:0]
	for s := range e.index {
		e.order = append(e.order, s)
	}
	slices.SortFunc(e.order, func(a, b Simplex) int {
		if r := cmp.Compare(e.index[a], e.index[b]); r != 0 {
			return r
		}
		return CompareSimplices(a, b)
	})
	for _, s := range e.order {
		for _, face := range s.Boundary() {
			fi, ok := e.index[face]
			if !ok {
				return fmt.Errorf("Finalize: face %v of %v: %w", face, s, ErrMissingFace)
			}
			if fi > e.index[s] {
				return fmt.Errorf("Finalize: face %v (index %d) of %v (index %d): %w",
					face, fi, s, e.index[s], ErrFaceAfterCoface)
			}
		}
	}
	e.finalized = true

	return nil
}

// Finalized reports whether the stream is unchanged since the last
// successful Finalize.
func (e *Explicit) Finalized() bool { return e.finalized }

// All yields the simplices in filtration order. It panics with ErrNotFinalized
// if the stream changed since the last successful Finalize.
func (e *Explicit) All() iter.Seq[Simplex] {
	if !e.finalized {
		panic(fmt.Errorf("Explicit.All: %w", ErrNotFinalized))
	}

	return func(yield func(Simplex) bool) {
		for _, s := range e.order {
			if !yield(s) {
				return
			}
		}
	}
}

// Dimension returns s.Dimension().
func (e *Explicit) Dimension(s Simplex) int { return s.Dimension() }

// FiltrationIndex returns the index of s, or -1 if s was never added.
func (e *Explicit) FiltrationIndex(s Simplex) int {
	if idx, ok := e.index[s]; ok {
		return idx
	}

	return -1
}

// Boundary returns the facets of s.
func (e *Explicit) Boundary(s Simplex) []Simplex { return s.Boundary() }

// BoundaryCoefficients returns the alternating signs of the facets of s.
func (e *Explicit) BoundaryCoefficients(s Simplex) []int { return s.BoundaryCoefficients() }

// MaxFiltrationIndex returns the largest index in the stream, or -1 when empty.
func (e *Explicit) MaxFiltrationIndex() int {
	out := -1
	for _, idx := range e.index {
		out = max(out, idx)
	}

	return out
}
