// SPDX-License-Identifier: MIT

// Package persistence - the per-call view of a stream.
//
// A filtration is built once per computation from a single pass over the
// stream. It owns everything a reduction needs and nothing is shared between
// calls:
//   - order: active elements sorted by (filtration index, basis order);
//   - rank: position in order, so pivot comparisons are integer compares;
//   - boundary: boundary chains restricted to active elements.
//
// Active elements are those with minDim-1 ≤ dim ≤ maxDim+1.
package persistence

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

type filtration[U comparable, F any] struct {
	order    []U
	rank     map[U]int
	index    map[U]int
	dim      map[U]int
	boundary map[U]*chain.Sum[U, F]
	skipped  int
}

// prepare reads s once and validates it.
//
// Implementation:
//   - Stage 1: walk s.All(); record every element's index, keep the active ones
//     and require each face of an active element to be already yielded with
//     an index not above it.
//   - Stage 2: stable-sort the active elements by the filtered comparator and
//     assign ranks; faces must rank strictly below their cofaces.
//   - Stage 3: build the restricted boundary chains.
//
// Errors: stream.ErrNotFinalized, stream.ErrBoundaryShape, ErrFiltrationOrder.
//
// Complexity: O(n log n + total boundary size).
func (e *Engine[U, F]) prepare(op string, s stream.Filtered[U]) (*filtration[U, F], error) {
	if err := stream.Ready(s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	lo, hi := e.opts.minDim-1, e.opts.maxDim+1
	p := &filtration[U, F]{
		index: make(map[U]int),
		dim:   make(map[U]int),
	}
	seen := make(map[U]int)
	var (
		idx, d int
		faces  []U
	)
	for u := range s.All() {
		idx, d = s.FiltrationIndex(u), s.Dimension(u)
		seen[u] = idx
		if d < lo || d > hi {
			p.skipped++
			continue
		}
		faces = s.Boundary(u)
		if len(faces) != len(s.BoundaryCoefficients(u)) {
			return nil, fmt.Errorf("%s: %v: %w", op, u, stream.ErrBoundaryShape)
		}
		for _, face := range faces {
			fi, ok := seen[face]
			if !ok {
				return nil, fmt.Errorf("%s: face %v of %v not yielded before it: %w", op, face, u, ErrFiltrationOrder)
			}
			if fi > idx {
				return nil, fmt.Errorf("%s: face %v (index %d) after coface %v (index %d): %w",
					op, face, fi, u, idx, ErrFiltrationOrder)
			}
		}
		if _, dup := p.index[u]; dup {
			return nil, fmt.Errorf("%s: %v yielded twice: %w", op, u, ErrFiltrationOrder)
		}
		p.index[u], p.dim[u] = idx, d
		p.order = append(p.order, u)
	}

	slices.SortStableFunc(p.order, stream.NewComparator(s, e.basis).Compare)
	p.rank = make(map[U]int, len(p.order))
	for i, u := range p.order {
		p.rank[u] = i
	}

	p.boundary = make(map[U]*chain.Sum[U, F], len(p.order))
	var coeffs []int
	for _, u := range p.order {
		faces, coeffs = s.Boundary(u), s.BoundaryCoefficients(u)
		b := e.mod.NewSum()
		for i, face := range faces {
			r, active := p.rank[face]
			if !active {
				continue
			}
			if r >= p.rank[u] {
				return nil, fmt.Errorf("%s: basis order puts face %v after coface %v: %w", op, face, u, ErrFiltrationOrder)
			}
			e.mod.AccumulateTerm(b, face, e.f.ValueOf(coeffs[i]))
		}
		p.boundary[u] = b
	}

	return p, nil
}

// low returns the term of c ranked last in the filtered order.
func (p *filtration[U, F]) low(c *chain.Sum[U, F]) (U, bool) {
	var (
		out  U
		best = -1
	)
	c.Range(func(u U, _ F) bool {
		if r := p.rank[u]; r > best {
			out, best = u, r
		}
		return true
	})

	return out, best >= 0
}

// high returns the term of c ranked first in the filtered order.
func (p *filtration[U, F]) high(c *chain.Sum[U, F]) (U, bool) {
	var (
		out   U
		best  = len(p.order)
		found bool
	)
	c.Range(func(u U, _ F) bool {
		if r := p.rank[u]; r < best {
			out, best, found = u, r, true
		}
		return true
	})

	return out, found
}

// coboundaries transposes the restricted boundary matrix: the coefficient of
// τ in δσ is the coefficient of σ in ∂τ.
func (e *Engine[U, F]) coboundaries(p *filtration[U, F]) map[U]*chain.Sum[U, F] {
	out := make(map[U]*chain.Sum[U, F], len(p.order))
	for _, u := range p.order {
		out[u] = e.mod.NewSum()
	}
	for _, tau := range p.order {
		p.boundary[tau].Range(func(sigma U, c F) bool {
			e.mod.AccumulateTerm(out[sigma], tau, c)
			return true
		})
	}

	return out
}
