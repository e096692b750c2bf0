// SPDX-License-Identifier: MIT

// Package persistence - streaming persistent cohomology.
//
// PCoh keeps a set of live cocycles, one per open cohomology class. Each new
// element σ is tested against the live cocycles one dimension below it:
//   - c_i = α_i(∂σ) for every live α_i;
//   - if every c_i is zero, σ* starts a new live cocycle born at index(σ);
//   - otherwise the candidate born last in filtration order, j, dies at
//     index(σ), and every other candidate becomes α_i - (c_i/c_j)·α_j so it
//     vanishes on ∂σ.
//
// Cocycles still live at the end are the essential classes. Reduced columns
// are never retained, so memory is bounded by the live cocycles.
package persistence

import (
	"maps"
	"slices"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

const opPCoh = "PCoh"

type cocycle[U comparable, F any] struct {
	birth U
	alpha *chain.Sum[U, F]
}

// PCoh computes the absolute barcode of s with the live-cocycle algorithm.
func (e *Engine[U, F]) PCoh(s stream.Filtered[U]) (*barcode.Collection[int], error) {
	a, err := e.PCohAnnotated(s)
	if err != nil {
		return nil, err
	}

	return a.Forget(), nil
}

// PCohAnnotated is PCoh keeping each interval's cocycle: the representative
// at death for finite intervals, the final one for essential intervals.
//
// Errors: ErrFiltrationOrder for malformed streams.
func (e *Engine[U, F]) PCohAnnotated(s stream.Filtered[U]) (*barcode.Annotated[int, *chain.Sum[U, F]], error) {
	p, err := e.prepare(opPCoh, s)
	if err != nil {
		return nil, err
	}
	e.opts.logger.Debug("persistence: reduction start",
		"algorithm", opPCoh, "columns", len(p.order), "skipped", p.skipped,
		"min_dimension", e.opts.minDim, "max_dimension", e.opts.maxDim)

	out := barcode.NewAnnotated[int, *chain.Sum[U, F]]()
	live := make(map[int][]*cocycle[U, F]) // per dimension, ascending birth rank
	var (
		killed     int
		candidates []int
		values     []F
	)
	for _, sigma := range p.order {
		dim := p.dim[sigma]
		boundary := p.boundary[sigma]
		candidates, values = candidates[:0], values[:0]
		if !boundary.IsEmpty() {
			for i, z := range live[dim-1] {
				if c := e.mod.Evaluate(z.alpha, boundary); !e.f.IsZero(c) {
					candidates = append(candidates, i)
					values = append(values, c)
				}
			}
		}
		if len(candidates) == 0 {
			live[dim] = append(live[dim], &cocycle[U, F]{
				birth: sigma,
				alpha: e.mod.Singleton(sigma, e.f.One()),
			})
			continue
		}

		last := len(candidates) - 1
		j := live[dim-1][candidates[last]]
		cj := values[last]
		for k, i := range candidates[:last] {
			z := live[dim-1][i]
			e.mod.Accumulate(z.alpha, j.alpha, e.f.Negate(e.f.Divide(values[k], cj)))
		}
		live[dim-1] = append(live[dim-1][:candidates[last]], live[dim-1][candidates[last]+1:]...)
		killed++

		start, end := p.index[j.birth], p.index[sigma]
		if start > end {
			return nil, orderError(opPCoh, j.birth, start, sigma, end)
		}
		if start < end && e.emits(dim-1) {
			out.AddInterval(dim-1, start, end, j.alpha)
		}
	}

	var essential int
	for _, dim := range slices.Sorted(maps.Keys(live)) {
		if !e.emits(dim) {
			continue
		}
		for _, z := range live[dim] {
			out.AddRightInfiniteInterval(dim, p.index[z.birth], z.alpha)
			essential++
		}
	}
	e.opts.logger.Debug("persistence: reduction done",
		"algorithm", opPCoh, "columns", len(p.order), "pairs", killed, "essential", essential)

	return out, nil
}
