// SPDX-License-Identifier: MIT

package persistence

import (
	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

const opClassical = "Classical"

// classical is the mutable state of one Classical call.
type classical[U comparable, F any] struct {
	marked map[U]struct{}
	t      map[U]*chain.Sum[U, F] // pivot → reduced chain that claimed it
}

// Classical computes the absolute barcode of s in a single pass with the
// pivot-row elimination of Zomorodian and Carlsson.
//
// Implementation (per element σ in filtered order):
//   - Stage 1: d = ∂σ restricted to marked elements.
//   - Stage 2: while low(d) has a T entry, d += (-d[low]/T[low][low])·T[low].
//   - Stage 3: if d is empty mark σ (a cycle is born); otherwise T[low(d)] = d
//     and [index(low), index(σ)) is emitted in dimension dim(low).
//   - Final: every marked σ without a T entry is essential, [index(σ), infinity).
//
// Errors: ErrFiltrationOrder for malformed streams.
//
// Complexity: as PHCol, without storing V.
func (e *Engine[U, F]) Classical(s stream.Filtered[U]) (*barcode.Collection[int], error) {
	p, err := e.prepare(opClassical, s)
	if err != nil {
		return nil, err
	}
	e.opts.logger.Debug("persistence: reduction start",
		"algorithm", opClassical, "columns", len(p.order), "skipped", p.skipped,
		"min_dimension", e.opts.minDim, "max_dimension", e.opts.maxDim)

	st := &classical[U, F]{
		marked: make(map[U]struct{}),
		t:      make(map[U]*chain.Sum[U, F]),
	}
	out := barcode.NewCollection[int]()
	var (
		eliminations int
		low          U
		ok           bool
		pivotChain   *chain.Sum[U, F]
	)
	for _, sigma := range p.order {
		d := e.mod.NewSum()
		p.boundary[sigma].Range(func(u U, c F) bool {
			if _, m := st.marked[u]; m {
				d.Put(e.f, u, c)
			}
			return true
		})
		for {
			if low, ok = p.low(d); !ok {
				break
			}
			if pivotChain, ok = st.t[low]; !ok || pivotChain.IsEmpty() {
				break
			}
			e.mod.Accumulate(d, pivotChain, e.f.Negate(
				e.f.Divide(e.coefficient(d, low), e.coefficient(pivotChain, low))))
			eliminations++
		}
		if d.IsEmpty() {
			st.marked[sigma] = struct{}{}
			continue
		}
		st.t[low] = d
		start, end := p.index[low], p.index[sigma]
		if start > end {
			return nil, orderError(opClassical, low, start, sigma, end)
		}
		if start < end && e.emits(p.dim[low]) {
			out.AddInterval(p.dim[low], start, end)
		}
	}

	var essential int
	for _, sigma := range p.order {
		if _, m := st.marked[sigma]; !m {
			continue
		}
		if c, claimed := st.t[sigma]; claimed && !c.IsEmpty() {
			continue
		}
		if e.emits(p.dim[sigma]) {
			out.AddRightInfiniteInterval(p.dim[sigma], p.index[sigma])
			essential++
		}
	}
	e.opts.logger.Debug("persistence: reduction done",
		"algorithm", opClassical, "columns", len(p.order), "eliminations", eliminations,
		"pairs", len(st.t), "essential", essential)

	return out, nil
}
