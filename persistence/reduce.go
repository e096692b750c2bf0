// SPDX-License-Identifier: MIT

// Package persistence - matrix decompositions.
//
// PHCol reduces the boundary matrix column by column in filtration order,
// pivot = low (latest term). PHRow reduces the coboundary matrix, the
// anti-transpose of the boundary matrix, column by column in reverse
// filtration order, pivot = high (earliest term). Both share one kernel.
//
// Implementation (per column i, in reduction order):
//   - Stage 1: R[i] = D[i], V[i] = i.
//   - Stage 2: while pivot(R[i]) is claimed by an earlier column j,
//     c = R[i][pivot] / R[j][pivot]; R[i] -= c·R[j]; V[i] -= c·V[j].
//   - Stage 3: claim pivot(R[i]) for i if R[i] is nonempty.
//
// Determinism:
//   - Columns are visited in the fixed filtered order; pivots are found by
//     integer rank, so map iteration order never changes a result.
//
// Complexity:
//   - Time O(n³) worst case, typically near-linear on clique complexes.
//   - Space O(nonzeros of R and V).
package persistence

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/stream"
)

const (
	opPHCol = "PHCol"
	opPHRow = "PHRow"
)

// PHCol computes R = D·V on the boundary matrix of s.
//
// Errors: ErrFiltrationOrder for malformed streams, ErrDecompositionMismatch
// when verification is enabled and fails.
func (e *Engine[U, F]) PHCol(s stream.Filtered[U]) (*Decomposition[U, F], error) {
	p, err := e.prepare(opPHCol, s)
	if err != nil {
		return nil, err
	}

	return e.decompose(opPHCol, Homology, p)
}

// PHRow computes R⊥ = D⊥·V⊥ on the coboundary matrix of s.
//
// Errors: as PHCol.
func (e *Engine[U, F]) PHRow(s stream.Filtered[U]) (*Decomposition[U, F], error) {
	p, err := e.prepare(opPHRow, s)
	if err != nil {
		return nil, err
	}

	return e.decompose(opPHRow, Cohomology, p)
}

func (e *Engine[U, F]) decompose(op string, kind Kind, p *filtration[U, F]) (*Decomposition[U, F], error) {
	e.opts.logger.Debug("persistence: reduction start",
		"algorithm", op, "columns", len(p.order), "skipped", p.skipped,
		"min_dimension", e.opts.minDim, "max_dimension", e.opts.maxDim)

	d := newDecomposition(kind, p)
	pivotOf := p.low
	if kind == Homology {
		d.D = p.boundary
	} else {
		d.D = e.coboundaries(p)
		pivotOf = p.high
	}

	var (
		eliminations int
		pv, j        U
		ok, claimed  bool
		c            F
	)
	for _, col := range d.sequence() {
		r := d.D[col].Clone()
		v := e.mod.Singleton(col, e.f.One())
		for {
			if pv, ok = pivotOf(r); !ok {
				break
			}
			if j, claimed = d.Pivots[pv]; !claimed {
				if err := d.checkPair(op, Pair[U]{Pivot: pv, Column: col}); err != nil {
					return nil, err
				}
				d.Pivots[pv] = col
				break
			}
			c = e.f.Negate(e.f.Divide(e.coefficient(r, pv), e.coefficient(d.R[j], pv)))
			e.mod.Accumulate(r, d.R[j], c)
			e.mod.Accumulate(v, d.V[j], c)
			eliminations++
		}
		d.R[col], d.V[col] = r, v
	}

	e.opts.logger.Debug("persistence: reduction done",
		"algorithm", op, "columns", len(p.order), "eliminations", eliminations, "pairs", len(d.Pivots))

	if e.opts.verify {
		if err := e.verify(op, p, d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// checkPair asserts birth ≤ death in filtration index for a resolved pair.
func (d *Decomposition[U, F]) checkPair(op string, pr Pair[U]) error {
	birth, death := d.birthDeath(pr)
	if d.p.index[birth] > d.p.index[death] {
		return orderError(op, birth, d.p.index[birth], death, d.p.index[death])
	}

	return nil
}

func orderError[U comparable](op string, birth U, start int, death U, end int) error {
	return fmt.Errorf("%s: %v (index %d) born after its killer %v (index %d): %w",
		op, birth, start, death, end, ErrFiltrationOrder)
}
