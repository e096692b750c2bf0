// SPDX-License-Identifier: MIT

// Package persistence - exact verification of decompositions.
//
// Verify checks, column by column and without densifying:
//   - R[i] = Σ V[i][j]·D[j] (the boundary or coboundary operator applied to V[i]);
//   - V[i] has a nonzero coefficient on i and no term reduced after i;
//   - nonempty columns of R have pairwise distinct pivots, matching Pivots.
//
// VerifyDense checks the same identity with dense matrices. It costs
// O(n²) memory and exists for debugging small inputs.
package persistence

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/matrix"
	"github.com/katalvlaran/lvtopo/stream"
)

const (
	opVerify      = "Verify"
	opVerifyDense = "VerifyDense"
)

// Verify recomputes the restricted (co)boundary of s and checks d against it.
//
// Errors: ErrFiltrationOrder for malformed streams, ErrDecompositionMismatch
// wrapped with the first failing column.
func (e *Engine[U, F]) Verify(s stream.Filtered[U], d *Decomposition[U, F]) error {
	p, err := e.prepare(opVerify, s)
	if err != nil {
		return err
	}

	return e.verify(opVerify, p, d)
}

func (e *Engine[U, F]) verify(op string, p *filtration[U, F], d *Decomposition[U, F]) error {
	if !slices.Equal(p.order, d.Order) {
		return fmt.Errorf("%s: decomposition covers %d columns, stream has %d: %w",
			op, len(d.Order), len(p.order), ErrDecompositionMismatch)
	}
	delta := p.boundary
	if d.Kind == Cohomology {
		delta = e.coboundaries(p)
	}
	image := func(u U) *chain.Sum[U, F] { return delta[u] }

	owner := make(map[U]U, len(d.Pivots))
	for _, col := range d.Order {
		r, v := d.R[col], d.V[col]
		if r == nil || v == nil {
			return fmt.Errorf("%s: column %v missing: %w", op, col, ErrDecompositionMismatch)
		}
		if !e.mod.Equal(r, e.mod.ApplyLinear(v, image)) {
			return fmt.Errorf("%s: column %v: R differs from D·V: %w", op, col, ErrDecompositionMismatch)
		}
		if diag, ok := v.Get(col); !ok || e.f.IsZero(diag) {
			return fmt.Errorf("%s: column %v: zero diagonal in V: %w", op, col, ErrDecompositionMismatch)
		}
		var bad bool
		v.Range(func(u U, _ F) bool {
			after := p.rank[u] > p.rank[col]
			if d.Kind == Cohomology {
				after = p.rank[u] < p.rank[col]
			}
			bad = after
			return !bad
		})
		if bad {
			return fmt.Errorf("%s: column %v: V not triangular: %w", op, col, ErrDecompositionMismatch)
		}
		pv, ok := d.pivot(col)
		if !ok {
			continue
		}
		if prev, dup := owner[pv]; dup {
			return fmt.Errorf("%s: columns %v and %v share pivot %v: %w", op, prev, col, pv, ErrDecompositionMismatch)
		}
		owner[pv] = col
		if claimed, ok := d.Pivots[pv]; !ok || claimed != col {
			return fmt.Errorf("%s: pivot %v of %v not recorded: %w", op, pv, col, ErrDecompositionMismatch)
		}
	}
	if len(owner) != len(d.Pivots) {
		return fmt.Errorf("%s: %d recorded pivots, %d in R: %w", op, len(d.Pivots), len(owner), ErrDecompositionMismatch)
	}

	return nil
}

// VerifyDense checks d against s with dense matrices over the engine's field:
// D·V = R, and V upper triangular with a nonzero diagonal in reduction order.
//
// Errors: as Verify; matrix errors are wrapped.
//
// Complexity: Time O(n³), Space O(n²).
func (e *Engine[U, F]) VerifyDense(s stream.Filtered[U], d *Decomposition[U, F]) error {
	p, err := e.prepare(opVerifyDense, s)
	if err != nil {
		return err
	}
	if !slices.Equal(p.order, d.Order) {
		return fmt.Errorf("%s: decomposition covers %d columns, stream has %d: %w",
			opVerifyDense, len(d.Order), len(p.order), ErrDecompositionMismatch)
	}
	cols := p.boundary
	if d.Kind == Cohomology {
		cols = e.coboundaries(p)
	}
	order := d.sequence()

	dm, err := matrix.FromColumns(e.f, order, order, cols)
	if err != nil {
		return fmt.Errorf("%s: D: %w", opVerifyDense, err)
	}
	vm, err := matrix.FromColumns(e.f, order, order, d.V)
	if err != nil {
		return fmt.Errorf("%s: V: %w", opVerifyDense, err)
	}
	rm, err := matrix.FromColumns(e.f, order, order, d.R)
	if err != nil {
		return fmt.Errorf("%s: R: %w", opVerifyDense, err)
	}
	dv, err := matrix.Mul(dm, vm)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerifyDense, err)
	}
	if !matrix.Equal(dv, rm) {
		return fmt.Errorf("%s: R differs from D·V: %w", opVerifyDense, ErrDecompositionMismatch)
	}
	if !matrix.IsUpperTriangular(vm) || !matrix.HasNonZeroDiagonal(vm) {
		return fmt.Errorf("%s: V not upper triangular with nonzero diagonal: %w", opVerifyDense, ErrDecompositionMismatch)
	}

	return nil
}
