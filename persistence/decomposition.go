// SPDX-License-Identifier: MIT

package persistence

import (
	"slices"

	"github.com/katalvlaran/lvtopo/chain"
)

// Kind tells which boundary operator a Decomposition reduced.
type Kind int

const (
	// Homology is the column reduction of the boundary matrix (PHCol).
	Homology Kind = iota
	// Cohomology is the reduction of the coboundary matrix in reverse
	// filtration order (PHRow).
	Cohomology
)

func (k Kind) String() string {
	if k == Cohomology {
		return "cohomology"
	}

	return "homology"
}

// Pair is a resolved pivot: Column reduced to a chain whose pivot is Pivot.
// For Homology the pivot is born and the column kills it; for Cohomology the
// roles swap.
type Pair[U comparable] struct {
	Pivot, Column U
}

// Decomposition is the result of PHCol (R = D·V) or PHRow (R⊥ = D⊥·V⊥).
//
// Every map is keyed by the elements of Order. D holds the restricted
// boundary (Homology) or coboundary (Cohomology) columns, V is triangular
// with a nonzero diagonal, R is reduced: no two nonempty columns share a
// pivot. Pivots maps each pivot to the column that claimed it.
type Decomposition[U comparable, F any] struct {
	Kind    Kind
	Order   []U
	D, R, V map[U]*chain.Sum[U, F]
	Pivots  map[U]U

	p *filtration[U, F]
}

func newDecomposition[U comparable, F any](kind Kind, p *filtration[U, F]) *Decomposition[U, F] {
	n := len(p.order)

	return &Decomposition[U, F]{
		Kind:   kind,
		Order:  p.order,
		R:      make(map[U]*chain.Sum[U, F], n),
		V:      make(map[U]*chain.Sum[U, F], n),
		Pivots: make(map[U]U, n),
		p:      p,
	}
}

// Len returns the number of reduced columns.
func (d *Decomposition[U, F]) Len() int { return len(d.Order) }

// FiltrationIndex returns the filtration index recorded for u.
func (d *Decomposition[U, F]) FiltrationIndex(u U) int { return d.p.index[u] }

// Dimension returns the dimension recorded for u.
func (d *Decomposition[U, F]) Dimension(u U) int { return d.p.dim[u] }

// pivot returns low(R[col]) for Homology and high(R[col]) for Cohomology.
func (d *Decomposition[U, F]) pivot(col U) (U, bool) {
	if d.Kind == Cohomology {
		return d.p.high(d.R[col])
	}

	return d.p.low(d.R[col])
}

// Pairs returns the resolved pairs in the order their columns were reduced.
func (d *Decomposition[U, F]) Pairs() []Pair[U] {
	var out []Pair[U]
	for _, col := range d.sequence() {
		if pv, ok := d.pivot(col); ok {
			out = append(out, Pair[U]{Pivot: pv, Column: col})
		}
	}

	return out
}

// Unpaired returns the columns that are neither reduced to a nonempty chain
// nor claimed as a pivot, in reduction order. They carry the essential
// classes.
func (d *Decomposition[U, F]) Unpaired() []U {
	var out []U
	for _, col := range d.sequence() {
		if !d.R[col].IsEmpty() {
			continue
		}
		if _, claimed := d.Pivots[col]; !claimed {
			out = append(out, col)
		}
	}

	return out
}

// birthDeath orients a pair: the pivot is born for Homology, the column for
// Cohomology.
func (d *Decomposition[U, F]) birthDeath(pr Pair[U]) (birth, death U) {
	if d.Kind == Cohomology {
		return pr.Column, pr.Pivot
	}

	return pr.Pivot, pr.Column
}

// sequence is the reduction order: Order for Homology, reversed for Cohomology.
func (d *Decomposition[U, F]) sequence() []U {
	if d.Kind == Cohomology {
		out := slices.Clone(d.Order)
		slices.Reverse(out)
		return out
	}

	return d.Order
}
