// SPDX-License-Identifier: MIT

package stream

import "cmp"

// Comparator is the filtered total order on basis elements: primary key is
// the stream's filtration index, ties are broken by a caller-supplied basis
// order. Pivot selection ("low" = maximum, "high" = minimum) uses it.
//
// The basis order must be a strict total order in which every face precedes
// its cofaces of equal filtration index; the persistence algorithms rely on
// it for unique pivots.
type Comparator[U comparable] struct {
	s     Filtered[U]
	basis func(a, b U) int
}

// NewComparator returns the filtered order induced by s and basis.
func NewComparator[U comparable](s Filtered[U], basis func(a, b U) int) *Comparator[U] {
	return &Comparator[U]{s: s, basis: basis}
}

// Compare returns -1, 0 or +1 as a sorts before, equal to, or after b.
func (c *Comparator[U]) Compare(a, b U) int {
	if r := cmp.Compare(c.s.FiltrationIndex(a), c.s.FiltrationIndex(b)); r != 0 {
		return r
	}

	return c.basis(a, b)
}

// Less reports whether a sorts strictly before b.
func (c *Comparator[U]) Less(a, b U) bool { return c.Compare(a, b) < 0 }
