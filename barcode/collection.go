// SPDX-License-Identifier: MIT

package barcode

import "slices"

// Collection is a per-dimension multiset of intervals without generators.
type Collection[T Endpoint] struct {
	a *Annotated[T, struct{}]
}

// NewCollection returns an empty collection.
func NewCollection[T Endpoint]() *Collection[T] {
	return &Collection[T]{a: NewAnnotated[T, struct{}]()}
}

func wrap[T Endpoint](a *Annotated[T, struct{}]) *Collection[T] { return &Collection[T]{a: a} }

// Add appends iv at dimension dim.
func (c *Collection[T]) Add(dim int, iv Interval[T]) { c.a.Add(dim, iv, struct{}{}) }

// AddInterval appends [start, end).
func (c *Collection[T]) AddInterval(dim int, start, end T) { c.Add(dim, Finite(start, end)) }

// AddRightInfiniteInterval appends [start, infinity).
func (c *Collection[T]) AddRightInfiniteInterval(dim int, start T) {
	c.Add(dim, RightInfinite(start))
}

// AddLeftInfiniteInterval appends (-infinity, end).
func (c *Collection[T]) AddLeftInfiniteInterval(dim int, end T) {
	c.Add(dim, LeftInfinite(end))
}

// Dimensions returns the non-empty dimensions, ascending.
func (c *Collection[T]) Dimensions() []int { return c.a.Dimensions() }

// Intervals returns a copy of the intervals at dim in insertion order.
func (c *Collection[T]) Intervals(dim int) []Interval[T] { return c.a.Intervals(dim) }

// Len returns the total number of intervals.
func (c *Collection[T]) Len() int { return c.a.Len() }

// Union returns the concatenation of c and other.
func (c *Collection[T]) Union(other *Collection[T]) *Collection[T] { return wrap(c.a.Union(other.a)) }

// Infinite returns the unbounded intervals.
func (c *Collection[T]) Infinite() *Collection[T] { return wrap(c.a.Infinite()) }

// FilterByMaxDimension returns the intervals of dimension ≤ maxDim.
func (c *Collection[T]) FilterByMaxDimension(maxDim int) *Collection[T] {
	return wrap(c.a.FilterByMaxDimension(maxDim))
}

// FilterPositiveMeasure drops degenerate finite intervals.
func (c *Collection[T]) FilterPositiveMeasure() *Collection[T] {
	return wrap(c.a.FilterPositiveMeasure())
}

// BettiNumbersAt counts, per dimension, the intervals containing point.
func (c *Collection[T]) BettiNumbersAt(point T) map[int]int { return c.a.BettiNumbersAt(point) }

// BettiSequence returns the interval count of each dimension 0..max.
func (c *Collection[T]) BettiSequence() []int { return c.a.BettiSequence() }

// Canonical returns every dimension's intervals sorted by Interval.Compare.
// Two collections are equal as multisets exactly when their canonical forms are.
func (c *Collection[T]) Canonical() map[int][]Interval[T] {
	out := make(map[int][]Interval[T], len(c.a.intervals))
	for dim, ivs := range c.a.intervals {
		sorted := slices.Clone(ivs)
		slices.SortFunc(sorted, Interval[T].Compare)
		out[dim] = sorted
	}

	return out
}

// Equal reports whether c and other hold the same multiset of intervals in
// every dimension, ignoring insertion order.
func (c *Collection[T]) Equal(other *Collection[T]) bool {
	a, b := c.Canonical(), other.Canonical()
	if len(a) != len(b) {
		return false
	}
	for dim, ivs := range a {
		if !slices.EqualFunc(ivs, b[dim], Interval[T].Equal) {
			return false
		}
	}

	return true
}

// String lists every dimension in ascending order, one interval per line.
func (c *Collection[T]) String() string { return c.a.format(false) }
