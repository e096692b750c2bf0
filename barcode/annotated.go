// SPDX-License-Identifier: MIT

package barcode

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Annotated is a per-dimension log of intervals, each paired with the
// generator (cycle or cocycle representative) that produced it.
type Annotated[T Endpoint, G any] struct {
	intervals  map[int][]Interval[T]
	generators map[int][]G
}

// NewAnnotated returns an empty collection.
func NewAnnotated[T Endpoint, G any]() *Annotated[T, G] {
	return &Annotated[T, G]{
		intervals:  make(map[int][]Interval[T]),
		generators: make(map[int][]G),
	}
}

// Add appends iv with generator gen at dimension dim.
func (a *Annotated[T, G]) Add(dim int, iv Interval[T], gen G) {
	a.intervals[dim] = append(a.intervals[dim], iv)
	a.generators[dim] = append(a.generators[dim], gen)
}

// AddInterval appends [start, end).
func (a *Annotated[T, G]) AddInterval(dim int, start, end T, gen G) {
	a.Add(dim, Finite(start, end), gen)
}

// AddRightInfiniteInterval appends [start, infinity).
func (a *Annotated[T, G]) AddRightInfiniteInterval(dim int, start T, gen G) {
	a.Add(dim, RightInfinite(start), gen)
}

// AddLeftInfiniteInterval appends (-infinity, end).
func (a *Annotated[T, G]) AddLeftInfiniteInterval(dim int, end T, gen G) {
	a.Add(dim, LeftInfinite(end), gen)
}

// Dimensions returns the dimensions holding at least one interval, ascending.
func (a *Annotated[T, G]) Dimensions() []int {
	return slices.Sorted(maps.Keys(a.intervals))
}

// Intervals returns a copy of the intervals at dim in insertion order.
func (a *Annotated[T, G]) Intervals(dim int) []Interval[T] {
	return slices.Clone(a.intervals[dim])
}

// Generators returns a copy of the generators at dim, aligned with Intervals.
func (a *Annotated[T, G]) Generators(dim int) []G {
	return slices.Clone(a.generators[dim])
}

// Len returns the total number of intervals.
func (a *Annotated[T, G]) Len() int {
	n := 0
	for _, ivs := range a.intervals {
		n += len(ivs)
	}

	return n
}

// Union returns a new collection holding the entries of a followed by those of b.
func (a *Annotated[T, G]) Union(b *Annotated[T, G]) *Annotated[T, G] {
	out := a.filter(func(int, Interval[T]) bool { return true })
	for _, dim := range b.Dimensions() {
		for i, iv := range b.intervals[dim] {
			out.Add(dim, iv, b.generators[dim][i])
		}
	}

	return out
}

// Infinite returns the entries whose interval is unbounded on either side.
func (a *Annotated[T, G]) Infinite() *Annotated[T, G] {
	return a.filter(func(_ int, iv Interval[T]) bool { return iv.IsInfinite() })
}

// FilterByMaxDimension returns the entries of dimension ≤ maxDim.
func (a *Annotated[T, G]) FilterByMaxDimension(maxDim int) *Annotated[T, G] {
	return a.filter(func(dim int, _ Interval[T]) bool { return dim <= maxDim })
}

// FilterPositiveMeasure drops degenerate finite intervals.
func (a *Annotated[T, G]) FilterPositiveMeasure() *Annotated[T, G] {
	return a.filter(func(_ int, iv Interval[T]) bool { return !iv.IsDegenerate() })
}

// BettiNumbersAt counts, per dimension, the intervals containing point.
// Dimensions with a zero count are omitted.
func (a *Annotated[T, G]) BettiNumbersAt(point T) map[int]int {
	out := make(map[int]int)
	for dim, ivs := range a.intervals {
		for _, iv := range ivs {
			if iv.Contains(point) {
				out[dim]++
			}
		}
	}

	return out
}

// BettiSequence returns, indexed by dimension, the number of intervals in
// each dimension from 0 to the largest one present. Applied to Infinite() it
// gives the Betti numbers of the final space.
func (a *Annotated[T, G]) BettiSequence() []int {
	dims := a.Dimensions()
	if len(dims) == 0 || dims[len(dims)-1] < 0 {
		return nil
	}
	out := make([]int, dims[len(dims)-1]+1)
	for _, dim := range dims {
		if dim >= 0 {
			out[dim] = len(a.intervals[dim])
		}
	}

	return out
}

// Forget returns the intervals without their generators.
func (a *Annotated[T, G]) Forget() *Collection[T] {
	out := NewCollection[T]()
	for dim, ivs := range a.intervals {
		for _, iv := range ivs {
			out.Add(dim, iv)
		}
	}

	return out
}

// String lists every dimension in ascending order as
//
//	Dimension: 0
//	[0, 1): <generator>
func (a *Annotated[T, G]) String() string {
	return a.format(true)
}

func (a *Annotated[T, G]) format(withGenerators bool) string {
	var b strings.Builder
	for _, dim := range a.Dimensions() {
		fmt.Fprintf(&b, "Dimension: %d\n", dim)
		for i, iv := range a.intervals[dim] {
			b.WriteString(iv.String())
			if withGenerators {
				fmt.Fprintf(&b, ": %v", a.generators[dim][i])
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (a *Annotated[T, G]) filter(keep func(dim int, iv Interval[T]) bool) *Annotated[T, G] {
	out := NewAnnotated[T, G]()
	for dim, ivs := range a.intervals {
		for i, iv := range ivs {
			if keep(dim, iv) {
				out.Add(dim, iv, a.generators[dim][i])
			}
		}
	}

	return out
}
