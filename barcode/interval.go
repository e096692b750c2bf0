// SPDX-License-Identifier: MIT

package barcode

import (
	"cmp"
	"fmt"
)

// Endpoint is the set of numeric types an interval may be bounded by.
type Endpoint interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Interval is a half-open persistence interval. At most one side is
// infinite; the zero value is the degenerate interval [0, 0).
type Interval[T Endpoint] struct {
	start, end     T
	noStart, noEnd bool
}

// Finite returns [start, end).
func Finite[T Endpoint](start, end T) Interval[T] {
	return Interval[T]{start: start, end: end}
}

// RightInfinite returns [start, infinity).
func RightInfinite[T Endpoint](start T) Interval[T] {
	return Interval[T]{start: start, noEnd: true}
}

// LeftInfinite returns (-infinity, end).
func LeftInfinite[T Endpoint](end T) Interval[T] {
	return Interval[T]{end: end, noStart: true}
}

// Start returns the left endpoint; ok is false for a left-infinite interval.
func (iv Interval[T]) Start() (start T, ok bool) { return iv.start, !iv.noStart }

// End returns the right endpoint; ok is false for a right-infinite interval.
func (iv Interval[T]) End() (end T, ok bool) { return iv.end, !iv.noEnd }

// IsLeftInfinite reports whether the interval has no start.
func (iv Interval[T]) IsLeftInfinite() bool { return iv.noStart }

// IsRightInfinite reports whether the interval has no end.
func (iv Interval[T]) IsRightInfinite() bool { return iv.noEnd }

// IsInfinite reports whether either side is unbounded.
func (iv Interval[T]) IsInfinite() bool { return iv.noStart || iv.noEnd }

// Contains reports whether p lies in the interval (start inclusive, end exclusive).
func (iv Interval[T]) Contains(p T) bool {
	return (iv.noStart || iv.start <= p) && (iv.noEnd || p < iv.end)
}

// Length returns end - start for a finite interval; ok is false otherwise.
func (iv Interval[T]) Length() (length T, ok bool) {
	if iv.IsInfinite() {
		return length, false
	}

	return iv.end - iv.start, true
}

// IsDegenerate reports whether a finite interval is empty (start ≥ end).
func (iv Interval[T]) IsDegenerate() bool {
	return !iv.IsInfinite() && iv.start >= iv.end
}

// Equal reports whether both intervals have the same shape and endpoints.
func (iv Interval[T]) Equal(other Interval[T]) bool { return iv.Compare(other) == 0 }

// Compare orders intervals by start (-infinity first), then by end
// (infinity last).
func (iv Interval[T]) Compare(other Interval[T]) int {
	switch {
	case iv.noStart != other.noStart:
		if iv.noStart {
			return -1
		}
		return 1
	case !iv.noStart:
		if r := cmp.Compare(iv.start, other.start); r != 0 {
			return r
		}
	}
	switch {
	case iv.noEnd != other.noEnd:
		if iv.noEnd {
			return 1
		}
		return -1
	case !iv.noEnd:
		return cmp.Compare(iv.end, other.end)
	}

	return 0
}

// String renders "[0, 1)", "[0, infinity)" or "(-infinity, 3)".
func (iv Interval[T]) String() string {
	switch {
	case iv.noStart:
		return fmt.Sprintf("(-infinity, %v)", iv.end)
	case iv.noEnd:
		return fmt.Sprintf("[%v, infinity)", iv.start)
	default:
		return fmt.Sprintf("[%v, %v)", iv.start, iv.end)
	}
}
