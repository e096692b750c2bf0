// Package barcode holds persistence barcodes: per-dimension multisets of
// half-open intervals, optionally annotated with a generator per interval.
//
// 🚀 Model
//
//	Interval[T]      — [start, end), [start, infinity) or (-infinity, end)
//	Annotated[T, G]  — dimension → ordered list of (interval, generator)
//	Collection[T]    — Annotated without generators
//
// Collections are verbatim logs: intervals are stored in insertion order and
// never merged, even when adjacent or overlapping. Canonical sorts a copy for
// comparison.
//
// ✨ Utilities
//   - Infinite, FilterByMaxDimension, FilterPositiveMeasure, Union
//   - BettiNumbersAt(point), BettiSequence
//   - Forget drops generators; Equal compares as multisets
//
// ⚙️ Usage:
//
//	c := barcode.NewCollection[int]()
//	c.AddInterval(0, 0, 1)
//	c.AddRightInfiniteInterval(0, 0)
//	fmt.Print(c) // Dimension: 0 / [0, 1) / [0, infinity)
//
// Collections are not safe for concurrent mutation.
package barcode
