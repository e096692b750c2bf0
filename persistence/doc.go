// Package persistence computes persistence barcodes of filtered chain
// complexes over any coefficient field.
//
// 🚀 What is persistence here?
//
//	An Engine consumes a stream.Filtered[U] (basis elements in filtration
//	order, each with a boundary) and reduces its boundary matrix. Pivot pairs
//	become finite intervals [birth, death) of filtration indices, unpaired
//	columns become infinite ones. The result is a barcode.Collection, or a
//	barcode.Annotated carrying a representative chain per interval.
//
// ✨ Algorithms:
//   - Classical     — single pass with a marked set and a pivot table T
//   - PHCol         — column reduction R = D·V, pivot = low (latest term)
//   - PHRow         — the dual reduction on coboundaries, R⊥ = D⊥·V⊥, pivot = high
//   - PCoh          — streaming cohomology over a set of live cocycles
//
// All four produce the same barcode for a given stream, per dimension.
//
// ✨ Output policies:
//
//	                    witness  infinite side   decomposition
//	AbsoluteHomology    R        right           PHCol
//	RelativeHomology    V        left            PHCol
//	AbsoluteCohomology  V        right           PHRow
//	RelativeCohomology  R        left            PHRow
//
// ⚙️ Usage:
//
//	e := persistence.New[stream.Simplex, bool](field.Boolean{}, stream.CompareSimplices,
//	  persistence.WithMaxDimension(2))
//	bars, err := e.ComputeIntervals(s, persistence.AbsoluteHomology)
//
// Dimension window:
//
//	Elements of dimension minDim-1 … maxDim+1 are reduced; everything else is
//	skipped. Emitted intervals satisfy minDim ≤ dim < maxDim. Degenerate
//	intervals (birth == death) are never emitted.
//
// Failure policy:
//
//	Malformed streams (a face missing, or entering after its coface) return
//	ErrFiltrationOrder before any reduction starts. Field division by zero is
//	a programmer error and panics.
//
// Concurrency:
//
//	An Engine holds only immutable configuration. Every call owns its own
//	reduction state, so calls may run concurrently on streams that are not
//	mutated meanwhile; ComputeAll does exactly that.
package persistence
