// Package stream defines the filtered chain complex consumed by the
// persistence engine, the filtration-consistent total order used for pivot
// selection, and a few concrete simplicial streams.
//
// 🚀 The contract
//
//	A Filtered[U] yields basis elements in non-decreasing filtration index,
//	every face before its cofaces, and answers dimension, filtration index
//	and boundary queries. The engine treats U as an opaque comparable key.
//
// ✨ Provided here:
//   - Comparator — (filtration index, caller basis order) total order
//   - Simplex    — immutable, comparable vertex set with the alternating boundary
//   - Explicit   — build-then-Finalize stream of simplices with validation
//   - FlagComplex / RandomFlag — filtered clique complexes of graphs
//   - Validate   — generic face ≤ coface / ordering check for any stream
//
// Streams are read-only once finalized and may be shared by concurrent
// persistence computations.
package stream
