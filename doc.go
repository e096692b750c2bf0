// Package lvtopo computes persistent homology and cohomology barcodes of
// filtered chain complexes over arbitrary coefficient fields.
//
// 🚀 What is lvtopo?
//
//	A small, dependency-light engine that brings together:
//		• Fields: GF(2), Z/pZ for prime p, exact rationals
//		• Sparse chains: formal sums and the chain-module arithmetic on them
//		• Filtered streams: explicit simplex streams and flag (clique) complexes
//		• Reductions: classical, pHcol, pHrow and streaming pCoh
//		• Barcodes: absolute/relative homology/cohomology, with generators
//		• Verification: R = D·V checked sparsely or through dense matrices
//
// ✨ Why choose lvtopo?
//
//   - Generic – one engine for every field and every basis element type
//   - Exact – no floating point anywhere in the reduction
//   - Safe – an Engine is immutable; independent calls run concurrently
//   - Checkable – every decomposition can verify itself
//
// Under the hood, everything is organized under six subpackages:
//
//	field/       — the Field capability and its GF(2), Z/pZ and Q implementations
//	chain/       — sparse formal sums and chain-module operations
//	stream/      — the Filtered contract, Simplex, Explicit and FlagComplex
//	barcode/     — intervals, annotated barcodes and plain collections
//	matrix/      — dense field-valued matrices for debugging views
//	persistence/ — the Engine, output policies, batch runs and YAML config
//
// Quick example (the filled triangle):
//
//	  0
//	  │╲
//	  │ ╲      vertices at 0, edges at 1, the face at 2
//	  1──2
//
//	dimension 0: [0, 1) [0, 1) [0, infinity)
//	dimension 1: [1, 2)
//
// See persistence/example_test.go for the code and examples/ for longer
// scenarios.
//
//	go get github.com/katalvlaran/lvtopo
package lvtopo
