// Package matrix provides dense, field-valued matrices: a small exact linear
// algebra kernel used to inspect and cross-check the sparse persistence
// decompositions.
//
// 🚀 What is matrix?
//
//	Dense[F] stores an r×c matrix over any field.Field[F] in a flat
//	row-major buffer. Arithmetic goes through the field, so GF(2), Z/pZ and
//	Q are all exact; there is no floating-point tolerance anywhere.
//
// ✨ Key features:
//   - NewDense / Identity / FromColumns   — construction (FromColumns turns a
//     family of sparse chains into a matrix for fixed row and column orders)
//   - At / Set                            — bounds-checked access (ErrOutOfRange)
//   - Mul / Equal / Transpose             — exact algebra
//   - IsUpperTriangular / HasNonZeroDiagonal — structural checks for V factors
//
// ⚙️ Usage:
//
//	d, _ := matrix.FromColumns(f, order, order, boundaries)
//	v, _ := matrix.FromColumns(f, order, order, reducers)
//	dv, _ := matrix.Mul(d, v)
//	ok := matrix.Equal(dv, r)
//
// Memory is O(r·c): meant for debugging and verification of small inputs,
// never for production-sized filtrations.
package matrix
