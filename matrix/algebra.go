// SPDX-License-Identifier: MIT

// Package matrix - exact algebra over a field.
//
// All kernels allocate a fresh result, never mutate their operands and use
// fixed loop orders, so results are reproducible bit for bit.

package matrix

import "fmt"

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateMulCompatible checks a, b are non-nil and a.Cols() == b.Rows().
func ValidateMulCompatible[F any](a, b *Dense[F]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// Mul returns C = A × B.
//
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: i→k→j over the row-major buffers, skipping zero A[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[F any](a, b *Dense[F]) (*Dense[F], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	f := a.f
	res, err := NewDense(f, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, k, j          int
		av               F
		rowA, rowB, rowR int
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if f.IsZero(av) {
				continue // skip zero
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] = f.Add(res.data[rowR+j], f.Multiply(av, b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ.
func Transpose[F any](a *Dense[F]) (*Dense[F], error) {
	if a == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res, err := NewDense(a.f, a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and field-equal entries.
// Two nil matrices are equal.
func Equal[F any](a, b *Dense[F]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !a.f.Equal(a.data[i], b.data[i]) {
			return false
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry below the main diagonal is zero.
func IsUpperTriangular[F any](a *Dense[F]) bool {
	for i := 1; i < a.r; i++ {
		for j := 0; j < min(i, a.c); j++ {
			if !a.f.IsZero(a.data[i*a.c+j]) {
				return false
			}
		}
	}

	return true
}

// HasNonZeroDiagonal reports whether every main-diagonal entry is nonzero.
func HasNonZeroDiagonal[F any](a *Dense[F]) bool {
	for i := 0; i < min(a.r, a.c); i++ {
		if a.f.IsZero(a.data[i*a.c+i]) {
			return false
		}
	}

	return true
}
