// SPDX-License-Identifier: MIT

// Package field - the Field capability and generic helpers.
package field

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is wrapped by the panic value of Invert(0) and Divide(a, 0).
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrNotPrime is returned by NewModular when the modulus is not prime.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrModulusRange is returned by NewModular when the modulus is outside [2, MaxModulus].
	ErrModulusRange = errors.New("field: modulus out of range")
)

// Field is the arithmetic capability over coefficients of type F.
//
// Contract:
//   - Zero and One are the additive and multiplicative identities.
//   - Invert is defined for nonzero elements only; Invert(Zero()) panics.
//   - Divide(a, b) == Multiply(a, Invert(b)).
//   - ValueOf maps an integer into the field (n·One()).
//   - Implementations are pure: no method mutates its arguments.
type Field[F any] interface {
	Zero() F
	One() F
	Add(a, b F) F
	Negate(a F) F
	Subtract(a, b F) F
	Multiply(a, b F) F
	Invert(a F) F
	Divide(a, b F) F
	IsZero(a F) bool
	Equal(a, b F) bool
	ValueOf(n int) F

	// Characteristic returns p for Z/pZ and 0 for fields of characteristic zero.
	Characteristic() int
	String() string
}

// divisionByZero builds the panic value raised on a zero divisor.
func divisionByZero(op string) error {
	return fmt.Errorf("%s: %w", op, ErrDivisionByZero)
}

// Power returns a^n for n ≥ 0 by repeated squaring.
// Negative exponents invert first, so Power(f, 0, -1) panics like Invert.
//
// Complexity: O(log n) multiplications.
func Power[F any](f Field[F], a F, n int) F {
	if n < 0 {
		a = f.Invert(a)
		n = -n
	}
	result := f.One()
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = f.Multiply(result, base)
		}
		base = f.Multiply(base, base)
		n >>= 1
	}

	return result
}

// Sum folds values with Add, starting from Zero.
func Sum[F any](f Field[F], values ...F) F {
	acc := f.Zero()
	for _, v := range values {
		acc = f.Add(acc, v)
	}

	return acc
}
