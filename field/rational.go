// SPDX-License-Identifier: MIT

package field

import "math/big"

// Rational is the field Q over *big.Rat.
//
// It is the generic object field: coefficients are heap values and every
// operation returns a fresh *big.Rat, so callers may retain results freely.
// A nil *big.Rat is read as zero.
type Rational struct{}

var _ Field[*big.Rat] = Rational{}

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }

func (Rational) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(orZero(a), orZero(b))
}

func (Rational) Negate(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(orZero(a))
}

func (Rational) Subtract(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(orZero(a), orZero(b))
}

func (Rational) Multiply(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(orZero(a), orZero(b))
}

// Invert returns 1/a. It panics when a is zero.
func (Rational) Invert(a *big.Rat) *big.Rat {
	if a == nil || a.Sign() == 0 {
		panic(divisionByZero("Rational.Invert"))
	}

	return new(big.Rat).Inv(a)
}

// Divide returns a/b. It panics when b is zero.
func (Rational) Divide(a, b *big.Rat) *big.Rat {
	if b == nil || b.Sign() == 0 {
		panic(divisionByZero("Rational.Divide"))
	}

	return new(big.Rat).Quo(orZero(a), b)
}

func (Rational) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }

func (Rational) Equal(a, b *big.Rat) bool { return orZero(a).Cmp(orZero(b)) == 0 }

func (Rational) ValueOf(n int) *big.Rat { return big.NewRat(int64(n), 1) }

func (Rational) Characteristic() int { return 0 }

func (Rational) String() string { return "Q" }

var zeroRat = new(big.Rat)

// orZero substitutes a shared read-only zero for nil operands.
func orZero(a *big.Rat) *big.Rat {
	if a == nil {
		return zeroRat
	}

	return a
}
