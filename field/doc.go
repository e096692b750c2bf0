// Package field provides the coefficient fields used by chain arithmetic and
// the persistence engine.
//
// 🚀 What is a Field here?
//
//	A Field[F] is a stateless capability value that performs arithmetic on
//	coefficients of type F. The persistence algorithms never touch F directly;
//	they only call the capability, so one generic reduction serves every
//	coefficient type.
//
// ✨ Provided fields:
//   - Boolean  — GF(2) over bool (xor / and; every nonzero element is self-inverse)
//   - Modular  — Z/pZ over int64 for a prime p (non-prime moduli are rejected)
//   - Rational — Q over *big.Rat, the generic object field for exact arithmetic
//
// ⚙️ Usage:
//
//	gf2 := field.Boolean{}
//	z3, err := field.NewModular(3)
//	if err != nil {
//	  // ErrNotPrime or ErrModulusRange
//	}
//	q := field.Rational{}
//
// Failure policy:
//
//	Invert(0) and Divide(a, 0) are programmer errors: they panic with an error
//	wrapping ErrDivisionByZero. A reduction that divides by zero is already
//	corrupt, so there is no error return to ignore.
//
// All fields are safe for concurrent use.
package field
