// SPDX-License-Identifier: MIT

package field

// Boolean is GF(2) with coefficients represented as bool.
// Addition is xor, multiplication is and, and true is its own inverse.
type Boolean struct{}

var _ Field[bool] = Boolean{}

func (Boolean) Zero() bool { return false }
func (Boolean) One() bool { return true }
func (Boolean) Add(a, b bool) bool { return a != b }
func (Boolean) Negate(a bool) bool { return a }
func (Boolean) Subtract(a, b bool) bool { return a != b }
func (Boolean) Multiply(a, b bool) bool { return a && b }
func (Boolean) IsZero(a bool) bool { return !a }
func (Boolean) Equal(a, b bool) bool { return a == b }
func (Boolean) ValueOf(n int) bool { return n%2 != 0 }
func (Boolean) Characteristic() int { return 2 }
func (Boolean) String() string { return "GF(2)" }

// Invert returns a; it panics when a is false.
func (Boolean) Invert(a bool) bool {
	if !a {
		panic(divisionByZero("Boolean.Invert"))
	}

	return a
}

// Divide returns a; it panics when b is false.
func (Boolean) Divide(a, b bool) bool {
	if !b {
		panic(divisionByZero("Boolean.Divide"))
	}

	return a
}
