// SPDX-License-Identifier: MIT

// Package field - prime modular field Z/pZ.
//
// Elements are int64 values normalized into [0, p). The modulus is capped at
// MaxModulus so that a product of two normalized elements fits in int64.
// Moduli up to inverseTableLimit get a precomputed inverse table, turning
// Invert into a single lookup inside the reduction's hot loop.
package field

import (
	"fmt"
	"math/big"
)

const (
	// MaxModulus is the largest accepted prime modulus (2^31 - 1).
	MaxModulus int64 = 1<<31 - 1

	// inverseTableLimit bounds the size of the cached inverse table.
	inverseTableLimit int64 = 1 << 16
)

// Modular is the prime field Z/pZ.
type Modular struct {
	p        int64   // prime modulus
	inverses []int64 // inverses[a] = a^-1 mod p; nil when p > inverseTableLimit
}

var _ Field[int64] = (*Modular)(nil)

// NewModular returns Z/pZ.
//
// Errors:
//   - ErrModulusRange if p < 2 or p > MaxModulus.
//   - ErrNotPrime if p is composite.
//
// Complexity: O(p) when the inverse table is built, O(log p) otherwise.
func NewModular(p int64) (*Modular, error) {
	if p < 2 || p > MaxModulus {
		return nil, fmt.Errorf("NewModular(%d): %w", p, ErrModulusRange)
	}
	// Baillie-PSW is exact below 2^64.
	if !big.NewInt(p).ProbablyPrime(0) {
		return nil, fmt.Errorf("NewModular(%d): %w", p, ErrNotPrime)
	}

	m := &Modular{p: p}
	if p <= inverseTableLimit {
		m.inverses = make([]int64, p)
		var a int64
		for a = 1; a < p; a++ {
			m.inverses[a] = m.euclidInverse(a)
		}
	}

	return m, nil
}

// MustModular is NewModular that panics on error; intended for constants and tests.
func MustModular(p int64) *Modular {
	m, err := NewModular(p)
	if err != nil {
		panic(err)
	}

	return m
}

// Modulus returns p.
func (m *Modular) Modulus() int64 { return m.p }

// normalize maps any int64 into [0, p).
func (m *Modular) normalize(a int64) int64 {
	a %= m.p
	if a < 0 {
		a += m.p
	}

	return a
}

func (m *Modular) Zero() int64 { return 0 }
func (m *Modular) One() int64 { return 1 }

func (m *Modular) Add(a, b int64) int64 {
	return m.normalize(m.normalize(a) + m.normalize(b))
}

func (m *Modular) Negate(a int64) int64 {
	return m.normalize(-m.normalize(a))
}

func (m *Modular) Subtract(a, b int64) int64 {
	return m.normalize(m.normalize(a) - m.normalize(b))
}

func (m *Modular) Multiply(a, b int64) int64 {
	return m.normalize(m.normalize(a) * m.normalize(b))
}

// Invert returns a^-1 mod p. It panics when a ≡ 0 (mod p).
func (m *Modular) Invert(a int64) int64 {
	a = m.normalize(a)
	if a == 0 {
		panic(divisionByZero(fmt.Sprintf("Modular(%d).Invert", m.p)))
	}
	if m.inverses != nil {
		return m.inverses[a]
	}

	return m.euclidInverse(a)
}

// Divide returns a·b^-1 mod p. It panics when b ≡ 0 (mod p).
func (m *Modular) Divide(a, b int64) int64 {
	return m.Multiply(a, m.Invert(b))
}

func (m *Modular) IsZero(a int64) bool { return m.normalize(a) == 0 }
func (m *Modular) Equal(a, b int64) bool { return m.normalize(a) == m.normalize(b) }
func (m *Modular) ValueOf(n int) int64 { return m.normalize(int64(n)) }
func (m *Modular) Characteristic() int { return int(m.p) }
func (m *Modular) String() string { return fmt.Sprintf("Z/%dZ", m.p) }

// euclidInverse runs the extended Euclidean algorithm on (a, p); a must be in [1, p).
func (m *Modular) euclidInverse(a int64) int64 {
	var (
		t, newT int64 = 0, 1
		r, newR       = m.p, a
		q       int64
	)
	for newR != 0 {
		q = r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}

	return m.normalize(t)
}
