// SPDX-License-Identifier: MIT

// Package chain - the chain module: field operations lifted to sparse sums.
//
// Every method that produces a coefficient routes it through Sum.Put or an
// explicit IsZero check, which is where the no-zero-terms invariant lives.
// Accumulate and AccumulateTerm mutate their target; every other method
// allocates a fresh Sum and leaves its operands untouched.
package chain

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/field"
)

// Module lifts a Field[F] to chains over basis U. It is stateless.
type Module[U comparable, F any] struct {
	f field.Field[F]
}

// NewModule returns the chain module over f.
func NewModule[U comparable, F any](f field.Field[F]) *Module[U, F] {
	return &Module[U, F]{f: f}
}

// Field returns the coefficient field.
func (m *Module[U, F]) Field() field.Field[F] { return m.f }

// NewSum returns an empty chain.
func (m *Module[U, F]) NewSum() *Sum[U, F] { return NewSum[U, F]() }

// Singleton returns the chain c·u (empty when c is zero).
func (m *Module[U, F]) Singleton(u U, c F) *Sum[U, F] {
	s := newSumCap[U, F](1)
	s.Put(m.f, u, c)

	return s
}

// FromBoundary builds Σ ValueOf(coeffs[i])·faces[i] from a raw boundary.
// Repeated faces accumulate. It panics when the slices differ in length,
// which is a broken stream rather than bad data.
//
// Complexity: O(len(faces)).
func (m *Module[U, F]) FromBoundary(coeffs []int, faces []U) *Sum[U, F] {
	if len(coeffs) != len(faces) {
		panic(fmt.Sprintf("chain: FromBoundary: %d coefficients for %d faces", len(coeffs), len(faces)))
	}
	s := newSumCap[U, F](len(faces))
	for i, u := range faces {
		m.AccumulateTerm(s, u, m.f.ValueOf(coeffs[i]))
	}

	return s
}

// FromValues builds Σ coeffs[i]·faces[i] from field values.
func (m *Module[U, F]) FromValues(coeffs []F, faces []U) *Sum[U, F] {
	if len(coeffs) != len(faces) {
		panic(fmt.Sprintf("chain: FromValues: %d coefficients for %d faces", len(coeffs), len(faces)))
	}
	s := newSumCap[U, F](len(faces))
	for i, u := range faces {
		m.AccumulateTerm(s, u, coeffs[i])
	}

	return s
}

// AccumulateTerm performs target[u] += c in place.
func (m *Module[U, F]) AccumulateTerm(target *Sum[U, F], u U, c F) {
	if m.f.IsZero(c) {
		return
	}
	if old, ok := target.terms[u]; ok {
		c = m.f.Add(old, c)
	}
	target.Put(m.f, u, c)
}

// Accumulate performs target += scalar·source in place.
// Terms that cancel to zero are removed from target. target and source must
// be distinct sums.
//
// Complexity: O(|source|).
func (m *Module[U, F]) Accumulate(target, source *Sum[U, F], scalar F) {
	if m.f.IsZero(scalar) {
		return
	}
	one := m.f.Equal(scalar, m.f.One())
	for u, c := range source.terms {
		if !one {
			c = m.f.Multiply(scalar, c)
		}
		m.AccumulateTerm(target, u, c)
	}
}

// Add returns a + b.
func (m *Module[U, F]) Add(a, b *Sum[U, F]) *Sum[U, F] {
	out := a.Clone()
	m.Accumulate(out, b, m.f.One())

	return out
}

// Subtract returns a - b.
func (m *Module[U, F]) Subtract(a, b *Sum[U, F]) *Sum[U, F] {
	out := a.Clone()
	m.Accumulate(out, b, m.f.Negate(m.f.One()))

	return out
}

// Scale returns c·a.
func (m *Module[U, F]) Scale(c F, a *Sum[U, F]) *Sum[U, F] {
	out := newSumCap[U, F](a.Len())
	m.Accumulate(out, a, c)

	return out
}

// Negate returns -a.
func (m *Module[U, F]) Negate(a *Sum[U, F]) *Sum[U, F] {
	return m.Scale(m.f.Negate(m.f.One()), a)
}

// Equal reports whether a and b have identical terms.
func (m *Module[U, F]) Equal(a, b *Sum[U, F]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for u, ca := range a.terms {
		cb, ok := b.terms[u]
		if !ok || !m.f.Equal(ca, cb) {
			return false
		}
	}

	return true
}

// Evaluate returns the pairing <cochain, chain> = Σ cochain[u]·chain[u].
// It iterates the smaller operand.
func (m *Module[U, F]) Evaluate(cochain, chain *Sum[U, F]) F {
	small, large := chain, cochain
	if cochain.Len() < chain.Len() {
		small, large = cochain, chain
	}
	acc := m.f.Zero()
	for u, c := range small.terms {
		if d, ok := large.terms[u]; ok {
			acc = m.f.Add(acc, m.f.Multiply(c, d))
		}
	}

	return acc
}

// ApplyLinear extends image linearly: it returns Σ a[u]·image(u).
// With image = boundary this is the boundary map on chains.
func (m *Module[U, F]) ApplyLinear(a *Sum[U, F], image func(U) *Sum[U, F]) *Sum[U, F] {
	out := m.NewSum()
	for u, c := range a.terms {
		m.Accumulate(out, image(u), c)
	}

	return out
}
