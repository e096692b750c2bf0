// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvtopo/field"
)

// Sum is a sparse formal sum Σ c_u·u with unique keys and no zero coefficients.
//
// The zero-test needs a field, so the invariant is enforced by the Module and
// by Put, which takes the field explicitly. Iteration order is unspecified.
type Sum[U comparable, F any] struct {
	terms map[U]F
}

// NewSum returns an empty sum.
func NewSum[U comparable, F any]() *Sum[U, F] {
	return &Sum[U, F]{terms: make(map[U]F)}
}

// newSumCap returns an empty sum with room for n terms.
func newSumCap[U comparable, F any](n int) *Sum[U, F] {
	return &Sum[U, F]{terms: make(map[U]F, n)}
}

// Get returns the coefficient of u and whether it is present.
func (s *Sum[U, F]) Get(u U) (F, bool) {
	c, ok := s.terms[u]
	return c, ok
}

// Contains reports whether u has a nonzero coefficient.
func (s *Sum[U, F]) Contains(u U) bool {
	_, ok := s.terms[u]
	return ok
}

// Put sets the coefficient of u, deleting the term when c is zero in f.
func (s *Sum[U, F]) Put(f field.Field[F], u U, c F) {
	if f.IsZero(c) {
		delete(s.terms, u)
		return
	}
	s.terms[u] = c
}

// Remove deletes the term u if present.
func (s *Sum[U, F]) Remove(u U) { delete(s.terms, u) }

// Len returns the number of nonzero terms.
func (s *Sum[U, F]) Len() int { return len(s.terms) }

// IsEmpty reports whether the sum is zero.
func (s *Sum[U, F]) IsEmpty() bool { return len(s.terms) == 0 }

// Range calls fn for every term until fn returns false.
// fn must not mutate s.
func (s *Sum[U, F]) Range(fn func(u U, c F) bool) {
	for u, c := range s.terms {
		if !fn(u, c) {
			return
		}
	}
}

// Keys returns the basis elements with nonzero coefficient, in unspecified order.
func (s *Sum[U, F]) Keys() []U {
	keys := make([]U, 0, len(s.terms))
	for u := range s.terms {
		keys = append(keys, u)
	}

	return keys
}

// Terms returns a copy of the underlying map.
func (s *Sum[U, F]) Terms() map[U]F {
	out := make(map[U]F, len(s.terms))
	for u, c := range s.terms {
		out[u] = c
	}

	return out
}

// Clone returns an independent copy. Coefficients are copied by value, so
// pointer-valued fields (e.g. *big.Rat) share values; fields never mutate them.
func (s *Sum[U, F]) Clone() *Sum[U, F] {
	return &Sum[U, F]{terms: s.Terms()}
}

// Format renders the sum as "c1·u1 + c2·u2" with terms sorted by less.
// An empty sum renders as "0".
func (s *Sum[U, F]) Format(less func(a, b U) bool) string {
	if len(s.terms) == 0 {
		return "0"
	}
	keys := s.Keys()
	slices.SortFunc(keys, func(a, b U) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})

	var b strings.Builder
	for i, u := range keys {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%v·%v", s.terms[u], u)
	}

	return b.String()
}

// String renders the sum with terms ordered by their formatted text.
func (s *Sum[U, F]) String() string {
	return s.Format(func(a, b U) bool { return fmt.Sprint(a) < fmt.Sprint(b) })
}
