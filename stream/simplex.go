// SPDX-License-Identifier: MIT

// Package stream - Simplex, a comparable vertex set usable as a map key.
//
// Vertices are packed as fixed-width big-endian uint32 words into a string,
// so equality is string equality and the packed keys of two simplices of the
// same dimension compare exactly like their sorted vertex sequences.
package stream

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

const vertexWidth = 4 // bytes per packed vertex

// Simplex is an immutable set of vertices. The zero value is the empty simplex
// (dimension -1).
type Simplex struct {
	key string
}

// NewSimplex returns the simplex spanned by vs (order irrelevant).
// Errors: ErrInvalidSimplex for empty, negative, too large or repeated vertices.
func NewSimplex(vs ...int) (Simplex, error) {
	if len(vs) == 0 {
		return Simplex{}, fmt.Errorf("NewSimplex(): %w", ErrInvalidSimplex)
	}
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	buf := make([]byte, vertexWidth*len(sorted))
	for i, v := range sorted {
		if v < 0 || int64(v) > math.MaxUint32 {
			return Simplex{}, fmt.Errorf("NewSimplex(%v): vertex %d: %w", vs, v, ErrInvalidSimplex)
		}
		if i > 0 && sorted[i-1] == v {
			return Simplex{}, fmt.Errorf("NewSimplex(%v): repeated vertex %d: %w", vs, v, ErrInvalidSimplex)
		}
		binary.BigEndian.PutUint32(buf[i*vertexWidth:], uint32(v))
	}

	return Simplex{key: string(buf)}, nil
}

// MustSimplex is NewSimplex that panics on error.
func MustSimplex(vs ...int) Simplex {
	s, err := NewSimplex(vs...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dimension returns the number of vertices minus one.
func (s Simplex) Dimension() int { return len(s.key)/vertexWidth - 1 }

// Vertex returns the i-th smallest vertex.
func (s Simplex) Vertex(i int) int {
	return int(binary.BigEndian.Uint32([]byte(s.key[i*vertexWidth : (i+1)*vertexWidth])))
}

// Vertices returns the sorted vertex list.
func (s Simplex) Vertices() []int {
	n := len(s.key) / vertexWidth
	out := make([]int, n)
	for i := range out {
		out[i] = s.Vertex(i)
	}

	return out
}

// Contains reports whether v is a vertex of s.
func (s Simplex) Contains(v int) bool {
	_, found := slices.BinarySearch(s.Vertices(), v)
	return found
}

// Boundary returns the facets of s; the i-th facet omits the i-th vertex.
// A vertex has an empty boundary.
func (s Simplex) Boundary() []Simplex {
	n := len(s.key) / vertexWidth
	if n <= 1 {
		return nil
	}
	out := make([]Simplex, n)
	for i := 0; i < n; i++ {
		out[i] = Simplex{key: s.key[:i*vertexWidth] + s.key[(i+1)*vertexWidth:]}
	}

	return out
}

// BoundaryCoefficients returns (-1)^i for the i-th facet of Boundary.
func (s Simplex) BoundaryCoefficients() []int {
	n := len(s.key) / vertexWidth
	if n <= 1 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = 1 - 2*(i%2)
	}

	return out
}

// String renders the simplex as "[0,1,2]".
func (s Simplex) String() string {
	vs := s.Vertices()
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// CompareSimplices orders by dimension, then lexicographically by vertices.
// Faces therefore precede cofaces, which makes it a valid basis order for
// Comparator.
func CompareSimplices(a, b Simplex) int {
	if r := cmp.Compare(len(a.key), len(b.key)); r != 0 {
		return r
	}

	return strings.Compare(a.key, b.key)
}
