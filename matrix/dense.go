// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Flat row-major buffer with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Fixed loop orders everywhere; no map iteration in kernels.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtopo/field"
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix over a field.
//   - r,c hold dimensions (rows, cols), both ≥ 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[F any] struct {
	f    field.Field[F]
	r, c int
	data []F
}

var _ fmt.Stringer = (*Dense[bool])(nil)

// NewDense creates an r×c zero matrix over f.
// Empty shapes (0×n, n×0) are legal: an empty filtration window has them.
//
// Errors:
//   - ErrBadShape for negative rows or cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[F any](f field.Field[F], rows, cols int) (*Dense[F], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	buf := make([]F, rows*cols)
	zero := f.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[F]{f: f, r: rows, c: cols, data: buf}, nil
}

// Identity returns the n×n identity matrix over f.
func Identity[F any](f field.Field[F], n int) (*Dense[F], error) {
	m, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Field returns the coefficient field.
func (m *Dense[F]) Field() field.Field[F] { return m.f }

// Rows returns the number of rows.
func (m *Dense[F]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[F]) Cols() int { return m.c }

// At returns the element at (i, j).
// Errors: ErrOutOfRange.
func (m *Dense[F]) At(i, j int) (F, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		var zero F
		return zero, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j).
// Errors: ErrOutOfRange.
func (m *Dense[F]) Set(i, j int, v F) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy of the buffer. Element values are copied as-is;
// field operations never mutate their inputs, so sharing them is safe.
func (m *Dense[F]) Clone() *Dense[F] {
	data := make([]F, len(m.data))
	copy(data, m.data)

	return &Dense[F]{f: m.f, r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[0, 1]\n".
// GF(2) entries print as 0 and 1.
func (m *Dense[F]) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatEntry(m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

func formatEntry(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "1"
		}
		return "0"
	case interface{ RatString() string }:
		return x.RatString()
	}

	return fmt.Sprint(v)
}
