// SPDX-License-Identifier: MIT

package persistence

import (
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/field"
)

const (
	panicNilField = "persistence: New: field must not be nil"
	panicNilBasis = "persistence: New: basis order must not be nil"
)

// Engine computes persistence of filtered streams with basis type U and
// coefficients F. It is immutable after New and safe for concurrent use.
type Engine[U comparable, F any] struct {
	f     field.Field[F]
	mod   *chain.Module[U, F]
	basis func(a, b U) int
	opts  options
}

// New returns an engine over f. basis breaks ties between elements of equal
// filtration index; it must be a strict total order in which every face
// precedes its cofaces (stream.CompareSimplices is one).
//
// Panics on a nil field or basis order and when the configured minimum
// dimension exceeds the maximum.
func New[U comparable, F any](f field.Field[F], basis func(a, b U) int, opts ...Option) *Engine[U, F] {
	if f == nil {
		panic(panicNilField)
	}
	if basis == nil {
		panic(panicNilBasis)
	}
	o := gatherOptions(opts...)
	if o.minDim > o.maxDim {
		panic(panicDimensionOrder)
	}

	return &Engine[U, F]{
		f:     f,
		mod:   chain.NewModule[U, F](f),
		basis: basis,
		opts:  o,
	}
}

// Field returns the coefficient field.
func (e *Engine[U, F]) Field() field.Field[F] { return e.f }

// Module returns the chain module over the engine's field.
func (e *Engine[U, F]) Module() *chain.Module[U, F] { return e.mod }

// MinDimension returns the lowest emitted interval dimension.
func (e *Engine[U, F]) MinDimension() int { return e.opts.minDim }

// MaxDimension returns the exclusive upper bound on emitted dimensions.
func (e *Engine[U, F]) MaxDimension() int { return e.opts.maxDim }

// emits reports whether an interval of dimension dim passes the output gate.
func (e *Engine[U, F]) emits(dim int) bool {
	return e.opts.minDim <= dim && dim < e.opts.maxDim
}

// coefficient returns the coefficient of u in s, zero when absent.
func (e *Engine[U, F]) coefficient(s *chain.Sum[U, F], u U) F {
	if c, ok := s.Get(u); ok {
		return c
	}

	return e.f.Zero()
}
