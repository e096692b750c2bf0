// SPDX-License-Identifier: MIT

// Package persistence - barcode extraction.
//
// One function turns a Decomposition into a barcode for every output policy.
// A Policy differs from another only in:
//   - Witness: whether the interval's dimension and generator come from the
//     pivot side (R) or the column side (V);
//   - Polarity: whether essential classes are right-infinite (absolute) or
//     left-infinite (relative).
//
// Birth and death come from the decomposition's Kind: the pivot is born in
// Homology, the column in Cohomology.
package persistence

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/stream"
)

// Witness selects the matrix that supplies an interval's dimension and generator.
type Witness int

const (
	// FromR uses the reduced column R[i]; the dimension is that of its pivot.
	FromR Witness = iota
	// FromV uses the reducing column V[i]; the dimension is that of the column.
	FromV
)

// Polarity selects the open side of essential intervals.
type Polarity int

const (
	// RightInfinite emits [index, infinity).
	RightInfinite Polarity = iota
	// LeftInfinite emits (-infinity, index).
	LeftInfinite
)

// Policy is one of the four barcode conventions.
type Policy struct {
	Witness  Witness
	Polarity Polarity
}

var (
	// AbsoluteHomology reads PHCol with R witnesses and right-infinite classes.
	AbsoluteHomology = Policy{Witness: FromR, Polarity: RightInfinite}
	// RelativeHomology reads PHCol with V witnesses and left-infinite classes.
	RelativeHomology = Policy{Witness: FromV, Polarity: LeftInfinite}
	// AbsoluteCohomology reads PHRow with V witnesses and right-infinite classes.
	AbsoluteCohomology = Policy{Witness: FromV, Polarity: RightInfinite}
	// RelativeCohomology reads PHRow with R witnesses and left-infinite classes.
	RelativeCohomology = Policy{Witness: FromR, Polarity: LeftInfinite}
)

// Valid reports whether both fields hold a defined value.
func (p Policy) Valid() bool {
	return (p.Witness == FromR || p.Witness == FromV) &&
		(p.Polarity == RightInfinite || p.Polarity == LeftInfinite)
}

// Homology reports whether p is read from a PHCol decomposition.
func (p Policy) Homology() bool {
	return (p.Witness == FromR) == (p.Polarity == RightInfinite)
}

// Absolute reports whether essential classes are right-infinite.
func (p Policy) Absolute() bool { return p.Polarity == RightInfinite }

func (p Policy) String() string {
	switch p {
	case AbsoluteHomology:
		return "absolute-homology"
	case RelativeHomology:
		return "relative-homology"
	case AbsoluteCohomology:
		return "absolute-cohomology"
	case RelativeCohomology:
		return "relative-cohomology"
	default:
		return fmt.Sprintf("Policy(%d,%d)", p.Witness, p.Polarity)
	}
}

// ParsePolicy maps the names printed by Policy.String back to policies.
// Errors: ErrUnknownPolicy.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range []Policy{AbsoluteHomology, RelativeHomology, AbsoluteCohomology, RelativeCohomology} {
		if p.String() == name {
			return p, nil
		}
	}

	return Policy{}, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicy)
}

const (
	opExtract          = "Extract"
	opComputeIntervals = "ComputeIntervals"
)

// Extract reads the barcode of d under policy.
//
// Errors: ErrUnknownPolicy, ErrFiltrationOrder (a pair with birth after death).
func (e *Engine[U, F]) Extract(d *Decomposition[U, F], policy Policy) (*barcode.Collection[int], error) {
	a, err := e.ExtractAnnotated(d, policy)
	if err != nil {
		return nil, err
	}

	return a.Forget(), nil
}

// ExtractAnnotated is Extract keeping a generator chain per interval: R[i]
// or V[i] for finite intervals by Witness, V[i] for essential ones.
//
// Implementation:
//   - Stage 1: for every pair in reduction order emit [index(birth), index(death))
//     unless degenerate, with the Witness' dimension and generator.
//   - Stage 2: for every unpaired column emit an essential interval of the
//     column's dimension on the Polarity's side.
//
// Both stages apply the output gate minDim ≤ dim < maxDim.
func (e *Engine[U, F]) ExtractAnnotated(d *Decomposition[U, F], policy Policy) (*barcode.Annotated[int, *chain.Sum[U, F]], error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", opExtract, policy, ErrUnknownPolicy)
	}
	out := barcode.NewAnnotated[int, *chain.Sum[U, F]]()
	var (
		start, end, dim int
		gen             *chain.Sum[U, F]
	)
	for _, pr := range d.Pairs() {
		if err := d.checkPair(opExtract, pr); err != nil {
			return nil, err
		}
		birth, death := d.birthDeath(pr)
		start, end = d.FiltrationIndex(birth), d.FiltrationIndex(death)
		if start == end {
			continue
		}
		if policy.Witness == FromR {
			dim, gen = d.Dimension(pr.Pivot), d.R[pr.Column]
		} else {
			dim, gen = d.Dimension(pr.Column), d.V[pr.Column]
		}
		if e.emits(dim) {
			out.AddInterval(dim, start, end, gen.Clone())
		}
	}
	for _, col := range d.Unpaired() {
		dim = d.Dimension(col)
		if !e.emits(dim) {
			continue
		}
		if policy.Polarity == RightInfinite {
			out.AddRightInfiniteInterval(dim, d.FiltrationIndex(col), d.V[col].Clone())
		} else {
			out.AddLeftInfiniteInterval(dim, d.FiltrationIndex(col), d.V[col].Clone())
		}
	}

	return out, nil
}

// ComputeIntervals runs PHCol for homology policies and PHRow for cohomology
// policies, then extracts the barcode.
func (e *Engine[U, F]) ComputeIntervals(s stream.Filtered[U], policy Policy) (*barcode.Collection[int], error) {
	a, err := e.ComputeAnnotatedIntervals(s, policy)
	if err != nil {
		return nil, err
	}

	return a.Forget(), nil
}

// ComputeAnnotatedIntervals is ComputeIntervals with generator chains.
func (e *Engine[U, F]) ComputeAnnotatedIntervals(s stream.Filtered[U], policy Policy) (*barcode.Annotated[int, *chain.Sum[U, F]], error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", opComputeIntervals, policy, ErrUnknownPolicy)
	}
	var (
		d   *Decomposition[U, F]
		err error
	)
	if policy.Homology() {
		d, err = e.PHCol(s)
	} else {
		d, err = e.PHRow(s)
	}
	if err != nil {
		return nil, err
	}

	return e.ExtractAnnotated(d, policy)
}
