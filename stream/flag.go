// SPDX-License-Identifier: MIT

// Package stream - filtered flag (clique) complexes.
//
// Canonical model:
//   - A simplex is any clique of the graph with at most maxDim+1 vertices.
//   - Its filtration index is the maximum index of its vertices and edges,
//     which makes face ≤ coface automatic.
//
// Enumeration follows the incremental expansion of Zomorodian's fast
// Vietoris–Rips construction: every clique is grown from its smallest vertex
// by appending common upper neighbours, so each simplex is produced once.
//
// Determinism:
//   - Vertices are visited 0..n-1, upper neighbours in ascending order.
//   - RandomFlag draws from the supplied *rand.Rand only, in a fixed order.
package stream

import (
	"fmt"
	"math/rand"
	"slices"
)

// Edge is an undirected graph edge entering the filtration at Index.
type Edge struct {
	U, V  int
	Index int
}

// FlagComplex returns the finalized clique complex of the graph on
// len(vertexIndex) vertices, truncated at dimension maxDim.
//
// Errors:
//   - ErrInvalidEdge for loops or endpoints outside [0, n).
//   - ErrFaceAfterCoface when an edge enters before one of its endpoints.
//
// Complexity: O(number of simplices · n) time.
func FlagComplex(vertexIndex []int, edges []Edge, maxDim int) (*Explicit, error) {
	n := len(vertexIndex)
	upper := make([]map[int]int, n) // upper[u][v] = edge index, v > u
	for i := range upper {
		upper[i] = make(map[int]int)
	}
	for _, e := range edges {
		if e.U == e.V || e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
			return nil, fmt.Errorf("FlagComplex: edge %v: %w", e, ErrInvalidEdge)
		}
		if e.Index < vertexIndex[e.U] || e.Index < vertexIndex[e.V] {
			return nil, fmt.Errorf("FlagComplex: edge %v before an endpoint: %w", e, ErrFaceAfterCoface)
		}
		lo, hi := min(e.U, e.V), max(e.U, e.V)
		if prev, ok := upper[lo][hi]; ok {
			upper[lo][hi] = min(prev, e.Index)
			continue
		}
		upper[lo][hi] = e.Index
	}

	out := NewExplicit()
	var expand func(vs []int, candidates []int, idx int)
	expand = func(vs []int, candidates []int, idx int) {
		out.AddElement(MustSimplex(vs...), idx)
		if len(vs) > maxDim {
			return
		}
		for _, v := range candidates {
			next := idx
			next = max(next, vertexIndex[v])
			for _, u := range vs {
				next = max(next, upper[u][v])
			}
			var narrowed []int
			for _, w := range candidates {
				if w <= v {
					continue
				}
				if _, ok := upper[v][w]; ok {
					narrowed = append(narrowed, w)
				}
			}
			expand(append(slices.Clone(vs), v), narrowed, next)
		}
	}

	if maxDim >= 0 {
		for u := 0; u < n; u++ {
			nbrs := make([]int, 0, len(upper[u]))
			for v := range upper[u] {
				nbrs = append(nbrs, v)
			}
			slices.Sort(nbrs)
			expand([]int{u}, nbrs, vertexIndex[u])
		}
	}
	if err := out.Finalize(); err != nil {
		return nil, err
	}

	return out, nil
}

// RandomFlag returns a random filtered clique complex on n vertices.
//
// Model:
//   - vertex indices uniform in [0, spread);
//   - each pair is an edge with probability p, entering at max(endpoints) + U[0, spread);
//   - simplices of dimension ≥ 2 are then bumped by U[0, 2), sweeping dimensions
//     upward so every simplex stays at or above its facets.
//
// The result is a valid filtration but, after bumping, no longer a pure flag filtration.
func RandomFlag(rng *rand.Rand, n int, p float64, maxDim int) (*Explicit, error) {
	const spread = 3
	vertexIndex := make([]int, n)
	for i := range vertexIndex {
		vertexIndex[i] = rng.Intn(spread)
	}
	var edges []Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, Edge{U: i, V: j, Index: max(vertexIndex[i], vertexIndex[j]) + rng.Intn(spread)})
			}
		}
	}
	out, err := FlagComplex(vertexIndex, edges, maxDim)
	if err != nil {
		return nil, err
	}

	simplices := slices.Clone(out.order)
	slices.SortFunc(simplices, CompareSimplices)
	for _, s := range simplices {
		if s.Dimension() < 2 {
			continue
		}
		idx := out.index[s]
		for _, face := range s.Boundary() {
			idx = max(idx, out.index[face])
		}
		out.index[s] = idx + rng.Intn(2)
	}
	if err = out.Finalize(); err != nil {
		return nil, err
	}

	return out, nil
}
