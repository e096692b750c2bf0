package persistence_test

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/stream"
)

// complexAt builds a finalized stream from (index, vertices...) rows.
func complexAt(t testing.TB, rows ...[]int) *stream.Explicit {
	t.Helper()
	e := stream.NewExplicit()
	for _, row := range rows {
		require.NoError(t, e.AddSimplex(row[0], row[1:]...))
	}
	require.NoError(t, e.Finalize())

	return e
}

// filledTriangle: vertices at 0, edges at 1, the 2-simplex at 2.
func filledTriangle(t testing.TB) *stream.Explicit {
	return complexAt(t,
		[]int{0, 0}, []int{0, 1}, []int{0, 2},
		[]int{1, 0, 1}, []int{1, 1, 2}, []int{1, 0, 2},
		[]int{2, 0, 1, 2},
	)
}

func hollowTriangle(t testing.TB) *stream.Explicit {
	return complexAt(t,
		[]int{0, 0}, []int{0, 1}, []int{0, 2},
		[]int{1, 0, 1}, []int{1, 1, 2}, []int{1, 0, 2},
	)
}

// hollowTetrahedron: vertices at 0, edges at 1, the four triangles at 2.
func hollowTetrahedron(t testing.TB) *stream.Explicit {
	e := stream.NewExplicit()
	for _, tri := range [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}} {
		require.NoError(t, e.AddSimplex(2, tri...))
	}
	for v := 0; v < 4; v++ {
		require.NoError(t, e.AddSimplex(0, v))
		for w := v + 1; w < 4; w++ {
			require.NoError(t, e.AddSimplex(1, v, w))
		}
	}
	require.NoError(t, e.Finalize())

	return e
}

func filledTriangleBarcode() *barcode.Collection[int] {
	want := barcode.NewCollection[int]()
	want.AddInterval(0, 0, 1)
	want.AddInterval(0, 0, 1)
	want.AddRightInfiniteInterval(0, 0)
	want.AddInterval(1, 1, 2)

	return want
}

func requireSameBarcode(t testing.TB, want, got *barcode.Collection[int]) {
	t.Helper()
	require.True(t, want.Equal(got), "barcode mismatch (-want +got):\n%s", cmp.Diff(want.Canonical(), got.Canonical()))
}

// listStream is an unvalidated stream of named cells, for malformed inputs.
type listStream struct {
	names  []string
	index  map[string]int
	dim    map[string]int
	faces  map[string][]string
	coeffs map[string][]int
}

type cell struct {
	name  string
	index int
	faces []string
}

func newListStream(cells ...cell) *listStream {
	s := &listStream{
		index:  make(map[string]int),
		dim:    make(map[string]int),
		faces:  make(map[string][]string),
		coeffs: make(map[string][]int),
	}
	for _, c := range cells {
		s.names = append(s.names, c.name)
		s.index[c.name] = c.index
		s.dim[c.name] = max(len(c.faces)-1, 0)
		s.faces[c.name] = c.faces
		for i := range c.faces {
			s.coeffs[c.name] = append(s.coeffs[c.name], 1-2*(i%2))
		}
	}

	return s
}

func (s *listStream) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range s.names {
			if !yield(n) {
				return
			}
		}
	}
}

func (s *listStream) Dimension(u string) int             { return s.dim[u] }
func (s *listStream) FiltrationIndex(u string) int        { return s.index[u] }
func (s *listStream) Boundary(u string) []string          { return s.faces[u] }
func (s *listStream) BoundaryCoefficients(u string) []int { return s.coeffs[u] }

func byName(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
