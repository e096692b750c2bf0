package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/field"
	"github.com/katalvlaran/lvtopo/persistence"
	"github.com/katalvlaran/lvtopo/stream"
)

func TestComputeAll_MatchesSequential(t *testing.T) {
	e := persistence.New[stream.Simplex, int64](field.MustModular(3), stream.CompareSimplices, persistence.WithMaxDimension(3))
	var streams []stream.Filtered[stream.Simplex]
	for seed := int64(0); seed < 16; seed++ {
		streams = append(streams, randomComplex(t, seed, 7))
	}

	got, err := e.ComputeAll(context.Background(), streams, persistence.AbsoluteCohomology)
	require.NoError(t, err)
	require.Len(t, got, len(streams))
	for i, s := range streams {
		want, err := e.ComputeIntervals(s, persistence.AbsoluteHomology)
		require.NoError(t, err)
		requireSameBarcode(t, want, got[i])
	}
}

func TestComputeAll_ReportsFailingStream(t *testing.T) {
	e := persistence.New[string, bool](field.Boolean{}, byName)
	streams := []stream.Filtered[string]{
		newListStream(cell{name: "a"}, cell{name: "b"}, cell{name: "ab", index: 1, faces: []string{"a", "b"}}),
		newListStream(cell{name: "ab", faces: []string{"a", "b"}}),
	}
	_, err := e.ComputeAll(context.Background(), streams, persistence.AbsoluteHomology)
	require.ErrorIs(t, err, persistence.ErrFiltrationOrder)
	require.Contains(t, err.Error(), "stream 1")
}

func TestComputeAll_Cancelled(t *testing.T) {
	e := persistence.New[stream.Simplex, bool](field.Boolean{}, stream.CompareSimplices)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.ComputeAll(ctx, []stream.Filtered[stream.Simplex]{filledTriangle(t)}, persistence.AbsoluteHomology)
	require.ErrorIs(t, err, context.Canceled)

	_, err = e.ComputeAll(context.Background(), nil, persistence.Policy{Polarity: 9})
	require.ErrorIs(t, err, persistence.ErrUnknownPolicy)
}
