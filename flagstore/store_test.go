package flagstore_test

import (
	"testing"

	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/stretchr/testify/require"
)

func TestBuildFromAssignmentClique(t *testing.T) {
	h, err := hypergraph.Build(8, [][]int32{{0, 1, 2, 3, 4, 5, 6, 7}})
	require.NoError(t, err)

	assign := []uint8{0, 0, 1, 1, 2, 2, 3, 3}
	fs := flagstore.New(h.NumEdges(), 4)
	fs.BuildFromAssignment(h, assign)

	require.Equal(t, 4, fs.Lambda(0))
	require.Equal(t, int64(3), fs.KM1())
	require.Equal(t, uint8(2), fs.Count(0, 0))
}

func TestApplyMoveReversibility(t *testing.T) {
	h, err := hypergraph.Build(6, [][]int32{{0, 1, 2}, {2, 3, 4, 5}})
	require.NoError(t, err)
	assign := []uint8{0, 0, 1, 1, 2, 2}
	fs := flagstore.New(h.NumEdges(), 3)
	fs.BuildFromAssignment(h, assign)

	before := fs.Clone()
	fs.ApplyMove(h, 2, 1, 0)
	fs.ApplyMove(h, 2, 0, 1)

	require.Equal(t, before.KM1(), fs.KM1())
	for e := 0; e < h.NumEdges(); e++ {
		require.Equal(t, before.FlagsAny(e), fs.FlagsAny(e))
		require.Equal(t, before.FlagsDouble(e), fs.FlagsDouble(e))
		for b := 0; b < 3; b++ {
			require.Equal(t, before.Count(e, uint8(b)), fs.Count(e, uint8(b)))
		}
	}
}

func TestApplyMoveMatchesFromScratch(t *testing.T) {
	h, err := hypergraph.Build(6, [][]int32{{0, 1, 2}, {2, 3, 4, 5}, {0, 3}})
	require.NoError(t, err)
	assign := []uint8{0, 0, 1, 1, 2, 2}
	fs := flagstore.New(h.NumEdges(), 3)
	fs.BuildFromAssignment(h, assign)

	fs.ApplyMove(h, 2, 1, 2)
	assign[2] = 2

	rebuilt := flagstore.New(h.NumEdges(), 3)
	rebuilt.BuildFromAssignment(h, assign)

	require.Equal(t, rebuilt.KM1(), fs.KM1())
	for e := 0; e < h.NumEdges(); e++ {
		require.Equal(t, rebuilt.FlagsAny(e), fs.FlagsAny(e))
		require.Equal(t, rebuilt.FlagsDouble(e), fs.FlagsDouble(e))
	}
}

func TestApplyMoveNoOp(t *testing.T) {
	h, err := hypergraph.Build(3, [][]int32{{0, 1, 2}})
	require.NoError(t, err)
	assign := []uint8{0, 0, 1}
	fs := flagstore.New(h.NumEdges(), 2)
	fs.BuildFromAssignment(h, assign)
	before := fs.Clone()
	fs.ApplyMove(h, 0, 0, 0)
	require.Equal(t, before.FlagsAny(0), fs.FlagsAny(0))
}

func TestCloneCopyFromIndependence(t *testing.T) {
	h, err := hypergraph.Build(4, [][]int32{{0, 1, 2, 3}})
	require.NoError(t, err)
	assign := []uint8{0, 0, 1, 1}
	fs := flagstore.New(h.NumEdges(), 2)
	fs.BuildFromAssignment(h, assign)

	snap := fs.Clone()
	fs.ApplyMove(h, 0, 0, 1)
	require.NotEqual(t, snap.Count(0, 1), fs.Count(0, 1))

	fs.CopyFrom(snap)
	require.Equal(t, snap.Count(0, 1), fs.Count(0, 1))
}
