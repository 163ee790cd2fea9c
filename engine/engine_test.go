package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hgpart/enginecfg"
	"github.com/katalvlaran/hgpart/engine"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/stretchr/testify/require"
)

func TestPartitionTrivialTwoVertexOneEdge(t *testing.T) {
	h, err := hypergraph.Build(2, [][]int32{{0, 1}})
	require.NoError(t, err)

	assign, km1, feasible, _, err := engine.Partition(h, 2, 0, 1, 50)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, int64(1), km1) // cap=1 forces the 2-pin edge across both blocks, costing exactly 1
	require.Len(t, assign, 2)
}

func TestPartitionDisjointCliquesSeparate(t *testing.T) {
	a := []int32{0, 1, 2, 3, 4, 5}
	b := []int32{6, 7, 8, 9, 10, 11}
	h, err := hypergraph.Build(12, [][]int32{a, b})
	require.NoError(t, err)

	assign, km1, feasible, _, err := engine.Partition(h, 2, 0.2, 7, 200)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Equal(t, int64(0), km1)

	// Every pin of each clique lands in one block.
	block := assign[0]
	for _, v := range a {
		require.Equal(t, block, assign[v])
	}
}

func TestPartitionDeterministicAcrossRuns(t *testing.T) {
	a := []int32{0, 1, 2, 3, 4, 5}
	b := []int32{6, 7, 8, 9, 10, 11}
	h, err := hypergraph.Build(12, [][]int32{a, b})
	require.NoError(t, err)

	assign1, km1a, _, _, err := engine.Partition(h, 2, 0.2, 99, 150)
	require.NoError(t, err)
	assign2, km1b, _, _, err := engine.Partition(h, 2, 0.2, 99, 150)
	require.NoError(t, err)

	require.Equal(t, km1a, km1b)
	require.Equal(t, assign1, assign2)
}

func TestPartitionRejectsBadParameters(t *testing.T) {
	h, err := hypergraph.Build(4, [][]int32{{0, 1, 2, 3}})
	require.NoError(t, err)

	_, _, _, _, err = engine.Partition(h, 1, 0.1, 1, 10)
	require.ErrorIs(t, err, engine.ErrParameter)

	_, _, _, _, err = engine.Partition(h, 65, 0.1, 1, 10)
	require.ErrorIs(t, err, engine.ErrParameter)

	_, _, _, _, err = engine.Partition(h, 2, -0.1, 1, 10)
	require.ErrorIs(t, err, engine.ErrParameter)

	_, _, _, _, err = engine.Partition(h, 2, 0.1, 1, -1)
	require.ErrorIs(t, err, engine.ErrParameter)
}

func TestPartitionRejectsNilInput(t *testing.T) {
	_, _, _, _, err := engine.Partition(nil, 2, 0.1, 1, 10)
	require.ErrorIs(t, err, engine.ErrInput)
}

func TestPartitionEffortPresetFallback(t *testing.T) {
	h, err := hypergraph.Build(4, [][]int32{{0, 1, 2, 3}})
	require.NoError(t, err)

	// budget=0 defers to the effort preset rather than erroring.
	_, _, feasible, _, err := engine.Partition(h, 2, 0.5, 1, 0, enginecfg.WithEffort(0))
	require.NoError(t, err)
	require.True(t, feasible)
}

func TestPartitionCancellationReturnsFeasibleBest(t *testing.T) {
	h, err := hypergraph.Build(12, [][]int32{{0, 1, 2, 3, 4, 5}, {6, 7, 8, 9, 10, 11}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assign, _, feasible, _, err := engine.Partition(h, 2, 0.2, 1, 100, enginecfg.WithContext(ctx))
	require.ErrorIs(t, err, engine.ErrCancelled)
	require.True(t, feasible)
	require.Len(t, assign, 12)
}
