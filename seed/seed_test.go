package seed_test

import (
	"testing"

	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/partstate"
	"github.com/katalvlaran/hgpart/seed"
	"github.com/stretchr/testify/require"
)

func TestInitializeIsFeasible(t *testing.T) {
	h, err := hypergraph.Build(16, [][]int32{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15},
		{0, 4, 8, 12}, {1, 5, 9, 13},
	})
	require.NoError(t, err)

	cap := partstate.Cap(16, 4, 0)
	assign := seed.Initialize(h, 4, cap)
	require.Len(t, assign, 16)

	sizes := make([]int32, 4)
	for _, b := range assign {
		require.Less(t, int(b), 4)
		sizes[b]++
	}
	for _, sz := range sizes {
		require.LessOrEqual(t, sz, cap)
	}
}

func TestInitializeDeterministic(t *testing.T) {
	h, err := hypergraph.Build(20, [][]int32{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11},
		{12, 13, 14}, {15, 16, 17}, {18, 19, 0}, {1, 5, 9, 13, 17},
	})
	require.NoError(t, err)
	cap := partstate.Cap(20, 5, 0.03)

	a1 := seed.Initialize(h, 5, cap)
	a2 := seed.Initialize(h, 5, cap)
	require.Equal(t, a1, a2)
}

func TestInitializeTwoCliquesSeparable(t *testing.T) {
	// Two disjoint 8-cliques, k=2: the clustering seed should at least
	// produce a feasible split (S4's optimum is checked at the engine
	// level; here we only check the seed stage keeps feasibility).
	edges := [][]int32{}
	pins1 := make([]int32, 8)
	pins2 := make([]int32, 8)
	for i := 0; i < 8; i++ {
		pins1[i] = int32(i)
		pins2[i] = int32(i + 8)
	}
	edges = append(edges, pins1, pins2)
	h, err := hypergraph.Build(16, edges)
	require.NoError(t, err)

	cap := partstate.Cap(16, 2, 0)
	assign := seed.Initialize(h, 2, cap)
	sizes := make([]int32, 2)
	for _, b := range assign {
		sizes[b]++
	}
	require.LessOrEqual(t, sizes[0], cap)
	require.LessOrEqual(t, sizes[1], cap)
}
