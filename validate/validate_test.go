package validate_test

import (
	"testing"

	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/validate"
	"github.com/stretchr/testify/require"
)

func TestCheckMatchesIncrementalKM1(t *testing.T) {
	h, err := hypergraph.Build(8, [][]int32{{0, 1, 2, 3, 4, 5, 6, 7}, {0, 2, 4, 6}})
	require.NoError(t, err)
	assign := []uint8{0, 0, 1, 1, 2, 2, 3, 3}
	fs := flagstore.New(h.NumEdges(), 4)
	fs.BuildFromAssignment(h, assign)

	report := validate.Check(h, assign, 4, 2)
	require.Equal(t, fs.KM1(), report.KM1)
}

func TestCheckFeasibility(t *testing.T) {
	h, err := hypergraph.Build(4, [][]int32{{0, 1, 2, 3}})
	require.NoError(t, err)
	assign := []uint8{0, 0, 0, 1}
	report := validate.Check(h, assign, 2, 3)
	require.True(t, report.Feasible)
	require.Equal(t, int32(3), report.MaxBlock)
	require.Equal(t, int32(1), report.MinBlock)

	report = validate.Check(h, assign, 2, 1)
	require.False(t, report.Feasible)
}
