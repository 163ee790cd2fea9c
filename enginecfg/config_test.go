package enginecfg_test

import (
	"testing"

	"github.com/katalvlaran/hgpart/enginecfg"
	"github.com/stretchr/testify/require"
)

func TestResolveRefinementOverridesEffort(t *testing.T) {
	cfg := enginecfg.Default()
	cfg.Effort = 0 // preset 300
	r := enginecfg.Resolve(cfg, 1000, 777)
	require.Equal(t, 777, r.Budget)
}

func TestResolveFallsBackToEffortPreset(t *testing.T) {
	cfg := enginecfg.Default()
	cfg.Effort = 5
	r := enginecfg.Resolve(cfg, 1000, 0)
	require.Equal(t, enginecfg.EffortBudget(5), r.Budget)
	require.Equal(t, 1000, r.Budget)
}

func TestResolveDefaultsInitialMoveCap(t *testing.T) {
	cfg := enginecfg.Default()
	r := enginecfg.Resolve(cfg, 800, 300)
	require.Equal(t, int32(100), r.InitialMoveCap)
}

func TestLinearDecayMonotone(t *testing.T) {
	prev := enginecfg.LinearDecay(1.0, 0.1, 0, 10)
	for i := 1; i < 10; i++ {
		cur := enginecfg.LinearDecay(1.0, 0.1, i, 10)
		require.LessOrEqual(t, cur, prev)
		prev = cur
	}
	require.InDelta(t, 0.1, enginecfg.LinearDecay(1.0, 0.1, 9, 10), 1e-9)
	require.InDelta(t, 1.0, enginecfg.LinearDecay(1.0, 0.1, 0, 10), 1e-9)
}

func TestWithEffortPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { enginecfg.WithEffort(6) })
}

func TestTieBreakOrdering(t *testing.T) {
	require.True(t, enginecfg.LessBlockThenVertex(0, 1, 100, 0))
	require.True(t, enginecfg.LessBlockThenVertex(0, 0, 2, 3))
	require.False(t, enginecfg.LessBlockThenVertex(0, 0, 3, 2))
}
