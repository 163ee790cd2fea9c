package refine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/partstate"
	"github.com/katalvlaran/hgpart/refine"
)

// buildBenchHypergraph builds a clique-chain hypergraph of n vertices with
// a deliberately bad round-robin seed, so every RunIteration has a full
// score phase to perform.
func buildBenchHypergraph(n, k int) (*hypergraph.Hypergraph, []uint8) {
	var edges [][]int32
	for lo := 0; lo+8 <= n; lo += 4 {
		pins := make([]int32, 8)
		for i := 0; i < 8; i++ {
			pins[i] = int32(lo + i)
		}
		edges = append(edges, pins)
	}
	h, err := hypergraph.Build(n, edges)
	if err != nil {
		panic(err)
	}
	assign := make([]uint8, n)
	for v := range assign {
		assign[v] = uint8(v % k)
	}
	return h, assign
}

// BenchmarkRunIteration measures one full score/select/commit/bookkeeping
// cycle (the dominant cost being the parallel score phase), varying the
// worker fan-out.
//
// Complexity: O(n*k) score work spread over Workers goroutines.
func BenchmarkRunIteration(b *testing.B) {
	const n, k = 2000, 8
	for _, workers := range []int{1, 4, 8} {
		workers := workers
		b.Run(workersName(workers), func(b *testing.B) {
			h, assign := buildBenchHypergraph(n, k)
			ps := partstate.New(k, partstate.Cap(n, k, 0.25), assign)
			fs := flagstore.New(h.NumEdges(), k)
			fs.BuildFromAssignment(h, assign)
			eng := refine.NewEngine(h, ps, fs, k, workers)
			sched := refine.Schedule{M: int32(n), Alpha: 1.0, T: 4}
			km1 := fs.KM1()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := eng.RunIteration(context.Background(), i, sched, km1, km1+1)
				if err != nil {
					b.Fatalf("RunIteration: %v", err)
				}
				km1 = res.KM1
			}
		})
	}
}

func workersName(w int) string {
	switch w {
	case 1:
		return "workers=1"
	case 4:
		return "workers=4"
	default:
		return "workers=8"
	}
}
