// Package flagstore_test provides benchmarks for Store's hot paths.
package flagstore_test

import (
	"testing"

	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
)

// buildCliqueChain builds n vertices grouped into edges of size 8 (a chain
// of overlapping cliques), large enough to give ApplyMove a realistic
// incident-edge fan-out per vertex.
func buildCliqueChain(n int) (*hypergraph.Hypergraph, []uint8) {
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
		assign[v] = uint8(v % 4)
	}
	return h, assign
}

// BenchmarkApplyMove measures the cost of moving a single vertex across
// blocks, cycling through all vertices and moving each to the next block
// modulo k.
//
// Complexity: expected O(deg(v)) per call.
func BenchmarkApplyMove(b *testing.B) {
	const n = 2000
	h, assign := buildCliqueChain(n)
	k := 4
	fs := flagstore.New(h.NumEdges(), k)
	fs.BuildFromAssignment(h, assign)

	b.ReportAllocs()
	b.ResetTimer()

	cur := append([]uint8(nil), assign...)
	for i := 0; i < b.N; i++ {
		v := i % n
		from := cur[v]
		to := (from + 1) % uint8(k)
		fs.ApplyMove(h, v, from, to)
		cur[v] = to
	}
}

// BenchmarkKM1 measures the cost of recomputing the connectivity objective
// from the current flags.
//
// Complexity: O(m).
func BenchmarkKM1(b *testing.B) {
	const n = 2000
	h, assign := buildCliqueChain(n)
	fs := flagstore.New(h.NumEdges(), 4)
	fs.BuildFromAssignment(h, assign)

	b.ReportAllocs()
	b.ResetTimer()

	var sink int64
	for i := 0; i < b.N; i++ {
		sink = fs.KM1()
	}
	_ = sink
}
