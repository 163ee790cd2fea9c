package genhgr

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hgpart/hypergraph"
)

// Sentinel errors for Generate's parameter domain.
var (
	ErrTooFewVertices = errors.New("genhgr: n must be at least 2")
	ErrTooFewEdges    = errors.New("genhgr: m must be at least 1")
	ErrTooFewClusters = errors.New("genhgr: k must be at least 1")
	ErrBadClusterBias = errors.New("genhgr: clusterBias must be in [0,1]")
)

const (
	minEdgeSize = 2
	maxEdgeSize = 6
)

// Generate produces a deterministic synthetic hypergraph over n vertices
// with m edges, seeded from seed for bitwise reproducibility.
//
// Vertices are assigned round-robin to k hidden clusters (a ground-truth
// partition, not exposed to the caller). Each edge is drawn one of two ways,
// chosen by an independent Bernoulli(clusterBias) trial: with probability
// clusterBias all its pins come from a single randomly chosen cluster
// (producing a separable, low-KM1-optimum instance); otherwise its pins are
// drawn uniformly across all n vertices (producing cross-cluster noise).
// Edge size is uniform in [2,6]. clusterBias must lie in [0,1]; 0 yields a
// purely random instance, 1 a perfectly clustered one.
func Generate(n, m, k int, seed int64, clusterBias float64) (*hypergraph.Hypergraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("genhgr.Generate: n=%d: %w", n, ErrTooFewVertices)
	}
	if m < 1 {
		return nil, fmt.Errorf("genhgr.Generate: m=%d: %w", m, ErrTooFewEdges)
	}
	if k < 1 {
		return nil, fmt.Errorf("genhgr.Generate: k=%d: %w", k, ErrTooFewClusters)
	}
	if clusterBias < 0 || clusterBias > 1 {
		return nil, fmt.Errorf("genhgr.Generate: clusterBias=%v: %w", clusterBias, ErrBadClusterBias)
	}

	rng := rand.New(rand.NewSource(seed))

	clusters := make([][]int32, k)
	for v := 0; v < n; v++ {
		c := v % k
		clusters[c] = append(clusters[c], int32(v))
	}

	edges := make([][]int32, 0, m)
	for e := 0; e < m; e++ {
		size := minEdgeSize + rng.Intn(maxEdgeSize-minEdgeSize+1)
		if size > n {
			size = n
		}

		var pool []int32
		if rng.Float64() < clusterBias {
			pool = clusterFor(clusters, rng, size)
		}
		if len(pool) < size {
			pool = allVertices(n)
		}

		edges = append(edges, sample(rng, pool, size))
	}

	return hypergraph.Build(n, edges)
}

// clusterFor picks a random non-empty cluster with at least size vertices,
// retrying a bounded number of times before giving up (caller falls back to
// the full vertex pool).
func clusterFor(clusters [][]int32, rng *rand.Rand, size int) []int32 {
	const attempts = 8
	for i := 0; i < attempts; i++ {
		c := clusters[rng.Intn(len(clusters))]
		if len(c) >= size {
			return c
		}
	}
	return nil
}

func allVertices(n int) []int32 {
	all := make([]int32, n)
	for i := range all {
		all[i] = int32(i)
	}
	return all
}

// sample draws size distinct vertices from pool uniformly without
// replacement by shuffling a local copy of pool in full and keeping its
// first size entries; pool itself is left untouched.
func sample(rng *rand.Rand, pool []int32, size int) []int32 {
	cp := append([]int32(nil), pool...)
	rng.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	return append([]int32(nil), cp[:size]...)
}
