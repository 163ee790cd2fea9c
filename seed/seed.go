package seed

import (
	"hash/fnv"
	"sort"

	"github.com/katalvlaran/hgpart/hypergraph"
)

// noSeed marks an edge whose micro-cluster has not (yet) been assigned a
// seed block; step 1 assigns every edge a cluster, so in practice every
// edge ends up with a seed, but step 2 is written to treat noSeed
// defensively (contributes nothing) rather than assume that invariant.
const noSeed = -1

// Initialize produces a feasible initial assignment for an n-vertex,
// k-block hypergraph under the given per-block capacity, following the
// three-stage algorithm of §4.E.
//
// Complexity: O(P log P) dominated by the bucket/signature sort and the
// vertex confidence sort, P = Σ|e|.
func Initialize(h *hypergraph.Hypergraph, k int, cap int32) []uint8 {
	n := h.NumVertices()

	seedBlock := clusterSeeds(h, k)
	scores := voteScores(h, seedBlock, k)
	order := confidenceOrder(scores, n, k)

	assign := make([]uint8, n)
	blockSize := make([]int32, k)
	for _, v := range order {
		top := topBlock(scores[v], k)
		var chosen int
		if blockSize[top] < cap {
			chosen = top
		} else {
			chosen = leastLoaded(blockSize, k)
		}
		assign[v] = uint8(chosen)
		blockSize[chosen]++
	}

	return assign
}

// clusterSeeds implements §4.E step 1: bucket edges by size ascending,
// group same-size edges sharing a sorted-pin signature into micro-clusters,
// and round-robin each cluster onto the lightest-loaded block (ties to the
// lowest block id).
func clusterSeeds(h *hypergraph.Hypergraph, k int) []int32 {
	m := h.NumEdges()
	order := make([]int32, m)
	for e := range order {
		order[e] = int32(e)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return h.EdgeSize(int(order[i])) < h.EdgeSize(int(order[j]))
	})

	seedBlock := make([]int32, m)
	for e := range seedBlock {
		seedBlock[e] = noSeed
	}

	load := make([]int64, k)
	i := 0
	for i < m {
		size := h.EdgeSize(int(order[i]))
		j := i
		for j < m && h.EdgeSize(int(order[j])) == size {
			j++
		}
		// [i,j) is one size bucket; group by signature within it, in the
		// stable order edges were encountered (ascending edge id, since
		// sort.SliceStable preserves original relative order for ties).
		clusters := make(map[uint64][]int32)
		var sigOrder []uint64
		for _, e := range order[i:j] {
			sig := signature(h.EdgePins(int(e)))
			if _, ok := clusters[sig]; !ok {
				sigOrder = append(sigOrder, sig)
			}
			clusters[sig] = append(clusters[sig], e)
		}
		for _, sig := range sigOrder {
			cluster := clusters[sig]
			b := leastLoaded64(load, k)
			load[b] += int64(len(cluster))
			for _, e := range cluster {
				seedBlock[e] = int32(b)
			}
		}
		i = j
	}
	return seedBlock
}

// signature hashes a copy of pins, sorted ascending, with FNV-1a so that
// edges sharing the same vertex set (regardless of input pin order) land in
// the same micro-cluster.
func signature(pins []int32) uint64 {
	sorted := append([]int32(nil), pins...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	h := fnv.New64a()
	buf := make([]byte, 4)
	for _, v := range sorted {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

// voteScores implements §4.E step 2: for every vertex, accumulate a
// length-k score vector, summing w(|e|) = 1/max(1,|e|-1) for each incident
// edge voting for its seed block.
func voteScores(h *hypergraph.Hypergraph, seedBlock []int32, k int) [][]float64 {
	n := h.NumVertices()
	scores := make([][]float64, n)
	for v := 0; v < n; v++ {
		row := make([]float64, k)
		for _, e32 := range h.NodeEdges(v) {
			e := int(e32)
			b := seedBlock[e]
			if b == noSeed {
				continue
			}
			size := h.EdgeSize(e)
			denom := size - 1
			if denom < 1 {
				denom = 1
			}
			row[b] += 1.0 / float64(denom)
		}
		scores[v] = row
	}
	return scores
}

// confidenceOrder implements §4.E step 3's sort: vertices ordered by
// (max-score - second-max-score) descending, ties broken by lower vertex id.
func confidenceOrder(scores [][]float64, n, k int) []int32 {
	order := make([]int32, n)
	confidence := make([]float64, n)
	for v := 0; v < n; v++ {
		max1, max2 := topTwo(scores[v], k)
		confidence[v] = max1 - max2
		order[v] = int32(v)
	}
	sort.SliceStable(order, func(i, j int) bool {
		vi, vj := order[i], order[j]
		if confidence[vi] != confidence[vj] {
			return confidence[vi] > confidence[vj]
		}
		return vi < vj
	})
	return order
}

// topTwo returns the largest and second-largest values in row[:k].
func topTwo(row []float64, k int) (max1, max2 float64) {
	for b := 0; b < k; b++ {
		v := row[b]
		if v > max1 {
			max2 = max1
			max1 = v
		} else if v > max2 {
			max2 = v
		}
	}
	return max1, max2
}

// topBlock returns the highest-scoring block for a vertex, ties broken by
// lower block id.
func topBlock(row []float64, k int) int {
	best := 0
	for b := 1; b < k; b++ {
		if row[b] > row[best] {
			best = b
		}
	}
	return best
}

// leastLoaded returns the block with the smallest int32 load, ties broken
// by lower block id.
func leastLoaded(load []int32, k int) int {
	best := 0
	for b := 1; b < k; b++ {
		if load[b] < load[best] {
			best = b
		}
	}
	return best
}

// leastLoaded64 is leastLoaded for int64 loads (used while clustering,
// before block sizes are tracked as int32 partition counts).
func leastLoaded64(load []int64, k int) int {
	best := 0
	for b := 1; b < k; b++ {
		if load[b] < load[best] {
			best = b
		}
	}
	return best
}
