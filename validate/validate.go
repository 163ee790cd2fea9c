// SPDX-License-Identifier: MIT
package validate

import (
	"math/bits"

	"github.com/katalvlaran/hgpart/hypergraph"
)

// Report is the outcome of an independent recomputation over (H, assign).
type Report struct {
	KM1             int64
	MaxBlock        int32
	MinBlock        int32
	Feasible        bool
	ImbalanceRatio  float64 // MaxBlock / (n/k), 1.0 at perfect balance
}

// Check recomputes counts, flags, KM1, and block sizes from scratch for the
// given assignment, independent of any incrementally maintained state.
//
// Complexity: O(P + n), P = Σ|e|.
func Check(h *hypergraph.Hypergraph, assign []uint8, k int, cap int32) Report {
	blockSize := make([]int32, k)
	for _, b := range assign {
		blockSize[b]++
	}

	var km1 int64
	for e := 0; e < h.NumEdges(); e++ {
		var mask uint64
		for _, v := range h.EdgePins(e) {
			mask |= 1 << uint(assign[v])
		}
		km1 += int64(bits.OnesCount64(mask)) - 1
	}

	maxB, minB := blockSize[0], blockSize[0]
	feasible := true
	for _, sz := range blockSize {
		if sz > maxB {
			maxB = sz
		}
		if sz < minB {
			minB = sz
		}
		if sz > cap {
			feasible = false
		}
	}

	n := len(assign)
	avg := float64(n) / float64(k)
	ratio := 1.0
	if avg > 0 {
		ratio = float64(maxB) / avg
	}

	return Report{
		KM1:            km1,
		MaxBlock:       maxB,
		MinBlock:       minB,
		Feasible:       feasible,
		ImbalanceRatio: ratio,
	}
}

