package gain

import (
	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
)

// bitSet reports whether bit b of mask is set.
func bitSet(mask uint64, b uint8) bool {
	return mask&(uint64(1)<<uint(b)) != 0
}

// Edge returns δ_e(v,a,b), the per-edge contribution to moving v from block
// a to block b across a single incident edge e, given e's current
// flags_any/flags_double snapshot:
//
//   - b becomes present (flags_any bit b was 0)      -> +1
//   - a disappears (flags_double bit a was 0,         -> -1
//     i.e. v was a's only pin in e)
//
// Both conditions are independent and both may apply to the same edge (v
// was a's only pin and b was absent), netting 0. Callers sum Edge over
// every incident edge to get the full move delta (Delta below).
func Edge(flagsAny, flagsDouble uint64, a, b uint8) int64 {
	var delta int64
	if !bitSet(flagsAny, b) {
		delta++
	}
	if !bitSet(flagsDouble, a) {
		delta--
	}
	return delta
}

// Delta computes Δ = Σ_{e ∈ edges(v)} δ_e(v,a,b), the total KM1 change from
// moving vertex v out of block a into block b (a != b), reading fs as a
// fixed snapshot. Negative Δ means the move improves (lowers) KM1.
//
// Complexity: O(deg(v)), two bit tests per incident edge.
func Delta(h *hypergraph.Hypergraph, fs *flagstore.Store, v int, a, b uint8) int64 {
	var delta int64
	for _, e32 := range h.NodeEdges(v) {
		e := int(e32)
		delta += Edge(fs.FlagsAny(e), fs.FlagsDouble(e), a, b)
	}
	return delta
}
