// SPDX-License-Identifier: MIT
package hypergraph

import "fmt"

// Build constructs an immutable Hypergraph from n vertices (ids 0..n-1) and
// edges, a slice of pin lists in edge order. It validates every edge before
// any allocation that would be observable to the caller, so a failed Build
// never returns a partially constructed value.
//
// Rejects (fails with a wrapped sentinel, no mutation):
//   - n <= 0                                    -> ErrVertexCount
//   - an edge with fewer than two pins          -> ErrShortEdge
//   - a pin referencing a vertex outside [0,n)  -> ErrVertexRange
//   - a duplicate pin within one edge           -> ErrDuplicatePin
//
// Complexity: O(P) time and space, P = Σ|e|. The node_edges transpose is
// built via a counting-sort pass (bucket sizes, then fill), never a sort
// call, keeping construction linear in P.
func Build(n int, edges [][]int32) (*Hypergraph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("hypergraph.Build: n=%d: %w", n, ErrVertexCount)
	}

	m := len(edges)

	// Pass 1: validate every edge and compute the total pin count up front,
	// so edgePins/nodeOffset can be allocated exactly once.
	totalPins := 0
	seen := make(map[int32]struct{}) // reused per-edge duplicate-pin check
	for e, pins := range edges {
		if len(pins) < 2 {
			return nil, fmt.Errorf("hypergraph.Build: edge %d has %d pin(s): %w", e, len(pins), ErrShortEdge)
		}
		for k := range seen {
			delete(seen, k)
		}
		for _, v := range pins {
			if v < 0 || int(v) >= n {
				return nil, fmt.Errorf("hypergraph.Build: edge %d pin %d out of range [0,%d): %w", e, v, n, ErrVertexRange)
			}
			if _, dup := seen[v]; dup {
				return nil, fmt.Errorf("hypergraph.Build: edge %d repeats pin %d: %w", e, v, ErrDuplicatePin)
			}
			seen[v] = struct{}{}
		}
		totalPins += len(pins)
	}

	// Pass 2: lay out edgePins/edgeOffset directly from the validated input,
	// preserving pin order within each edge.
	edgePins := make([]int32, 0, totalPins)
	edgeOffset := make([]int32, m+1)
	for e, pins := range edges {
		edgeOffset[e] = int32(len(edgePins))
		edgePins = append(edgePins, pins...)
	}
	edgeOffset[m] = int32(len(edgePins))

	// Pass 3: build the node->edges transpose via counting sort.
	//   3a) count degree per vertex.
	//   3b) prefix-sum into nodeOffset.
	//   3c) second fill pass, each vertex's cursor walking forward from its
	//       own nodeOffset[v], producing edge ids in ascending order.
	degree := make([]int32, n)
	for _, v := range edgePins {
		degree[v]++
	}
	nodeOffset := make([]int32, n+1)
	for v := 0; v < n; v++ {
		nodeOffset[v+1] = nodeOffset[v] + degree[v]
	}
	nodeEdges := make([]int32, totalPins)
	cursor := make([]int32, n)
	copy(cursor, nodeOffset[:n])
	for e := 0; e < m; e++ {
		for _, v := range edgePins[edgeOffset[e]:edgeOffset[e+1]] {
			nodeEdges[cursor[v]] = int32(e)
			cursor[v]++
		}
	}

	return &Hypergraph{
		n:          n,
		m:          m,
		edgePins:   edgePins,
		edgeOffset: edgeOffset,
		nodeEdges:  nodeEdges,
		nodeOffset: nodeOffset,
	}, nil
}
