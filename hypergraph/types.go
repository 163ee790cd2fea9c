// SPDX-License-Identifier: MIT
package hypergraph

import "errors"

// Sentinel errors for hypergraph construction. Callers should use errors.Is
// to classify a failure; these are never wrapped with string formatting at
// the definition site (see builder/errors.go for the convention this
// follows).
var (
	// ErrVertexCount indicates a non-positive vertex count was supplied to Build.
	ErrVertexCount = errors.New("hypergraph: vertex count must be positive")

	// ErrShortEdge indicates an edge with fewer than two pins.
	ErrShortEdge = errors.New("hypergraph: edge has fewer than two pins")

	// ErrVertexRange indicates a pin references a vertex id outside [0,n).
	ErrVertexRange = errors.New("hypergraph: vertex id out of range")

	// ErrDuplicatePin indicates a pin appears more than once within the same edge.
	ErrDuplicatePin = errors.New("hypergraph: duplicate pin within edge")
)

// Hypergraph is an immutable CSR-style incidence store for H=(V,E).
//
// edgePins concatenates the vertex ids of every edge in edge order;
// edgeOffset delimits them so edge e occupies
// edgePins[edgeOffset[e]:edgeOffset[e+1]]. nodeEdges/nodeOffset is the
// transpose: the list of edges incident to each vertex. Pin order within an
// edge is preserved from the input; node_edges order is ascending by edge id
// (a byproduct of the counting-sort construction), which keeps iteration
// deterministic.
type Hypergraph struct {
	n int // vertex count
	m int // edge count

	edgePins   []int32 // flat pin list, length = Σ|e|
	edgeOffset []int32 // length m+1

	nodeEdges  []int32 // flat incident-edge list, length = Σ|e|
	nodeOffset []int32 // length n+1
}

// NumVertices returns |V|.
func (h *Hypergraph) NumVertices() int { return h.n }

// NumEdges returns |E|.
func (h *Hypergraph) NumEdges() int { return h.m }

// EdgePins returns the pins of edge e. The returned slice aliases internal
// storage and must not be mutated.
func (h *Hypergraph) EdgePins(e int) []int32 {
	return h.edgePins[h.edgeOffset[e]:h.edgeOffset[e+1]]
}

// EdgeSize returns |e|, the pin count of edge e.
func (h *Hypergraph) EdgeSize(e int) int {
	return int(h.edgeOffset[e+1] - h.edgeOffset[e])
}

// NodeEdges returns the edges incident to vertex v. The returned slice
// aliases internal storage and must not be mutated.
func (h *Hypergraph) NodeEdges(v int) []int32 {
	return h.nodeEdges[h.nodeOffset[v]:h.nodeOffset[v+1]]
}

// NodeDegree returns the number of edges incident to vertex v.
func (h *Hypergraph) NodeDegree(v int) int {
	return int(h.nodeOffset[v+1] - h.nodeOffset[v])
}

// TotalPins returns Σ|e|, the combined length of edgePins (== len(nodeEdges)).
func (h *Hypergraph) TotalPins() int { return len(h.edgePins) }
