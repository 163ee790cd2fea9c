package enginecfg

// LessBlockThenVertex implements the engine-wide tie-break rule "(lower
// block id, lower vertex id)" named throughout §4.E and §4.F. Package seed
// applies the same rule inline (topBlock, leastLoaded, confidenceOrder)
// rather than calling this helper.
func LessBlockThenVertex(blockA, blockB uint8, vertexA, vertexB int32) bool {
	if blockA != blockB {
		return blockA < blockB
	}
	return vertexA < vertexB
}

// LessVertexThenBlock implements the select-phase tie-break "(v,b)" named
// in §4.F step 2: stable sort by Δ ascending, ties broken by (vertex id,
// block id).
func LessVertexThenBlock(vertexA, vertexB int32, blockA, blockB uint8) bool {
	if vertexA != vertexB {
		return vertexA < vertexB
	}
	return blockA < blockB
}
