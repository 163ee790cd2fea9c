// Package seed implements the initial partitioner (component E): a
// size-bucketed edge-clustering seed assignment that gives the refinement
// engine a feasible, input-permutation-insensitive starting point.
//
// The algorithm (§4.E):
//  1. Bucket edges by size ascending; hash each edge's sorted pin list
//     (FNV-1a, the hashing scheme this package borrows from a hash-based
//     graph partitioner in the example pack) into a signature, and group
//     edges sharing a signature into micro-clusters. Round-robin each
//     cluster onto the lightest-loaded block.
//  2. Accumulate a length-k confidence vector per vertex by summing
//     w(|e|) = 1/max(1,|e|-1) over incident edges voting for their seed
//     block.
//  3. Sort vertices by confidence (max - second max) descending and place
//     each into its top-scoring block with remaining capacity, falling back
//     to the least-loaded block.
//
// Every tie is broken by (lower block id, lower vertex id). Output is
// always feasible; the flag store is then built from the resulting
// assignment in a single linear scan (flagstore.BuildFromAssignment).
package seed
