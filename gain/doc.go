// Package gain implements the O(1)-per-edge KM1 delta model (component D):
// the change in the connectivity objective caused by moving a single vertex
// from one block to another, computed from the current flag snapshot with
// two bit tests per incident edge and no access to edge pins.
//
// Gain is a pure function of (Hypergraph, flagstore snapshot, move); it
// performs no mutation and is safe to call from many goroutines over a
// snapshot no writer is concurrently mutating (see refine's score phase).
package gain
