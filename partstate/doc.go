// SPDX-License-Identifier: MIT
// Package partstate holds the partition assignment (component B of the
// engine): which block each vertex belongs to, each block's current size,
// and the derived capacity/slack accounting used by the balance constraint.
//
// State is created once by the initial partitioner (package seed) and
// thereafter mutated only by the refinement engine and balance repair, one
// Set call at a time, always from the single driver thread (see §5 of the
// design: the score phase is read-only and runs in parallel; Set is never
// called concurrently with a reader, so no locking is required here, unlike
// the mutex-guarded core.Graph this package is adapted from).
package partstate
