// SPDX-License-Identifier: MIT
package partstate

import (
	"errors"
	"fmt"
)

// ErrBlockRange indicates a block id outside [0,k).
var ErrBlockRange = errors.New("partstate: block id out of range")

// ErrVertexRange indicates a vertex id outside [0,n).
var ErrVertexRange = errors.New("partstate: vertex id out of range")

// State is the partition assignment: assign[v] in [0,k) for every vertex,
// plus the running block sizes needed to evaluate the balance constraint in
// O(1).
//
// Set is the only mutator and is not concurrency-safe: the refinement engine
// and balance repair call it exclusively from the driver thread, never while
// a parallel score phase is reading (see package doc).
type State struct {
	k         int
	assign    []uint8
	blockSize []int32
	cap       int32
}

// New creates a State for n vertices and k blocks with the given per-block
// capacity, seeding every vertex into assign[v]. It does not validate that
// assign produces a feasible partition; callers (package seed) are
// responsible for producing a feasible seed.
//
// Complexity: O(n).
func New(k int, cap int32, assign []uint8) *State {
	s := &State{
		k:         k,
		assign:    append([]uint8(nil), assign...),
		blockSize: make([]int32, k),
		cap:       cap,
	}
	for _, b := range s.assign {
		s.blockSize[b]++
	}
	return s
}

// NumVertices returns n.
func (s *State) NumVertices() int { return len(s.assign) }

// NumBlocks returns k.
func (s *State) NumBlocks() int { return s.k }

// Get returns the block currently holding vertex v.
func (s *State) Get(v int) uint8 { return s.assign[v] }

// Set moves vertex v into block b, updating block sizes. It is the caller's
// responsibility to have already decided the move is legal (b != Get(v));
// Set is a plain bookkeeping primitive, not a policy decision.
//
// Complexity: O(1).
func (s *State) Set(v int, b uint8) error {
	if int(b) >= s.k {
		return fmt.Errorf("partstate.Set: block %d: %w", b, ErrBlockRange)
	}
	if v < 0 || v >= len(s.assign) {
		return fmt.Errorf("partstate.Set: vertex %d: %w", v, ErrVertexRange)
	}
	old := s.assign[v]
	if old == b {
		return nil // no-op move, rejected upstream but harmless here
	}
	s.blockSize[old]--
	s.blockSize[b]++
	s.assign[v] = b
	return nil
}

// Size returns the current vertex count of block b.
func (s *State) Size(b uint8) int32 { return s.blockSize[b] }

// Cap returns the per-block capacity ⌈(n/k)(1+ε)⌉.
func (s *State) Cap() int32 { return s.cap }

// Slack returns max(0, cap - size(b)).
func (s *State) Slack(b uint8) int32 {
	slack := s.cap - s.blockSize[b]
	if slack < 0 {
		return 0
	}
	return slack
}

// Feasible reports whether every block is at or under capacity.
func (s *State) Feasible() bool {
	for _, sz := range s.blockSize {
		if sz > s.cap {
			return false
		}
	}
	return true
}

// Assignment returns a copy of the current assignment vector, safe for the
// caller to retain (e.g. as a best-so-far snapshot).
func (s *State) Assignment() []uint8 {
	return append([]uint8(nil), s.assign...)
}

// BlockSizes returns a copy of the current per-block size vector.
func (s *State) BlockSizes() []int32 {
	return append([]int32(nil), s.blockSize...)
}

// RestoreFrom overwrites the assignment and block sizes from a previously
// captured snapshot (as returned by Assignment). cap and k are unchanged.
//
// Complexity: O(n).
func (s *State) RestoreFrom(assign []uint8) {
	copy(s.assign, assign)
	for b := range s.blockSize {
		s.blockSize[b] = 0
	}
	for _, b := range s.assign {
		s.blockSize[b]++
	}
}

// Cap computes ⌈(n/k)(1+ε)⌉, the per-block capacity for n vertices split
// into k blocks with imbalance tolerance ε.
func Cap(n, k int, eps float64) int32 {
	raw := (float64(n) / float64(k)) * (1 + eps)
	c := int32(raw)
	if float64(c) < raw {
		c++
	}
	return c
}
