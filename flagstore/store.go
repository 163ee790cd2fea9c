// SPDX-License-Identifier: MIT
package flagstore

import (
	"math/bits"

	"github.com/katalvlaran/hgpart/hypergraph"
)

// Store holds, for every edge e, the per-block pin counts and the two
// derived k-bit masks flags_any/flags_double (k <= 64, one machine word
// each). Rows are stored flat (edge-major) to keep BuildFromAssignment and
// ApplyMove allocation-free after construction.
type Store struct {
	k int
	m int

	count       []uint8 // len m*k, row e at [e*k : e*k+k]
	flagsAny    []uint64
	flagsDouble []uint64
}

// New allocates a zeroed Store for an m-edge hypergraph and k blocks.
// Callers populate it via BuildFromAssignment before using ApplyMove.
func New(m, k int) *Store {
	return &Store{
		k:           k,
		m:           m,
		count:       make([]uint8, m*k),
		flagsAny:    make([]uint64, m),
		flagsDouble: make([]uint64, m),
	}
}

// BuildFromAssignment populates counts and flags from scratch via a single
// linear pass over every (edge, pin): count[e, assign[v]]++ for each pin v
// of each edge e, then flags are derived from the final counts.
//
// Complexity: O(P), P = Σ|e|.
func (s *Store) BuildFromAssignment(h *hypergraph.Hypergraph, assign []uint8) {
	for e := 0; e < s.m; e++ {
		row := s.count[e*s.k : e*s.k+s.k]
		for _, v := range h.EdgePins(e) {
			b := assign[v]
			if row[b] < 255 {
				row[b]++
			}
		}
		var any, double uint64
		for b := 0; b < s.k; b++ {
			if row[b] >= 1 {
				any |= 1 << uint(b)
			}
			if row[b] >= 2 {
				double |= 1 << uint(b)
			}
		}
		s.flagsAny[e] = any
		s.flagsDouble[e] = double
	}
}

// ApplyMove updates every edge incident to v to reflect v moving from block
// from to block to. It is a no-op if from == to (the engine never calls it
// that way; the check exists to keep the primitive correct in isolation).
//
// Complexity: O(deg(v)), independent of edge fan-out (each incident edge
// costs two count updates and two flag-bit recomputations).
func (s *Store) ApplyMove(h *hypergraph.Hypergraph, v int, from, to uint8) {
	if from == to {
		return
	}
	for _, e32 := range h.NodeEdges(v) {
		e := int(e32)
		row := s.count[e*s.k : e*s.k+s.k]

		if row[from] < 255 {
			row[from]--
		}
		if row[to] < 255 {
			row[to]++
		}

		s.setFlags(e, from, row[from])
		s.setFlags(e, to, row[to])
	}
}

// setFlags recomputes the flags_any/flags_double bit for block b of edge e
// from its updated count.
func (s *Store) setFlags(e int, b uint8, c uint8) {
	bit := uint64(1) << uint(b)
	switch {
	case c == 0:
		s.flagsAny[e] &^= bit
		s.flagsDouble[e] &^= bit
	case c == 1:
		s.flagsAny[e] |= bit
		s.flagsDouble[e] &^= bit
	default: // c >= 2
		s.flagsAny[e] |= bit
		s.flagsDouble[e] |= bit
	}
}

// FlagsAny returns the k-bit mask of blocks with >=1 pin of edge e.
func (s *Store) FlagsAny(e int) uint64 { return s.flagsAny[e] }

// FlagsDouble returns the k-bit mask of blocks with >=2 pins of edge e.
func (s *Store) FlagsDouble(e int) uint64 { return s.flagsDouble[e] }

// Count returns the (possibly saturated) pin count of edge e in block b.
func (s *Store) Count(e int, b uint8) uint8 { return s.count[e*s.k+int(b)] }

// Lambda returns λ(e), the number of distinct blocks touching edge e.
func (s *Store) Lambda(e int) int { return bits.OnesCount64(s.flagsAny[e]) }

// KM1 recomputes Σ_e (λ(e)-1) from the current flags, the connectivity
// objective the engine minimizes.
//
// Complexity: O(m).
func (s *Store) KM1() int64 {
	var km1 int64
	for e := 0; e < s.m; e++ {
		km1 += int64(bits.OnesCount64(s.flagsAny[e])) - 1
	}
	return km1
}

// Clone returns a deep, independent copy of the store, used to snapshot
// best-so-far state before an unconditional perturbation.
func (s *Store) Clone() *Store {
	return &Store{
		k:           s.k,
		m:           s.m,
		count:       append([]uint8(nil), s.count...),
		flagsAny:    append([]uint64(nil), s.flagsAny...),
		flagsDouble: append([]uint64(nil), s.flagsDouble...),
	}
}

// CopyFrom overwrites s in place with other's contents. Both must share the
// same (m,k) shape; used to restore from a Clone snapshot without
// reallocating.
func (s *Store) CopyFrom(other *Store) {
	copy(s.count, other.count)
	copy(s.flagsAny, other.flagsAny)
	copy(s.flagsDouble, other.flagsDouble)
}
