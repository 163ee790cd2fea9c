// SPDX-License-Identifier: MIT
// Package hypergraph provides an immutable, CSR-style incidence store for
// hypergraphs: a flat pin array per edge plus its transpose (edges per
// vertex), built once and never mutated afterward.
//
// A Hypergraph is built from a flat edge list via Build. Construction
// rejects edges with fewer than two pins, out-of-range vertex ids, and
// duplicate pins within a single edge, failing fast with a sentinel error
// and no partial state.
//
// Complexity: Build is O(P) where P is the total pin count (Σ|e|). All
// accessors are O(1) slice lookups plus O(deg) iteration.
package hypergraph
