// SPDX-License-Identifier: MIT
// Package flagstore maintains, for every hyperedge, a per-block pin count
// and the two derived bitmasks (flags_any, flags_double) the gain model
// reads. This is component C of the engine: the only high-traffic mutable
// state, built once from an initial assignment and thereafter updated
// incrementally by ApplyMove as vertices are moved between blocks.
//
// Invariants (checked by tests, not at runtime):
//
//	popcount(flags_any[e])   == number of distinct blocks touching e
//	flags_double[e]          ⊆ flags_any[e]
//	Σ_b count[e,b]            == |e|              (absent saturation)
//
// count[e,b] saturates at 255 (uint8). Saturation only affects edges with
// more than 255 pins resident in a single block at once; for such edges
// flags_double is already set and remains set for the lifetime of the
// store, which is all the gain model ever reads (see Delta in package
// gain) — exact counts above 255 are never required for correctness.
package flagstore
