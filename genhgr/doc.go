// Package genhgr generates deterministic synthetic hypergraph instances for
// scenario S6 (large-scale regression) and cmd/hgpart-gen. It is an
// external collaborator: nothing here touches KM1, balance, or refinement.
//
// Grounded on builder/impl_random_sparse.go and builder/impl_random_regular.go:
// a single *rand.Rand seeded once from the caller's seed, a stable trial
// order (vertex-ascending, then edge-ascending), and no global rand state.
package genhgr
