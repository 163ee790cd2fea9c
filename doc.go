// Package hgpart partitions hypergraphs to minimize the KM1 connectivity
// objective Σ_e (λ(e)-1) under a per-block balance cap, via an initial
// size-bucketed clustering followed by tabu-and-aspiration local search
// wrapped in an iterated local search controller. See SPEC_FULL.md for the
// full component breakdown and DESIGN.md for the grounding of each package.
package hgpart
