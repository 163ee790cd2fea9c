// Package ils implements the ILS controller (component G): the outer
// refine -> perturb -> refine -> accept-or-restore loop that wraps
// package refine's inner iterations, plus the best-feasible-only
// acceptance rule that keeps convergence monotone in best-so-far (§9
// "Perturbation/acceptance": no simulated-annealing temperature).
//
// The controller owns the run's RNG, seeded once from the caller-provided
// seed so every run is bitwise reproducible (§4.G), and the best-so-far
// snapshot (assignment, KM1, flag-store clone) that the controller's own
// per-iteration bookkeeping (step 5 of §4.F, after each refine iteration)
// updates whenever a strictly lower feasible KM1 is reached — independent of ILS round
// boundaries. The round-level "Acceptance" step (§4.G step 4) is a
// different, coarser decision: whether the *live* search state continues
// from wherever a perturb+refine round landed, or resets to the best
// snapshot, preventing unbounded drift across rounds that don't pan out.
package ils
