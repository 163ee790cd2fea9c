// Package repair implements balance repair (component H): the overflow
// evacuation pass run once after refinement/ILS terminate. It repeatedly
// picks the single most-improving move that relieves an overweight block
// without creating a new one, until every block is at or under capacity,
// then hands back to the caller (package engine), which validates the
// result directly. No refinement round runs after repair.
//
// Termination: each applied move strictly reduces
// Σ_{b overweight} max(0, size(b)-cap), which is bounded by the initial
// excess, so the loop always halts (§4.H). It fails only if no legal
// destination exists anywhere, which cannot happen whenever k*cap >= n —
// true by construction of cap — and is treated as an internal-corruption
// bug (ErrNoDestination), matching §7's classification of
// InfeasibleError.
package repair
