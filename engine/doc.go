// Package engine wires components A-I (hypergraph, partstate, flagstore,
// gain, seed, refine, ils, repair, validate) into the single entry point
// named in §6: Partition. It owns no partitioning logic of its
// own — every decision belongs to one of the lettered packages — and is
// responsible only for parameter validation, construction order, the
// cancellation/repair/validate finalization sequence, and translating
// low-level sentinel errors into the four top-level kinds of §7
// (ErrInput, ErrParameter, ErrInfeasible, ErrCancelled).
package engine
