package refine

// Candidate is one (vertex, source block, destination block, predicted
// delta) tuple emitted by the score phase.
type Candidate struct {
	V             int32
	From, To      uint8
	Delta         int64
	ViaAspiration bool // true iff admitted only because it breaks tabu via aspiration
}

// Schedule is the set of per-iteration batch-sizing parameters decayed by
// enginecfg over the refinement budget (§4.F "Adaptive batch sizing").
type Schedule struct {
	M     int32   // global per-iteration move cap
	Alpha float64 // quota fraction in (0,1]
	T     int32   // tabu tenure applied to moves committed this iteration
}

// diversifyFraction bounds the share of non-improving candidates admitted
// into the select pool when aspiration fired this iteration (§4.F step 2's
// "small fraction of non-improving ones"). selectMoves admits at most this
// fraction of all candidates scored in the iteration, and at least one.
const diversifyFraction = 0.02
