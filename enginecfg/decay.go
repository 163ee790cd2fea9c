package enginecfg

// LinearDecay returns the value of a parameter at iteration iter of budget
// total, decaying linearly from start at iter=0 to floor at iter=total-1
// (and staying at floor thereafter). Monotone non-increasing, as required
// of M/alpha/T/rho schedules; linear decay is a simple choice satisfying
// that requirement, not the only curve that would.
func LinearDecay(start, floor float64, iter, total int) float64 {
	if total <= 1 || iter >= total {
		return floor
	}
	frac := float64(iter) / float64(total-1)
	v := start - frac*(start-floor)
	if v < floor {
		return floor
	}
	return v
}

// LinearDecayInt32 is LinearDecay rounded to the nearest int32, used for the
// integer-valued schedules (move cap M, tabu tenure T).
func LinearDecayInt32(start, floor int32, iter, total int) int32 {
	v := LinearDecay(float64(start), float64(floor), iter, total)
	return int32(v + 0.5)
}
