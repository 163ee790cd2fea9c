package refine

import (
	"context"
	"sort"
	"sync"

	"github.com/katalvlaran/hgpart/enginecfg"
	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/gain"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/partstate"
)

// Engine drives one batch of refinement iterations over a shared
// (Hypergraph, State, Store) triple. It owns the tabu clock; everything
// else it touches is owned by the caller (package ils), which is
// responsible for best-so-far snapshots and the outer ILS loop.
type Engine struct {
	H       *hypergraph.Hypergraph
	PS      *partstate.State
	FS      *flagstore.Store
	K       int
	Workers int // score-phase goroutine fan-out; <=1 runs serially

	tabuUntil []int32
}

// NewEngine creates a refinement Engine with a fresh (untabu) clock.
func NewEngine(h *hypergraph.Hypergraph, ps *partstate.State, fs *flagstore.Store, k, workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		H:         h,
		PS:        ps,
		FS:        fs,
		K:         k,
		Workers:   workers,
		tabuUntil: make([]int32, h.NumVertices()),
	}
}

// Result summarizes one RunIteration call.
type Result struct {
	KM1     int64
	Applied int
}

// RunIteration executes one score/select/commit/bookkeeping cycle (§4.F) at
// iteration index iter against the given Schedule, and returns the updated
// KM1 total. currentKM1 and bestKM1 feed the aspiration check in the score
// phase. ctx is polled once before scoring begins; on cancellation
// RunIteration returns immediately with ctx.Err() and no state mutated.
//
// Complexity: score is O(n*k) work spread over Workers goroutines; select
// is O(C log C) for C emitted candidates; commit is O(A*deg) for A accepted
// moves.
func (e *Engine) RunIteration(ctx context.Context, iter int, sched Schedule, currentKM1, bestKM1 int64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{KM1: currentKM1}, err
	}

	candidates := e.score(iter, currentKM1, bestKM1)
	accepted := e.selectMoves(candidates, sched)
	sumDelta, applied := e.commit(accepted, iter, sched.T)

	return Result{KM1: currentKM1 + sumDelta, Applied: applied}, nil
}

// score is the parallel, read-only phase: for every vertex not currently
// tabu (or admissible via aspiration), compute the delta of moving it to
// every other block and emit a Candidate.
func (e *Engine) score(iter int, currentKM1, bestKM1 int64) []Candidate {
	n := e.PS.NumVertices()
	workers := e.Workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	shards := make([][]Candidate, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		go func(w, lo, hi int) {
			defer wg.Done()
			var local []Candidate
			for v := lo; v < hi; v++ {
				a := e.PS.Get(v)
				tabuOK := e.tabuUntil[v] <= int32(iter)
				for b := 0; b < e.K; b++ {
					bb := uint8(b)
					if bb == a {
						continue
					}
					delta := gain.Delta(e.H, e.FS, v, a, bb)
					aspire := currentKM1+delta < bestKM1
					if tabuOK || aspire {
						local = append(local, Candidate{
							V: int32(v), From: a, To: bb, Delta: delta,
							ViaAspiration: !tabuOK && aspire,
						})
					}
				}
			}
			shards[w] = local
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for _, s := range shards {
		total += len(s)
	}
	merged := make([]Candidate, 0, total)
	for _, s := range shards {
		merged = append(merged, s...)
	}
	return merged
}

// selectMoves is §4.F step 2: build the improving (+ aspiration-gated
// diversification) pool, sort it deterministically, and walk it applying
// the capacity-aware quota rule.
func (e *Engine) selectMoves(candidates []Candidate, sched Schedule) []Candidate {
	aspirationFired := false
	var improving, nonImproving []Candidate
	for _, c := range candidates {
		if c.ViaAspiration {
			aspirationFired = true
		}
		if c.Delta < 0 {
			improving = append(improving, c)
		} else {
			nonImproving = append(nonImproving, c)
		}
	}

	pool := improving
	if aspirationFired && len(nonImproving) > 0 {
		sort.SliceStable(nonImproving, func(i, j int) bool {
			if nonImproving[i].Delta != nonImproving[j].Delta {
				return nonImproving[i].Delta < nonImproving[j].Delta
			}
			return enginecfg.LessVertexThenBlock(nonImproving[i].V, nonImproving[j].V, nonImproving[i].To, nonImproving[j].To)
		})
		limit := int(float64(len(candidates)) * diversifyFraction)
		if limit < 1 {
			limit = 1
		}
		if limit > len(nonImproving) {
			limit = len(nonImproving)
		}
		pool = append(append([]Candidate(nil), pool...), nonImproving[:limit]...)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Delta != pool[j].Delta {
			return pool[i].Delta < pool[j].Delta
		}
		return enginecfg.LessVertexThenBlock(pool[i].V, pool[j].V, pool[i].To, pool[j].To)
	})

	quota := make([]int32, e.K)
	for b := 0; b < e.K; b++ {
		quota[b] = int32(sched.Alpha * float64(e.PS.Slack(uint8(b))))
	}
	used := make(map[int32]bool, len(pool))
	remaining := sched.M

	accepted := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if remaining <= 0 {
			break
		}
		if used[c.V] {
			continue
		}
		if quota[c.To] <= 0 {
			continue
		}
		quota[c.To]--
		remaining--
		used[c.V] = true
		accepted = append(accepted, c)
	}
	return accepted
}

// commit is §4.F step 3: apply each accepted move in select order after
// recomputing its delta against the now-current state; a move whose
// recomputed delta regressed past the original (tolerance 0) is skipped.
func (e *Engine) commit(accepted []Candidate, iter int, tenure int32) (sumDelta int64, applied int) {
	for _, c := range accepted {
		v := int(c.V)
		deltaPrime := gain.Delta(e.H, e.FS, v, c.From, c.To)
		if deltaPrime > c.Delta {
			continue // state moved against this candidate since scoring; skip
		}
		_ = e.PS.Set(v, c.To)
		e.FS.ApplyMove(e.H, v, c.From, c.To)
		e.tabuUntil[v] = int32(iter) + tenure
		sumDelta += deltaPrime
		applied++
	}
	return sumDelta, applied
}

// TabuUntil exposes the tabu clock for a vertex (read-only).
func (e *Engine) TabuUntil(v int) int32 { return e.tabuUntil[v] }

// ResetTabu clears the tabu clock, used after a perturbation so freshly
// reassigned vertices are immediately eligible for refinement.
func (e *Engine) ResetTabu() {
	for i := range e.tabuUntil {
		e.tabuUntil[i] = 0
	}
}
