package ils

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/hgpart/enginecfg"
	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/partstate"
	"github.com/katalvlaran/hgpart/refine"
)

// Controller drives the ILS outer loop over a shared (Hypergraph, State,
// Store) triple and a refine.Engine. It is single-use: construct one per
// Partition call with NewController, then call Run once.
type Controller struct {
	h   *hypergraph.Hypergraph
	ps  *partstate.State
	fs  *flagstore.Store
	eng *refine.Engine
	k   int
	cfg enginecfg.Resolved
	rng *rand.Rand
}

// NewController wires a Controller around an already-seeded (feasible)
// State/Store pair and a fresh refine.Engine, with an RNG seeded once from
// seed so the whole run is bitwise reproducible.
func NewController(h *hypergraph.Hypergraph, ps *partstate.State, fs *flagstore.Store, k, workers int, seed int64, cfg enginecfg.Resolved) *Controller {
	return &Controller{
		h:   h,
		ps:  ps,
		fs:  fs,
		eng: refine.NewEngine(h, ps, fs, k, workers),
		k:   k,
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Result is the outcome of a Run: the best feasible assignment seen and its
// KM1, plus whether the run was cut short by context cancellation.
type Result struct {
	BestAssign []uint8
	BestKM1    int64
	Cancelled  bool
}

// Run executes the refine/perturb/refine/accept-or-restore loop (§4.G) for
// up to cfg.Budget refinement iterations total, in rounds of cfg.IlsRoundLength.
// On cancellation it returns immediately with the best feasible snapshot
// recorded so far and Result.Cancelled set; the live (h, ps, fs) state is
// left wherever the last committed iteration put it.
func (c *Controller) Run(ctx context.Context) Result {
	total := c.cfg.Budget
	r := c.cfg.IlsRoundLength

	bestKM1 := c.fs.KM1()
	bestAssign := c.ps.Assignment()
	bestFS := c.fs.Clone()

	currentKM1 := bestKM1
	iter := 0

	for iter < total {
		var plateaued bool
		currentKM1, iter, plateaued = c.runRound(ctx, iter, min(iter+r, total), currentKM1, &bestKM1, &bestAssign, bestFS)
		if err := ctx.Err(); err != nil {
			c.cfg.Logf("ils: cancelled at iter %d, km1=%d", iter, bestKM1)
			return Result{BestAssign: bestAssign, BestKM1: bestKM1, Cancelled: true}
		}
		if iter >= total {
			break
		}
		if !plateaued {
			continue // round ran to its budget without stalling; no perturbation due (§4.G step 2)
		}

		rho := c.perturb(iter, total)
		c.cfg.Logf("ils: plateau at iter %d, perturbing rho=%.4f", iter, rho)
		c.eng.ResetTabu()
		currentKM1 = c.fs.KM1()

		currentKM1, iter, _ = c.runRound(ctx, iter, min(iter+r, total), currentKM1, &bestKM1, &bestAssign, bestFS)
		if err := ctx.Err(); err != nil {
			c.cfg.Logf("ils: cancelled at iter %d, km1=%d", iter, bestKM1)
			return Result{BestAssign: bestAssign, BestKM1: bestKM1, Cancelled: true}
		}

		if currentKM1 < bestKM1 && c.ps.Feasible() {
			bestKM1 = currentKM1
			bestAssign = c.ps.Assignment()
			bestFS.CopyFrom(c.fs)
			c.cfg.Logf("ils: accepted post-perturbation state, km1=%d", bestKM1)
		} else {
			c.ps.RestoreFrom(bestAssign)
			c.fs.CopyFrom(bestFS)
			currentKM1 = bestKM1
			c.cfg.Logf("ils: rejected post-perturbation state, restored km1=%d", bestKM1)
		}
	}

	return Result{BestAssign: bestAssign, BestKM1: bestKM1}
}

// runRound drives refine.Engine.RunIteration from iter up to (not including)
// end, updating the best-so-far snapshot continuously (§4.F step 5) and
// stopping early once StallLimit consecutive no-move iterations signal a
// plateau. It returns the running KM1, the iteration index reached, and
// whether the round ended because of a plateau (as opposed to running out
// of its budget).
func (c *Controller) runRound(ctx context.Context, iter, end int, currentKM1 int64, bestKM1 *int64, bestAssign *[]uint8, bestFS *flagstore.Store) (int64, int, bool) {
	stall := 0
	for ; iter < end; iter++ {
		sched := c.schedule(iter)
		res, err := c.eng.RunIteration(ctx, iter, sched, currentKM1, *bestKM1)
		if err != nil {
			return currentKM1, iter, false
		}
		currentKM1 = res.KM1
		c.cfg.Progress(iter, currentKM1)
		c.cfg.Logf("ils: iter %d km1=%d applied=%d", iter, currentKM1, res.Applied)

		if res.Applied == 0 {
			stall++
		} else {
			stall = 0
		}
		if currentKM1 < *bestKM1 && c.ps.Feasible() {
			*bestKM1 = currentKM1
			*bestAssign = c.ps.Assignment()
			bestFS.CopyFrom(c.fs)
		}
		if stall >= c.cfg.StallLimit {
			iter++
			return currentKM1, iter, true
		}
	}
	return currentKM1, iter, false
}

// schedule computes the decayed Schedule for iteration iter of the total
// refinement budget, per §4.F's adaptive batch sizing.
func (c *Controller) schedule(iter int) refine.Schedule {
	total := c.cfg.Budget
	return refine.Schedule{
		M:     enginecfg.LinearDecayInt32(c.cfg.InitialMoveCap, 1, iter, total),
		Alpha: enginecfg.LinearDecay(c.cfg.QuotaAlpha0, c.cfg.QuotaAlphaFloor, iter, total),
		T:     enginecfg.LinearDecayInt32(c.cfg.TabuTenure, c.cfg.TabuTenureFloor, iter, total),
	}
}

// perturb reassigns a decaying fraction rho of vertices (§4.G
// "Perturbation") to a uniformly random block with positive slack, falling
// back to the least-loaded block when no block has slack. It returns rho
// for logging.
func (c *Controller) perturb(iter, total int) float64 {
	n := c.ps.NumVertices()
	rho := enginecfg.LinearDecay(c.cfg.PerturbRho0, c.cfg.PerturbRhoFloor, iter, total)
	count := int(rho * float64(n))
	if count < 1 {
		count = 1
	}
	if count > n {
		count = n
	}

	for _, v := range c.rng.Perm(n)[:count] {
		from := c.ps.Get(v)
		to := c.randomBlockWithSlack(from)
		if to == from {
			continue
		}
		_ = c.ps.Set(v, to)
		c.fs.ApplyMove(c.h, v, from, to)
	}
	return rho
}

// randomBlockWithSlack picks a uniformly random block other than from that
// currently has positive slack; if none exists, it falls back to the
// least-loaded block (which may be from itself, yielding a no-op move).
func (c *Controller) randomBlockWithSlack(from uint8) uint8 {
	candidates := make([]uint8, 0, c.k)
	for b := 0; b < c.k; b++ {
		bb := uint8(b)
		if bb != from && c.ps.Slack(bb) > 0 {
			candidates = append(candidates, bb)
		}
	}
	if len(candidates) > 0 {
		return candidates[c.rng.Intn(len(candidates))]
	}

	least := uint8(0)
	for b := 1; b < c.k; b++ {
		bb := uint8(b)
		if c.ps.Size(bb) < c.ps.Size(least) {
			least = bb
		}
	}
	return least
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
