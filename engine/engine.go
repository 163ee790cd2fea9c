package engine

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/hgpart/enginecfg"
	"github.com/katalvlaran/hgpart/flagstore"
	"github.com/katalvlaran/hgpart/hypergraph"
	"github.com/katalvlaran/hgpart/ils"
	"github.com/katalvlaran/hgpart/partstate"
	"github.com/katalvlaran/hgpart/repair"
	"github.com/katalvlaran/hgpart/seed"
	"github.com/katalvlaran/hgpart/validate"
)

// Top-level error kinds (§7). Use errors.Is to classify a Partition failure;
// lower-level sentinels from repair are wrapped into one of these at this
// boundary, never surfaced directly.
var (
	// ErrInput indicates H is nil or otherwise structurally malformed.
	ErrInput = errors.New("engine: malformed hypergraph input")

	// ErrParameter indicates k, epsilon, or budget fall outside their domain.
	ErrParameter = errors.New("engine: parameter out of range")

	// ErrInfeasible indicates the engine could not produce a feasible
	// partition even after balance repair (an internal-bug condition: see
	// repair.ErrNoDestination).
	ErrInfeasible = errors.New("engine: could not reach a feasible partition")

	// ErrCancelled indicates the run was cooperatively cancelled via Config's
	// context; the returned assignment is still the best feasible one found.
	ErrCancelled = errors.New("engine: cancelled")
)

// Partition is the single entry point of §6:
// partition(H, k, epsilon, seed, budget) -> (assign, km1, feasible, elapsed).
//
// budget is the total refinement iteration count R; budget == 0 defers to
// the configured effort preset (enginecfg.Resolve; see DESIGN.md Open
// Question (i)), budget < 0 is a ParameterError alongside k<2, k>64,
// epsilon<0, and epsilon>1.
//
// On cancellation (via an enginecfg.WithContext option), Partition still
// returns the best feasible assignment found so far, repaired to feasibility,
// alongside a non-nil error wrapping ErrCancelled.
func Partition(h *hypergraph.Hypergraph, k int, epsilon float64, seedValue int64, budget int, opts ...enginecfg.Option) (assign []uint8, km1 int64, feasible bool, elapsed time.Duration, err error) {
	start := time.Now()

	if err := validateInput(h); err != nil {
		return nil, 0, false, time.Since(start), err
	}
	if err := validateParameters(k, epsilon, budget); err != nil {
		return nil, 0, false, time.Since(start), err
	}

	cfg := enginecfg.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	resolved := enginecfg.Resolve(cfg, h.NumVertices(), budget)

	cap := partstate.Cap(h.NumVertices(), k, epsilon)
	initial := seed.Initialize(h, k, cap)

	ps := partstate.New(k, cap, initial)
	fs := flagstore.New(h.NumEdges(), k)
	fs.BuildFromAssignment(h, initial)

	workers := runtime.GOMAXPROCS(0)
	ctrl := ils.NewController(h, ps, fs, k, workers, seedValue, resolved)
	res := ctrl.Run(resolved.Ctx)

	finalPS := partstate.New(k, cap, res.BestAssign)
	finalFS := flagstore.New(h.NumEdges(), k)
	finalFS.BuildFromAssignment(h, res.BestAssign)

	if _, repairErr := repair.Run(h, finalPS, finalFS); repairErr != nil {
		report := validate.Check(h, finalPS.Assignment(), k, cap)
		return finalPS.Assignment(), report.KM1, false, time.Since(start), fmt.Errorf("engine: %w: %v", ErrInfeasible, repairErr)
	}

	finalAssign := finalPS.Assignment()
	report := validate.Check(h, finalAssign, k, cap)

	if res.Cancelled {
		return finalAssign, report.KM1, report.Feasible, time.Since(start), ErrCancelled
	}
	if !report.Feasible {
		return finalAssign, report.KM1, false, time.Since(start), ErrInfeasible
	}
	return finalAssign, report.KM1, true, time.Since(start), nil
}

func validateInput(h *hypergraph.Hypergraph) error {
	if h == nil {
		return fmt.Errorf("engine: nil hypergraph: %w", ErrInput)
	}
	if h.NumVertices() <= 0 {
		return fmt.Errorf("engine: empty hypergraph: %w", ErrInput)
	}
	return nil
}

func validateParameters(k int, epsilon float64, budget int) error {
	if k < 2 || k > 64 {
		return fmt.Errorf("engine: k=%d: %w", k, ErrParameter)
	}
	if epsilon < 0 || epsilon > 1 {
		return fmt.Errorf("engine: epsilon=%v: %w", epsilon, ErrParameter)
	}
	if budget < 0 {
		return fmt.Errorf("engine: budget=%d: %w", budget, ErrParameter)
	}
	return nil
}
