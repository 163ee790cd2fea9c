package enginecfg

import "context"

// effortPresets maps effort 0..5 to a total refinement budget R, per §6.
var effortPresets = [6]int{300, 400, 500, 600, 800, 1000}

// Defaults tuned for k=64, epsilon=0.03 (the target regime of §1).
const (
	DefaultEffort          = 2
	DefaultTabuTenure      = 12
	DefaultQuotaAlpha0     = 0.5
	DefaultQuotaAlphaFloor = 0.05
	DefaultPerturbRho0     = 0.10
	DefaultPerturbRhoFloor = 0.02
	DefaultIlsRoundLength  = 50
	DefaultStallLimit      = 8
	DefaultTabuTenureFloor = 2
)

// Config holds the internal knobs of §6 beyond the four explicit Partition
// parameters (k, epsilon, seed, budget): the effort preset, and the
// tabu/quota/perturbation schedule starting points and floors.
type Config struct {
	Effort          int   // 0..5, used only when Partition's budget argument is 0
	TabuTenure      int32 // T
	TabuTenureFloor int32
	InitialMoveCap  int32 // M0; 0 means "derive from n at Resolve time"
	QuotaAlpha0     float64
	QuotaAlphaFloor float64
	PerturbRho0     float64
	PerturbRhoFloor float64
	IlsRoundLength  int
	StallLimit      int

	Ctx context.Context

	// Logf receives progress diagnostics; defaults to a no-op, mirroring
	// flow.FlowOptions.Verbose + fmt.Printf.
	Logf func(format string, args ...interface{})

	// Progress is invoked once per refinement iteration with the running
	// iteration count and KM1; purely observational, never consulted by
	// control flow, so it cannot affect determinism.
	Progress func(iter int, km1 int64)
}

// Option configures a Config. Option constructors validate and panic on
// meaningless input (nil hooks, out-of-domain constants); they never
// validate user-controlled values like k or seed, which flow to
// engine.Partition's ordinary error return instead.
type Option func(*Config)

// Default returns a Config with the documented defaults for k=64, eps=0.03.
func Default() Config {
	return Config{
		Effort:          DefaultEffort,
		TabuTenure:      DefaultTabuTenure,
		TabuTenureFloor: DefaultTabuTenureFloor,
		QuotaAlpha0:     DefaultQuotaAlpha0,
		QuotaAlphaFloor: DefaultQuotaAlphaFloor,
		PerturbRho0:     DefaultPerturbRho0,
		PerturbRhoFloor: DefaultPerturbRhoFloor,
		IlsRoundLength:  DefaultIlsRoundLength,
		StallLimit:      DefaultStallLimit,
		Ctx:             context.Background(),
		Logf:            func(string, ...interface{}) {},
		Progress:        func(int, int64) {},
	}
}

// WithEffort sets the effort preset (0..5); panics outside that range.
func WithEffort(e int) Option {
	if e < 0 || e >= len(effortPresets) {
		panic("enginecfg: WithEffort out of range [0,5]")
	}
	return func(c *Config) { c.Effort = e }
}

// WithTabuTenure sets the initial tabu tenure T; panics if tenure < floor.
func WithTabuTenure(t, floor int32) Option {
	if t < floor {
		panic("enginecfg: WithTabuTenure(t < floor)")
	}
	return func(c *Config) { c.TabuTenure, c.TabuTenureFloor = t, floor }
}

// WithInitialMoveCap sets M0 explicitly; panics if m0 < 0.
func WithInitialMoveCap(m0 int32) Option {
	if m0 < 0 {
		panic("enginecfg: WithInitialMoveCap(m0 < 0)")
	}
	return func(c *Config) { c.InitialMoveCap = m0 }
}

// WithQuotaAlpha sets the starting quota fraction alpha0 and its floor;
// panics if either falls outside (0,1].
func WithQuotaAlpha(alpha0, floor float64) Option {
	if alpha0 <= 0 || alpha0 > 1 || floor <= 0 || floor > alpha0 {
		panic("enginecfg: WithQuotaAlpha out of (0,1] or floor > alpha0")
	}
	return func(c *Config) { c.QuotaAlpha0, c.QuotaAlphaFloor = alpha0, floor }
}

// WithPerturbRho sets the starting perturbation fraction rho0 and its
// floor; panics if either falls outside (0,1].
func WithPerturbRho(rho0, floor float64) Option {
	if rho0 <= 0 || rho0 > 1 || floor <= 0 || floor > rho0 {
		panic("enginecfg: WithPerturbRho out of (0,1] or floor > rho0")
	}
	return func(c *Config) { c.PerturbRho0, c.PerturbRhoFloor = rho0, floor }
}

// WithIlsRoundLength sets r, the refinement iterations per ILS round;
// panics if r <= 0.
func WithIlsRoundLength(r int) Option {
	if r <= 0 {
		panic("enginecfg: WithIlsRoundLength(r <= 0)")
	}
	return func(c *Config) { c.IlsRoundLength = r }
}

// WithStallLimit sets the consecutive-no-move plateau threshold; panics if
// limit <= 0.
func WithStallLimit(limit int) Option {
	if limit <= 0 {
		panic("enginecfg: WithStallLimit(limit <= 0)")
	}
	return func(c *Config) { c.StallLimit = limit }
}

// WithContext attaches a cancellation context; panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("enginecfg: WithContext(nil)")
	}
	return func(c *Config) { c.Ctx = ctx }
}

// WithLogf attaches a diagnostics sink; panics on nil.
func WithLogf(f func(string, ...interface{})) Option {
	if f == nil {
		panic("enginecfg: WithLogf(nil)")
	}
	return func(c *Config) { c.Logf = f }
}

// WithProgress attaches a per-iteration observer; panics on nil.
func WithProgress(f func(iter int, km1 int64)) Option {
	if f == nil {
		panic("enginecfg: WithProgress(nil)")
	}
	return func(c *Config) { c.Progress = f }
}

// EffortBudget returns the preset total refinement budget R for effort.
func EffortBudget(effort int) int {
	return effortPresets[effort]
}

// Resolved is the fully concrete configuration for one Partition run: every
// Option and precedence rule has already been applied.
type Resolved struct {
	Config
	Budget         int   // R, final refinement budget (explicit override wins over effort)
	InitialMoveCap int32 // M0, defaulted from n if not set explicitly
}

// Resolve applies the refinement/effort precedence (an explicit, non-zero
// budget always wins; effort only supplies the preset otherwise — see
// DESIGN.md Open Question (i)) and defaults InitialMoveCap from n when the
// caller left it at zero.
func Resolve(cfg Config, n int, explicitBudget int) Resolved {
	r := Resolved{Config: cfg}
	if explicitBudget > 0 {
		r.Budget = explicitBudget
	} else {
		r.Budget = EffortBudget(cfg.Effort)
	}
	if cfg.InitialMoveCap > 0 {
		r.InitialMoveCap = cfg.InitialMoveCap
	} else {
		// Default M0: an eighth of n, at least 1, per "a fraction of n" (§4.F).
		m0 := int32(n / 8)
		if m0 < 1 {
			m0 = 1
		}
		r.InitialMoveCap = m0
	}
	return r
}
