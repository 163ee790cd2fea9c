// Package enginecfg centralizes the partitioner's configuration knobs: the
// effort/refinement-budget presets, the tie-break comparators used for
// determinism throughout the engine, and the monotone decay schedules for
// the batch-sizing parameters (M, alpha, T, rho) described in §4.F/§4.G of
// the design.
//
// The functional-options pattern here mirrors builder.BuilderOption /
// core.GraphOption: Option constructors validate and panic on programmer
// error (a nil hook, a negative dimension); values that come from an end
// user (k, epsilon, budget, seed) are validated by engine.Partition instead,
// surfaced as ordinary errors, never a panic.
package enginecfg
