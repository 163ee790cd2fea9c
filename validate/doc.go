// SPDX-License-Identifier: MIT
// Package validate implements the scorer/validator (component I): an
// independent, from-scratch recomputation of KM1, block sizes, and
// feasibility given only (Hypergraph, assignment) — never the incrementally
// maintained flagstore.Store. The engine calls this once at exit as the
// final self-check named in §7 ("the engine never silently returns
// an infeasible partition ... a final validator pass confirms it"), and
// tests use it to assert the flagstore's incremental KM1 equals a
// recomputation from scratch.
package validate
