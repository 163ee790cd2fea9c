// Package refine implements the refinement engine (component F): the four
// phase refinement iteration — parallel score, capacity-aware select,
// serial commit, and tabu bookkeeping — that drives KM1 downward under the
// balance constraint.
//
// The score phase (Engine.score) is the sole concurrent part of the engine:
// it fans a read-only pass over vertices out across a worker pool (the same
// sync.WaitGroup fan-out core_test.TestConcurrentAddEdge uses to hammer a
// Graph from many goroutines, here applied to read-only gain evaluation
// instead of mutation) and merges results in a fixed, worker-index order so
// the merged candidate list is identical regardless of goroutine
// scheduling. Select and commit run serially on the calling goroutine, per
// §5: within one iteration, score precedes select precedes commit precedes
// the tabu update, and no writer ever runs concurrently with the score
// phase's readers.
package refine
