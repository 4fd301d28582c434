// Package resolver runs greedy local repair over a coloring.Coloring until
// no two neighbours share a colour or an iteration cap is reached.
//
// Each iteration t:
//
//  1. Scan every node against the state at the start of t. If no node is
//     in conflict, stop with Converged = true.
//  2. If t has reached MaxIterations, stop with Converged = false.
//  3. Every conflicting node draws a colour uniformly from
//     {1..K} \ colours(neighbours). If that set is empty the node keeps its
//     colour for this round. Deferral is never an error.
//  4. t++.
//
// Iteration count convention:
//
//	An already proper colouring returns Iterations = 0. Hitting the cap
//	returns exactly Iterations = MaxIterations (default 1000). Callers check
//	Result.Converged; running out of iterations is an outcome, not an error.
//
// Schedules:
//
//	Snapshot (default): step 3 reads only the start-of-iteration colours;
//	  all reassignments land after the scan. Within-pass coupling is
//	  impossible, and the scan may run on several goroutines (WithWorkers)
//	  without changing the result.
//	InPlace: nodes are visited in index order and recoloured immediately,
//	  so nodes visited later in the same pass see the new colours of
//	  already-visited neighbours. Always single-threaded.
//
// Randomness:
//
//	Draws come from one *rand.Rand (WithSeed/WithRand, else DefaultSeed) in
//	ascending node order, so a fixed seed reproduces colours and counts.
//
// Complexity: O(V·d + V·K) per iteration.
package resolver
