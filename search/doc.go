// Package search provides five interchangeable strategies for solving the
// sliding-tile puzzle over the npuzzle/board state model: breadth-first,
// depth-first, iterative deepening, A*, and greedy best-first.
//
// What
//
//   - A shared contract: every strategy takes (initial, goal, n, opts...)
//     and returns a *Result holding the solution path (nil when none was
//     found) and the number of node expansions.
//   - A unified dispatcher: Solve(algo, initial, n, opts...) derives the
//     goal state, routes by Algorithm, and stamps Result.Elapsed.
//   - Functional options: WithContext, WithHeuristic, WithDepthBound,
//     WithDepthCeiling.
//
// Why
//
//   - The strategies differ only in frontier discipline (FIFO, LIFO,
//     priority) and explored-set timing; sharing the node model and option
//     surface makes them directly comparable on path cost and expansions.
//
// Guarantees
//
//   - BreadthFirst, IterativeDeepening: shortest path in move count.
//   - AStar: minimum-cost path for any admissible heuristic (both
//     heuristics in npuzzle/heuristic are admissible).
//   - DepthFirst, Greedy: none — they trade path quality for speed or
//     memory.
//
// Outcomes
//
//	“No solution found” is a normal outcome, not an error: Result.Path is
//	nil and Result.Expanded still reports the work done. Errors are
//	reserved for malformed inputs, invalid options, and cancellation.
//
// Concurrency
//
//	Each invocation owns its frontier and explored-set; there is no shared
//	mutable state, so concurrent calls need no locking. Long searches can
//	be abandoned via WithContext — interactive callers should run a
//	strategy off their event loop and cancel on teardown.
//
// Complexity (b ≤ 4 branching, d = solution depth)
//
//   - BreadthFirst, AStar, Greedy: O(b^d) time and memory worst case.
//   - DepthFirst: O(b^bound) time, O(bound) frontier memory.
//   - IterativeDeepening: O(b^d) time with re-exploration, O(d) memory.
//
// Usage
//
//	start, _ := board.Shuffle(3, board.WithSeed(7))
//	res, err := search.Solve(search.AStar, start, 3,
//	    search.WithHeuristic(heuristic.Manhattan),
//	)
//	if err != nil {
//	    // ErrStateInvalid, ErrOptionViolation, ErrUnknownAlgorithm,
//	    // or a context error
//	}
//	if res.Solved() {
//	    fmt.Println(res.Cost(), "moves,", res.Expanded, "expansions")
//	}
package search
