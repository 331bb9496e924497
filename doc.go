// Package npuzzle is your in-memory playground for generating, scrambling,
// and solving sliding-tile (N²-1) puzzles with classic search algorithms.
//
// 🚀 What is npuzzle?
//
//	A small, focused library that brings together:
//		• Board model: immutable states, legal-move generation, safe application
//		• Scrambling: random-walk shuffles that are solvable by construction
//		• Heuristics: Manhattan distance & misplaced tiles (both admissible)
//		• Uninformed search: BFS, bounded DFS, iterative deepening
//		• Informed search: A* and greedy best-first over a shared node model
//		• Dispatcher: one Solve entry point with per-run diagnostics
//
// ✨ Why choose npuzzle?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Comparable by design – every strategy reports path cost & expansions
//   - Pure Go – no cgo, deterministic seeded randomness
//   - Extensible – plug in your own heuristic.Func via options
//
// Under the hood, everything is organized under three subpackages:
//
//	board/     — State, Move, Goal, LegalMoves, Apply, Shuffle
//	heuristic/ — distance estimates consumed by the informed strategies
//	search/    — the five strategies, shared options, and the Solve dispatcher
//
// Quick ASCII example (3×3, blank shown as “.”):
//
//	 1  2  3
//	 4  5  6
//	 7  .  8
//
// One RIGHT move slides the 8 into the blank and solves the board:
//
//	res, _ := search.Solve(search.AStar, start, 3)
//	fmt.Println(res.Moves()) // [RIGHT]
//
// See each subpackage's doc.go for contracts, complexity, and error sets.
package npuzzle
