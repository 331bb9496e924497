// Package search - unified dispatcher for the five strategies.
//
// Solve is the canonical entry point for callers that select a strategy at
// runtime (front-ends, benchmark harnesses): it derives the goal state for
// the dimension, routes by Algorithm, and stamps wall-clock elapsed time
// around the strategy call.
//
// Design principles:
//   - Deterministic: strategies are pure functions of their inputs; no
//     shared state survives between invocations, so concurrent Solve calls
//     are safe without locking.
//   - Strict sentinels: only errors from types.go and the board package.
package search

import (
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// Solve runs the strategy selected by algo from initial toward the solved
// configuration of an n×n board.
//
// The informed strategies (AStar, Greedy) honor WithHeuristic; DepthFirst
// honors WithDepthBound; IterativeDeepening honors WithDepthCeiling; every
// strategy honors WithContext. Result.Elapsed covers the strategy call
// only, not option parsing or goal construction.
//
// Errors: ErrUnknownAlgorithm for an unrecognized algo, plus everything the
// underlying strategy can return.
func Solve(algo Algorithm, initial board.State, n int, opts ...Option) (*Result, error) {
	goal, err := board.Goal(n)
	if err != nil {
		return nil, err
	}

	var (
		res   *Result
		start = time.Now()
	)
	switch algo {
	case BreadthFirst:
		res, err = BreadthFirstSearch(initial, goal, n, opts...)
	case DepthFirst:
		res, err = DepthFirstSearch(initial, goal, n, opts...)
	case IterativeDeepening:
		res, err = IterativeDeepeningSearch(initial, goal, n, opts...)
	case AStar:
		res, err = AStarSearch(initial, goal, n, opts...)
	case Greedy:
		res, err = GreedySearch(initial, goal, n, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
	if err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
