// Package search - breadth-first strategy.
//
// BreadthFirstSearch explores the state space level by level through a FIFO
// frontier, so the first time the goal is popped the path to it has the
// fewest possible moves (every edge costs 1).
//
// Explored-set timing: a state is marked explored when *enqueued*, never
// when expanded, so no state enters the frontier twice.
//
// Complexity (b = branching factor ≤ 4, d = solution depth):
//
//   - Time:   O(b^d)
//   - Memory: O(b^d) — the frontier holds an entire level at once
package search

import (
	"github.com/katalvlaran/npuzzle/board"
)

// BreadthFirstSearch runs breadth-first search from initial toward goal on
// an n×n board. The returned Result carries the optimal path (nil if the
// reachable space was exhausted) and the expansion count.
//
// Returns ErrStateInvalid for malformed inputs, ErrOptionViolation for bad
// options, or the context error on cancellation.
func BreadthFirstSearch(initial, goal board.State, n int, opts ...Option) (*Result, error) {
	o, err := buildOptions(initial, goal, n, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	frontier := []*node{{state: initial, move: board.MoveNone}}
	explored := map[string]struct{}{initial.Key(): {}}

	for len(frontier) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		nd := frontier[0]
		frontier = frontier[1:]
		res.Expanded++

		if nd.state.Equal(goal) {
			res.Path = nd.path()
			return res, nil
		}

		for _, m := range board.LegalMoves(nd.state, n) {
			// Apply cannot fail: m was just generated as legal.
			next, _ := board.Apply(nd.state, m, n)
			key := next.Key()
			if _, seen := explored[key]; seen {
				continue
			}
			explored[key] = struct{}{}
			frontier = append(frontier, &node{
				state:  next,
				parent: nd,
				move:   m,
				g:      nd.g + 1,
			})
		}
	}

	// Frontier exhausted without reaching goal: Path stays nil.
	return res, nil
}
