// Package search - A* strategy.
//
// AStarSearch orders its frontier by f = g + h. With an admissible
// heuristic (both provided ones are) the first pop of the goal carries a
// minimum-cost path.
//
// The explored map records the best known g per state. A neighbor is
// (re-)pushed whenever it is unseen or reached with a strictly better g;
// superseded frontier entries are not eagerly discarded, so a state can be
// expanded more than once when it was pushed along several routes. This
// "lazy decrease-key" discipline trades a few wasted pops for a simpler
// frontier, and does not affect optimality.
package search

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/board"
)

// AStarSearch runs A* from initial toward goal on an n×n board, scoring
// states with the configured heuristic (WithHeuristic; default Manhattan).
//
// Returns ErrStateInvalid for malformed inputs, ErrOptionViolation for bad
// options, or the context error on cancellation.
func AStarSearch(initial, goal board.State, n int, opts ...Option) (*Result, error) {
	o, err := buildOptions(initial, goal, n, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	h0 := o.Heuristic(initial, goal, n)
	pq := nodePQ{{state: initial, move: board.MoveNone, h: h0, prio: h0}}
	heap.Init(&pq)

	// explored maps state key → best known g.
	explored := map[string]int{initial.Key(): 0}

	for pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		nd := heap.Pop(&pq).(*node)
		res.Expanded++

		if nd.state.Equal(goal) {
			res.Path = nd.path()
			return res, nil
		}

		for _, m := range board.LegalMoves(nd.state, n) {
			// Apply cannot fail: m was just generated as legal.
			next, _ := board.Apply(nd.state, m, n)
			g := nd.g + 1
			key := next.Key()
			if best, seen := explored[key]; seen && g >= best {
				continue
			}
			explored[key] = g
			h := o.Heuristic(next, goal, n)
			heap.Push(&pq, &node{
				state:  next,
				parent: nd,
				move:   m,
				g:      g,
				h:      h,
				prio:   g + h,
			})
		}
	}

	return res, nil
}
