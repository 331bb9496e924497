// Package search - greedy best-first strategy.
//
// GreedySearch orders its frontier by h alone. Path cost g is tracked on
// every node but never consulted for ordering, so the search hurries toward
// whatever looks closest to the goal — typically far fewer expansions than
// A*, with no guarantee on path quality.
//
// Explored-set timing: a state is marked explored at expansion; stale pops
// of an already-expanded state are skipped but still counted.
package search

import (
	"container/heap"

	"github.com/katalvlaran/npuzzle/board"
)

// GreedySearch runs greedy best-first search from initial toward goal on an
// n×n board, scoring states with the configured heuristic (WithHeuristic;
// default Manhattan).
//
// Returns ErrStateInvalid for malformed inputs, ErrOptionViolation for bad
// options, or the context error on cancellation.
func GreedySearch(initial, goal board.State, n int, opts ...Option) (*Result, error) {
	o, err := buildOptions(initial, goal, n, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	h0 := o.Heuristic(initial, goal, n)
	pq := nodePQ{{state: initial, move: board.MoveNone, h: h0, prio: h0}}
	heap.Init(&pq)

	explored := make(map[string]struct{})

	for pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		nd := heap.Pop(&pq).(*node)
		res.Expanded++

		key := nd.state.Key()
		if _, seen := explored[key]; seen {
			continue
		}
		explored[key] = struct{}{}

		if nd.state.Equal(goal) {
			res.Path = nd.path()
			return res, nil
		}

		for _, m := range board.LegalMoves(nd.state, n) {
			// Apply cannot fail: m was just generated as legal.
			next, _ := board.Apply(nd.state, m, n)
			if _, seen := explored[next.Key()]; seen {
				continue
			}
			h := o.Heuristic(next, goal, n)
			heap.Push(&pq, &node{
				state:  next,
				parent: nd,
				move:   m,
				g:      nd.g + 1,
				h:      h,
				prio:   h,
			})
		}
	}

	return res, nil
}
