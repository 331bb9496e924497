// Package search - depth-first strategy.
//
// DepthFirstSearch dives along a single branch through a LIFO frontier,
// backtracking only when a branch dead-ends or crosses the depth bound.
// It may return a far-from-shortest path, or none within the bound even if
// one exists beyond it.
//
// Explored-set timing: a state is marked explored at *expansion*; a popped
// node whose state was already expanded is skipped, though the pop itself
// still counts toward Expanded.
//
// Tie-breaking: children are pushed in reverse legal-move order so that,
// combined with LIFO pops, they are explored UP, DOWN, LEFT, RIGHT.
package search

import (
	"github.com/katalvlaran/npuzzle/board"
)

// DepthFirstSearch runs bounded depth-first search from initial toward goal
// on an n×n board. Nodes deeper than the bound (WithDepthBound; default
// 2·n²) are popped and counted but their children are never generated.
//
// Returns ErrStateInvalid for malformed inputs, ErrOptionViolation for bad
// options, or the context error on cancellation.
func DepthFirstSearch(initial, goal board.State, n int, opts ...Option) (*Result, error) {
	o, err := buildOptions(initial, goal, n, opts)
	if err != nil {
		return nil, err
	}

	bound := o.DepthBound
	if bound == 0 {
		bound = 2 * n * n
	}

	res := &Result{}
	frontier := []*node{{state: initial, move: board.MoveNone}}
	explored := make(map[string]struct{})

	for len(frontier) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		nd := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
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
		if nd.g > bound {
			continue
		}

		moves := board.LegalMoves(nd.state, n)
		for i := len(moves) - 1; i >= 0; i-- {
			// Apply cannot fail: the move was just generated as legal.
			next, _ := board.Apply(nd.state, moves[i], n)
			frontier = append(frontier, &node{
				state:  next,
				parent: nd,
				move:   moves[i],
				g:      nd.g + 1,
			})
		}
	}

	return res, nil
}
