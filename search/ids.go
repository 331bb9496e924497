// Package search - iterative-deepening strategy.
//
// IterativeDeepeningSearch repeats a depth-limited recursive search with
// limits 0, 1, 2, ... until a solution, exhaustion, or the ceiling. The
// first limit at which a solution appears is its exact depth, so the result
// is optimal like breadth-first search — at O(depth) memory instead of
// O(breadth), paid for by re-exploring shallow levels every iteration.
//
// There is deliberately no explored-set: the same state may be revisited at
// different depths across and within iterations.
package search

import (
	"github.com/katalvlaran/npuzzle/board"
)

// IterativeDeepeningSearch runs iterative deepening from initial toward
// goal on an n×n board. Hitting the ceiling (WithDepthCeiling; default
// DefaultDepthCeiling) without a solution is reported as Path == nil, the
// same as exhaustion. Expanded accumulates across all depth iterations.
//
// Returns ErrStateInvalid for malformed inputs, ErrOptionViolation for bad
// options, or the context error on cancellation.
func IterativeDeepeningSearch(initial, goal board.State, n int, opts ...Option) (*Result, error) {
	o, err := buildOptions(initial, goal, n, opts)
	if err != nil {
		return nil, err
	}

	ceiling := o.DepthCeiling
	if ceiling == 0 {
		ceiling = DefaultDepthCeiling
	}

	res := &Result{}
	d := &deepener{goal: goal, n: n, opts: &o}
	for limit := 0; limit < ceiling; limit++ {
		root := &node{state: initial, move: board.MoveNone}
		path, cut, err := d.depthLimited(root, limit)
		if err != nil {
			return nil, err
		}
		res.Expanded += d.expanded
		d.expanded = 0
		if !cut {
			// Either solved (path non-nil) or the whole reachable space was
			// exhausted below the limit; deeper iterations cannot do better.
			res.Path = path
			return res, nil
		}
	}

	// Ceiling reached with every iteration cut off: no path.
	return res, nil
}

// deepener holds the per-invocation state of one iterative-deepening run.
type deepener struct {
	goal     board.State
	n        int
	opts     *Options
	expanded int
}

// depthLimited examines nd and recurses into its children with limit-1.
//
// The three-way outcome mirrors the classic formulation:
//   - (path, false, nil): solution found beneath nd.
//   - (nil, true, nil):   some branch was cut off at the limit, so a deeper
//     iteration may still succeed.
//   - (nil, false, nil):  every branch was fully exhausted; deepening is
//     pointless from nd.
func (d *deepener) depthLimited(nd *node, limit int) ([]Step, bool, error) {
	// cancellation check (once per examined node)
	select {
	case <-d.opts.Ctx.Done():
		return nil, false, d.opts.Ctx.Err()
	default:
	}

	d.expanded++
	if nd.state.Equal(d.goal) {
		return nd.path(), false, nil
	}
	if limit == 0 {
		return nil, true, nil
	}

	cutOccurred := false
	for _, m := range board.LegalMoves(nd.state, d.n) {
		// Apply cannot fail: the move was just generated as legal.
		next, _ := board.Apply(nd.state, m, d.n)
		child := &node{state: next, parent: nd, move: m, g: nd.g + 1}
		path, cut, err := d.depthLimited(child, limit-1)
		if err != nil {
			return nil, false, err
		}
		if cut {
			cutOccurred = true
		} else if path != nil {
			return path, false, nil
		}
	}

	return nil, cutOccurred, nil
}
