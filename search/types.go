// Package search defines shared types, options, and sentinel errors for
// the five sliding-tile search strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// Sentinel errors shared by all strategies.
var (
	// ErrStateInvalid is returned when an initial or goal state fails
	// board.Validate for the given dimension.
	ErrStateInvalid = errors.New("search: invalid state for dimension")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Solve for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// DefaultDepthCeiling bounds the iterative-deepening limit sequence.
// Iteration stops after limits 0..DefaultDepthCeiling-1, mirroring the
// exhaustion behavior of the uninformed strategies: reaching the ceiling is
// reported as "no path", not as an error.
const DefaultDepthCeiling = 100

// Algorithm selects one of the five search strategies by stable identifier.
type Algorithm int

const (
	// BreadthFirst explores level by level (FIFO frontier); optimal under
	// unit-cost moves.
	BreadthFirst Algorithm = iota
	// DepthFirst dives along one branch (LIFO frontier) under a depth bound;
	// no optimality guarantee.
	DepthFirst
	// IterativeDeepening repeats depth-limited search with growing limits;
	// optimal like BreadthFirst at O(depth) memory.
	IterativeDeepening
	// AStar orders the frontier by g+h; optimal with an admissible heuristic.
	AStar
	// Greedy orders the frontier by h alone; fast, no optimality guarantee.
	Greedy
)

// algorithmNames indexes Algorithm values for String; declaration order.
var algorithmNames = [...]string{"bfs", "dfs", "ids", "astar", "greedy"}

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}
	return algorithmNames[a]
}

// ParseAlgorithm resolves a case-insensitive algorithm name
// ("bfs", "dfs", "ids", "astar", "greedy") into its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return BreadthFirst, nil
	case "dfs":
		return DepthFirst, nil
	case "ids":
		return IterativeDeepening, nil
	case "astar", "a*":
		return AStar, nil
	case "greedy":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Step is one element of a solution path: the state reached and the move
// that produced it from its predecessor (board.MoveNone at the root).
type Step struct {
	State board.State
	Move  board.Move
}

// Result carries the outcome of a single strategy invocation.
//
// Path is nil when the frontier emptied (or the iterative-deepening ceiling
// was hit) without reaching the goal — a normal outcome, not an error.
// Expanded counts every node popped from the frontier and examined,
// including the terminal node and stale revisits, accumulated across all
// iterative-deepening iterations.
type Result struct {
	Path     []Step
	Expanded int

	// Elapsed is stamped by Solve around the strategy call; strategies
	// invoked directly leave it zero.
	Elapsed time.Duration
}

// Solved reports whether a path to the goal was found.
func (r *Result) Solved() bool { return len(r.Path) > 0 }

// Cost returns the number of moves in the path, or -1 when unsolved.
func (r *Result) Cost() int {
	if !r.Solved() {
		return -1
	}
	return len(r.Path) - 1
}

// Moves returns the move sequence without the root's MoveNone.
func (r *Result) Moves() []board.Move {
	if !r.Solved() {
		return nil
	}
	moves := make([]board.Move, 0, len(r.Path)-1)
	for _, step := range r.Path[1:] {
		moves = append(moves, step.Move)
	}
	return moves
}

// Option configures strategy behavior via functional arguments.
// If an Option is invalid (e.g. negative depth bound), it is recorded
// internally and surfaced as ErrOptionViolation when the strategy runs.
type Option func(*Options)

// Options holds parameters shared by all strategies. Strategies read only
// the fields they document; the rest are ignored.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frontier pop.
	Ctx context.Context

	// Heuristic scores states for AStarSearch and GreedySearch.
	// Ignored by the uninformed strategies.
	Heuristic heuristic.Func

	// DepthBound caps node depth for DepthFirstSearch. A value of 0 selects
	// the default 2·n²; callers preferring the looser 2·n³ variant pass it
	// explicitly.
	DepthBound int

	// DepthCeiling bounds the IterativeDeepening limit sequence.
	// A value of 0 selects DefaultDepthCeiling.
	DepthCeiling int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - heuristic.Manhattan
//   - DepthBound 0 (resolved to 2·n² by DepthFirstSearch)
//   - DepthCeiling 0 (resolved to DefaultDepthCeiling)
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Heuristic:    heuristic.Manhattan,
		DepthBound:   0,
		DepthCeiling: 0,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the scoring function for the informed strategies.
// Passing nil has no effect (Manhattan is retained).
func WithHeuristic(fn heuristic.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithDepthBound caps depth-first exploration at depth d.
//
//	d > 0:  nodes deeper than d are not expanded
//	d == 0: explicit "use the default 2·n²"
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthBound(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthBound cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthBound = d
	}
}

// WithDepthCeiling caps the iterative-deepening limit sequence at c.
//
//	c > 0:  limits 0..c-1 are tried
//	c == 0: explicit "use DefaultDepthCeiling"
//	c < 0:  invalid option → ErrOptionViolation
func WithDepthCeiling(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: DepthCeiling cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.DepthCeiling = c
	}
}

// buildOptions applies opts over the defaults and validates inputs shared
// by every strategy: recorded option errors first, then both states against
// the dimension.
func buildOptions(initial, goal board.State, n int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if err := board.Validate(initial, n); err != nil {
		return o, fmt.Errorf("%w: initial: %v", ErrStateInvalid, err)
	}
	if err := board.Validate(goal, n); err != nil {
		return o, fmt.Errorf("%w: goal: %v", ErrStateInvalid, err)
	}
	return o, nil
}
