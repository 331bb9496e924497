// Package board provides the sliding-tile (N²-1 puzzle) state and move model:
// immutable board configurations, legal-move generation, move application,
// and solvable scrambling.
//
// What
//
//   - State: a fixed-length permutation of 0..n²-1, read row-major, with
//     Blank (0) marking the empty cell.
//   - Goal(n): the canonical solved configuration [1, 2, ..., n²-1, 0].
//   - LegalMoves(s, n): the applicable moves, always in UP, DOWN, LEFT,
//     RIGHT order (search tie-breaking depends on this order).
//   - Apply(s, m, n): a fresh State with the blank and the adjacent tile in
//     the move's direction swapped; s is never mutated.
//   - Shuffle(n, opts...): a random solvable configuration produced by
//     walking random legal moves away from the goal.
//
// Why
//
//   - Every search strategy in npuzzle/search consumes exactly this model;
//     keeping it pure and allocation-predictable keeps the strategies simple.
//   - Producing scrambles by legal moves (rather than by permuting tiles)
//     guarantees solvability without a parity check.
//
// Determinism
//
//	Shuffle uses seeded math/rand streams: the same seed always yields the
//	same scramble on every platform. Seed 0 selects a fixed default stream.
//
// Usage
//
//	goal, err := board.Goal(3)              // [1 2 3 4 5 6 7 8 0]
//	start, err := board.Shuffle(3, board.WithSeed(42))
//	for _, m := range board.LegalMoves(start, 3) {
//	    next, _ := board.Apply(start, m, 3) // start is unchanged
//	    _ = next
//	}
//
// Errors
//
//   - ErrBadDimension   for n < MinDimension.
//   - ErrNotPermutation for malformed states (Validate).
//   - ErrIllegalMove    when Apply is given an inapplicable direction.
//   - ErrUnknownMove    when Apply is given a value outside the four directions.
//   - ErrOptionViolation for invalid shuffle options (e.g. negative Steps).
package board
