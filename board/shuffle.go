// Package board - scrambling via random legal moves.
//
// Shuffle starts from the solved configuration and applies uniformly random
// legal moves, so every state it produces is reachable from the goal and
// therefore solvable. Randomness follows the deterministic-stream policy:
// same seed ⇒ identical scramble across platforms, seed 0 ⇒ fixed default.
package board

import (
	"fmt"
	"math/rand"
)

// defaultShuffleFactor scales the number of random moves: steps = factor·n².
const defaultShuffleFactor = 15

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// ShuffleOptions holds tunable parameters for Shuffle.
//
// Steps — number of random legal moves applied; 0 means the default 15·n².
// Seed  — RNG seed; 0 means the fixed default stream.
type ShuffleOptions struct {
	Steps int
	Seed  int64

	// internal error recorded during option parsing
	err error
}

// ShuffleOption configures Shuffle behavior via functional arguments.
// Invalid values are recorded internally and surfaced as ErrOptionViolation
// when Shuffle is invoked.
type ShuffleOption func(*ShuffleOptions)

// DefaultShuffleOptions returns a ShuffleOptions with the default step
// policy (15·n², resolved inside Shuffle) and the default RNG stream.
func DefaultShuffleOptions() ShuffleOptions {
	return ShuffleOptions{Steps: 0, Seed: 0, err: nil}
}

// WithSteps overrides the number of random moves applied.
//
//	k > 0:  apply exactly k moves
//	k == 0: explicit "use the default 15·n²"
//	k < 0:  invalid option → ErrOptionViolation
func WithSteps(k int) ShuffleOption {
	return func(o *ShuffleOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Steps cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Steps = k
	}
}

// WithSeed fixes the RNG seed for a reproducible scramble.
// Seed 0 keeps the default deterministic stream.
func WithSeed(seed int64) ShuffleOption {
	return func(o *ShuffleOptions) {
		o.Seed = seed
	}
}

// Shuffle produces a random solvable n×n configuration by walking the
// default number (or WithSteps) of uniformly random legal moves away from
// the goal state.
//
// Complexity: O(steps·n²) time, O(n²) space.
func Shuffle(n int, opts ...ShuffleOption) (State, error) {
	o := DefaultShuffleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := Goal(n)
	if err != nil {
		return nil, err
	}

	steps := o.Steps
	if steps == 0 {
		steps = defaultShuffleFactor * n * n
	}

	rng := rngFromSeed(o.Seed)
	for i := 0; i < steps; i++ {
		moves := LegalMoves(s, n)
		// Apply cannot fail here: the move was just generated as legal.
		s, _ = Apply(s, moves[rng.Intn(len(moves))], n)
	}
	return s, nil
}
