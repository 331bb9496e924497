// Package board defines core types, options, and sentinel errors
// for the board subpackage of github.com/katalvlaran/npuzzle.
package board

import (
	"errors"
)

// Sentinel errors for board operations.
var (
	// ErrBadDimension indicates a board dimension below the 2×2 minimum.
	ErrBadDimension = errors.New("board: dimension must be at least 2")
	// ErrNotPermutation indicates a state that is not a permutation of 0..n²-1.
	ErrNotPermutation = errors.New("board: state must contain each value in 0..n²-1 exactly once")
	// ErrIllegalMove indicates a move not applicable at the blank's position.
	ErrIllegalMove = errors.New("board: move is not legal for this blank position")
	// ErrUnknownMove indicates a Move value outside the four directions.
	ErrUnknownMove = errors.New("board: unknown move")
	// ErrOptionViolation is returned when an invalid shuffle Option is supplied.
	ErrOptionViolation = errors.New("board: invalid option supplied")
)

// Blank is the value representing the empty cell tiles slide into.
const Blank = 0

// MinDimension is the smallest supported board dimension (2×2).
const MinDimension = 2

// Move identifies which neighboring tile slides into the blank's position.
type Move uint8

const (
	// MoveNone marks the root of a solution path (no move produced it).
	MoveNone Move = iota
	// MoveUp slides the tile above the blank down into it (legal iff blank row > 0).
	MoveUp
	// MoveDown slides the tile below the blank up into it (legal iff blank row < n-1).
	MoveDown
	// MoveLeft slides the tile left of the blank into it (legal iff blank col > 0).
	MoveLeft
	// MoveRight slides the tile right of the blank into it (legal iff blank col < n-1).
	MoveRight
)

// moveNames indexes Move values for String; kept in declaration order.
var moveNames = [...]string{"NONE", "UP", "DOWN", "LEFT", "RIGHT"}

// String returns the canonical uppercase name of the move.
func (m Move) String() string {
	if int(m) >= len(moveNames) {
		return "UNKNOWN"
	}
	return moveNames[m]
}

// Opposite returns the move that undoes m. MoveNone is its own opposite.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	default:
		return MoveNone
	}
}

// ParseMove converts a canonical move name ("UP", "DOWN", "LEFT", "RIGHT")
// into a Move. Returns ErrUnknownMove for anything else.
func ParseMove(name string) (Move, error) {
	switch name {
	case "UP":
		return MoveUp, nil
	case "DOWN":
		return MoveDown, nil
	case "LEFT":
		return MoveLeft, nil
	case "RIGHT":
		return MoveRight, nil
	default:
		return MoveNone, ErrUnknownMove
	}
}

// State is an ordered, fixed-length board configuration of n² values,
// a permutation of 0..n²-1 where Blank (0) marks the empty cell.
//
// States are value types: no exported operation mutates a State in place;
// Apply always returns a fresh copy. Two states are equal iff every position
// matches. Go slices are not comparable, so Key provides a compact string
// form for use as a map key in explored-sets.
type State []int
