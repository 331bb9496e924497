// Package board implements the sliding-tile state and move model:
// goal construction, legal-move generation, and move application.
//
// Geometry: a State of length n² is read row-major; the cell at index i
// sits at row i/n, column i%n. Move legality depends only on the blank's
// row and column, never on tile values.
//
// Complexity (n = board dimension):
//
//   - Goal, Validate, Apply, BlankIndex: O(n²)
//   - LegalMoves: O(n²) to locate the blank, O(1) afterwards
//
// Errors:
//
//   - ErrBadDimension   if n < MinDimension.
//   - ErrNotPermutation if a state is malformed (wrong length or values).
//   - ErrIllegalMove    if Apply is called with a move LegalMoves would not return.
//   - ErrUnknownMove    if Apply is called with a value outside the four directions.
package board

import (
	"fmt"
	"strings"
)

// Goal returns the canonical solved configuration [1, 2, ..., n²-1, 0]
// for an n×n board. Panics are never used; n < MinDimension yields ErrBadDimension.
func Goal(n int) (State, error) {
	if n < MinDimension {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}
	total := n * n
	s := make(State, total)
	for i := 0; i < total-1; i++ {
		s[i] = i + 1
	}
	s[total-1] = Blank
	return s, nil
}

// Validate checks that s is a well-formed n×n configuration:
// length n² and a permutation of 0..n²-1.
func Validate(s State, n int) error {
	if n < MinDimension {
		return fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}
	total := n * n
	if len(s) != total {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(s), total)
	}
	seen := make([]bool, total)
	for _, v := range s {
		if v < 0 || v >= total || seen[v] {
			return fmt.Errorf("%w: value %d", ErrNotPermutation, v)
		}
		seen[v] = true
	}
	return nil
}

// BlankIndex returns the index of the blank cell, or -1 if s has none.
func (s State) BlankIndex() int {
	for i, v := range s {
		if v == Blank {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Equal reports whether s and other match at every position.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if v != other[i] {
			return false
		}
	}
	return true
}

// Key returns a compact representation of s usable as a map key.
// One byte per cell suffices for every dimension the search engine can
// realistically explore (values stay below 256 through n = 15).
func (s State) Key() string {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = byte(v)
	}
	return string(b)
}

// String renders s as an n×n grid with the blank shown as a dot,
// assuming len(s) is a perfect square.
func (s State) String() string {
	n := 1
	for n*n < len(s) {
		n++
	}
	var sb strings.Builder
	for i, v := range s {
		if i > 0 {
			if i%n == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		if v == Blank {
			sb.WriteString(" .")
		} else {
			fmt.Fprintf(&sb, "%2d", v)
		}
	}
	return sb.String()
}

// LegalMoves returns the moves applicable in s, determined solely by the
// blank's row and column. The order is always UP, DOWN, LEFT, RIGHT:
// depth-first tie-breaking depends on it.
func LegalMoves(s State, n int) []Move {
	blank := s.BlankIndex()
	row, col := blank/n, blank%n
	moves := make([]Move, 0, 4)
	if row > 0 {
		moves = append(moves, MoveUp)
	}
	if row < n-1 {
		moves = append(moves, MoveDown)
	}
	if col > 0 {
		moves = append(moves, MoveLeft)
	}
	if col < n-1 {
		moves = append(moves, MoveRight)
	}
	return moves
}

// Apply returns a new State with the blank and the adjacent tile in the
// move's direction swapped. s itself is never modified.
//
// Callers are expected to pass only moves returned by LegalMoves; an
// inapplicable move yields ErrIllegalMove rather than an out-of-range swap.
func Apply(s State, m Move, n int) (State, error) {
	blank := s.BlankIndex()
	row, col := blank/n, blank%n

	var swap int
	switch m {
	case MoveUp:
		if row == 0 {
			return nil, fmt.Errorf("%w: %s with blank at row 0", ErrIllegalMove, m)
		}
		swap = blank - n
	case MoveDown:
		if row == n-1 {
			return nil, fmt.Errorf("%w: %s with blank at row %d", ErrIllegalMove, m, row)
		}
		swap = blank + n
	case MoveLeft:
		if col == 0 {
			return nil, fmt.Errorf("%w: %s with blank at col 0", ErrIllegalMove, m)
		}
		swap = blank - 1
	case MoveRight:
		if col == n-1 {
			return nil, fmt.Errorf("%w: %s with blank at col %d", ErrIllegalMove, m, col)
		}
		swap = blank + 1
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMove, m)
	}

	next := s.Clone()
	next[blank], next[swap] = next[swap], next[blank]
	return next, nil
}
