package board_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/npuzzle/board"
)

// TestGoal verifies the canonical solved configuration for several dimensions.
func TestGoal(t *testing.T) {
	cases := []struct {
		n    int
		want board.State
	}{
		{2, board.State{1, 2, 3, 0}},
		{3, board.State{1, 2, 3, 4, 5, 6, 7, 8, 0}},
		{4, board.State{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}},
	}
	for _, tc := range cases {
		got, err := board.Goal(tc.n)
		if err != nil {
			t.Fatalf("Goal(%d): unexpected error %v", tc.n, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Goal(%d) = %v; want %v", tc.n, got, tc.want)
		}
	}
	// dimensions below the minimum are rejected
	for _, n := range []int{-1, 0, 1} {
		if _, err := board.Goal(n); !errors.Is(err, board.ErrBadDimension) {
			t.Errorf("Goal(%d): want ErrBadDimension, got %v", n, err)
		}
	}
}

// TestValidate covers well-formed and malformed states.
func TestValidate(t *testing.T) {
	if err := board.Validate(board.State{1, 2, 3, 0}, 2); err != nil {
		t.Errorf("valid 2×2: unexpected error %v", err)
	}
	// wrong length
	if err := board.Validate(board.State{1, 2, 0}, 2); !errors.Is(err, board.ErrNotPermutation) {
		t.Errorf("short state: want ErrNotPermutation, got %v", err)
	}
	// duplicate value
	if err := board.Validate(board.State{1, 1, 3, 0}, 2); !errors.Is(err, board.ErrNotPermutation) {
		t.Errorf("duplicate: want ErrNotPermutation, got %v", err)
	}
	// out-of-range value
	if err := board.Validate(board.State{1, 2, 4, 0}, 2); !errors.Is(err, board.ErrNotPermutation) {
		t.Errorf("out of range: want ErrNotPermutation, got %v", err)
	}
	// bad dimension
	if err := board.Validate(board.State{0}, 1); !errors.Is(err, board.ErrBadDimension) {
		t.Errorf("n=1: want ErrBadDimension, got %v", err)
	}
}

// stateWithBlankAt returns a valid n×n state whose blank sits at index idx.
func stateWithBlankAt(t *testing.T, n, idx int) board.State {
	t.Helper()
	s, err := board.Goal(n)
	if err != nil {
		t.Fatal(err)
	}
	s = s.Clone()
	blank := s.BlankIndex()
	s[blank], s[idx] = s[idx], s[blank]
	return s
}

// TestLegalMoves_AllPositions checks, for every blank position on boards of
// dimension 2 through 5, that exactly the boundary-respecting moves are
// returned, in UP, DOWN, LEFT, RIGHT order, and that each returned move
// applies without error.
func TestLegalMoves_AllPositions(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for idx := 0; idx < n*n; idx++ {
			s := stateWithBlankAt(t, n, idx)
			row, col := idx/n, idx%n

			want := make([]board.Move, 0, 4)
			if row > 0 {
				want = append(want, board.MoveUp)
			}
			if row < n-1 {
				want = append(want, board.MoveDown)
			}
			if col > 0 {
				want = append(want, board.MoveLeft)
			}
			if col < n-1 {
				want = append(want, board.MoveRight)
			}

			got := board.LegalMoves(s, n)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("n=%d blank=%d: LegalMoves = %v; want %v", n, idx, got, want)
			}
			for _, m := range got {
				if _, err := board.Apply(s, m, n); err != nil {
					t.Errorf("n=%d blank=%d: Apply(%s) failed: %v", n, idx, m, err)
				}
			}
		}
	}
}

// TestApply_Swap verifies the blank/tile swap on a concrete 3×3 case.
func TestApply_Swap(t *testing.T) {
	s := board.State{1, 2, 3, 4, 5, 6, 7, 0, 8}
	got, err := board.Apply(s, board.MoveRight, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := board.State{1, 2, 3, 4, 5, 6, 7, 8, 0}
	if !got.Equal(want) {
		t.Errorf("Apply(RIGHT) = %v; want %v", got, want)
	}
	// the input state is untouched
	if !s.Equal(board.State{1, 2, 3, 4, 5, 6, 7, 0, 8}) {
		t.Errorf("Apply mutated its input: %v", s)
	}
}

// TestApply_Inverse checks that a move followed by its opposite restores
// the original state, for every legal move at every blank position.
func TestApply_Inverse(t *testing.T) {
	for n := 2; n <= 4; n++ {
		for idx := 0; idx < n*n; idx++ {
			s := stateWithBlankAt(t, n, idx)
			for _, m := range board.LegalMoves(s, n) {
				mid, err := board.Apply(s, m, n)
				if err != nil {
					t.Fatal(err)
				}
				back, err := board.Apply(mid, m.Opposite(), n)
				if err != nil {
					t.Fatal(err)
				}
				if !back.Equal(s) {
					t.Errorf("n=%d blank=%d: %s then %s did not restore state", n, idx, m, m.Opposite())
				}
			}
		}
	}
}

// TestApply_Illegal verifies sentinel errors for inapplicable and unknown moves.
func TestApply_Illegal(t *testing.T) {
	goal, _ := board.Goal(2) // blank at bottom-right
	if _, err := board.Apply(goal, board.MoveDown, 2); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("DOWN at bottom row: want ErrIllegalMove, got %v", err)
	}
	if _, err := board.Apply(goal, board.MoveRight, 2); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("RIGHT at right column: want ErrIllegalMove, got %v", err)
	}
	if _, err := board.Apply(goal, board.Move(99), 2); !errors.Is(err, board.ErrUnknownMove) {
		t.Errorf("bogus move: want ErrUnknownMove, got %v", err)
	}
}

// TestStateIdentity covers Key, Equal, Clone, and BlankIndex.
func TestStateIdentity(t *testing.T) {
	a := board.State{1, 2, 3, 4, 5, 6, 7, 0, 8}
	b := a.Clone()
	if !a.Equal(b) || a.Key() != b.Key() {
		t.Error("clone must compare and key equal to the original")
	}
	b[0], b[1] = b[1], b[0]
	if a.Equal(b) || a.Key() == b.Key() {
		t.Error("distinct states must not compare or key equal")
	}
	if got := a.BlankIndex(); got != 7 {
		t.Errorf("BlankIndex = %d; want 7", got)
	}
	if a.Equal(board.State{1, 2, 3}) {
		t.Error("states of different length must not be equal")
	}
}

// TestMoveNames covers String, ParseMove, and Opposite round-trips.
func TestMoveNames(t *testing.T) {
	for _, m := range []board.Move{board.MoveUp, board.MoveDown, board.MoveLeft, board.MoveRight} {
		parsed, err := board.ParseMove(m.String())
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", m, err)
		}
		if parsed != m {
			t.Errorf("ParseMove(%s) = %v; want %v", m, parsed, m)
		}
		if m.Opposite().Opposite() != m {
			t.Errorf("%s: Opposite is not an involution", m)
		}
	}
	if _, err := board.ParseMove("SIDEWAYS"); !errors.Is(err, board.ErrUnknownMove) {
		t.Errorf("bogus name: want ErrUnknownMove, got %v", err)
	}
	if board.MoveNone.String() != "NONE" {
		t.Errorf("MoveNone.String() = %q; want NONE", board.MoveNone.String())
	}
}
