package board_test

import (
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// ExampleGoal shows the canonical solved configuration with the blank last.
func ExampleGoal() {
	goal, _ := board.Goal(3)
	fmt.Println(goal)
	// Output:
	//  1  2  3
	//  4  5  6
	//  7  8  .
}

// ExampleLegalMoves shows the fixed UP, DOWN, LEFT, RIGHT ordering with the
// blank in the center, where every direction is applicable.
func ExampleLegalMoves() {
	s := board.State{1, 2, 3, 4, 0, 5, 6, 7, 8}
	fmt.Println(board.LegalMoves(s, 3))
	// Output:
	// [UP DOWN LEFT RIGHT]
}

// ExampleApply walks one move and back, leaving the original untouched.
func ExampleApply() {
	goal, _ := board.Goal(3)

	left, _ := board.Apply(goal, board.MoveLeft, 3)
	back, _ := board.Apply(left, board.MoveLeft.Opposite(), 3)

	fmt.Println("restored:", back.Equal(goal))
	fmt.Println("original untouched:", goal.BlankIndex() == 8)
	// Output:
	// restored: true
	// original untouched: true
}
