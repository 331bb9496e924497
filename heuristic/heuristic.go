// Package heuristic implements goal-distance estimates for sliding-tile
// states, consumed by the informed strategies in npuzzle/search.
package heuristic

import (
	"github.com/katalvlaran/npuzzle/board"
)

// Func scores how far s is from goal on an n×n board. Implementations must
// be pure, non-negative, and zero when s equals goal. Both provided
// heuristics are admissible under unit-cost moves: they never overestimate
// the true remaining move count, which is what makes A* optimal.
type Func func(s, goal board.State, n int) int

// Manhattan sums, over all non-blank tiles, the row plus column distance
// between each tile's position in s and its position in goal.
//
// Admissible and consistent under unit-cost edges; strictly stronger than
// MisplacedTiles (it prunes more of the frontier).
//
// Complexity: O(n²) time, O(n²) space for the goal position index.
func Manhattan(s, goal board.State, n int) int {
	// goalPos[v] = index of value v in goal, so each tile lookup is O(1).
	goalPos := make([]int, len(goal))
	for i, v := range goal {
		goalPos[v] = i
	}

	dist := 0
	for i, v := range s {
		if v == board.Blank {
			continue
		}
		gi := goalPos[v]
		rowDelta := i/n - gi/n
		if rowDelta < 0 {
			rowDelta = -rowDelta
		}
		colDelta := i%n - gi%n
		if colDelta < 0 {
			colDelta = -colDelta
		}
		dist += rowDelta + colDelta
	}
	return dist
}

// MisplacedTiles counts the non-blank positions where s and goal disagree.
//
// Admissible (each misplaced tile needs at least one move) but weaker than
// Manhattan: it assigns the same score to states Manhattan tells apart.
//
// Complexity: O(n²) time, O(1) space.
func MisplacedTiles(s, goal board.State, n int) int {
	misplaced := 0
	for i, v := range s {
		if v != board.Blank && v != goal[i] {
			misplaced++
		}
	}
	return misplaced
}
