package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/search"
)

func TestGreedy_AlreadySolved(t *testing.T) {
	goal := mustGoal(t, 3)
	res, err := search.GreedySearch(goal, goal, 3)
	require.NoError(t, err)
	require.Len(t, res.Path, 1)
	require.Equal(t, 1, res.Expanded)
}

func TestGreedy_OneMove(t *testing.T) {
	goal := mustGoal(t, 3)
	initial := board.State{1, 2, 3, 4, 5, 6, 7, 0, 8}

	res, err := search.GreedySearch(initial, goal, 3)
	require.NoError(t, err)
	requireValidPath(t, res, initial, goal, 3)
	require.Equal(t, 1, res.Cost())
}

// TestGreedy_FindsValidPaths: greedy guarantees nothing about path length,
// only that any returned path is real. Costs are compared against
// breadth-first as a lower bound.
func TestGreedy_FindsValidPaths(t *testing.T) {
	goal := mustGoal(t, 3)
	for seed := int64(1); seed <= 10; seed++ {
		initial := mustShuffle(t, 3, seed, 25)

		res, err := search.GreedySearch(initial, goal, 3)
		require.NoError(t, err)
		requireValidPath(t, res, initial, goal, 3)

		bfsRes, err := search.BreadthFirstSearch(initial, goal, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Cost(), bfsRes.Cost(), "seed %d", seed)
	}
}

func TestGreedy_MisplacedTiles(t *testing.T) {
	goal := mustGoal(t, 3)
	initial := mustShuffle(t, 3, 7, 15)

	res, err := search.GreedySearch(initial, goal, 3,
		search.WithHeuristic(heuristic.MisplacedTiles))
	require.NoError(t, err)
	requireValidPath(t, res, initial, goal, 3)
}

// TestGreedy_Unsolvable exhausts the reachable 2×2 component; the
// expansion-time explored set keeps the count finite.
func TestGreedy_Unsolvable(t *testing.T) {
	goal := mustGoal(t, 2)
	res, err := search.GreedySearch(board.State{2, 1, 3, 0}, goal, 2)
	require.NoError(t, err)
	require.False(t, res.Solved())
	require.Positive(t, res.Expanded)
}
