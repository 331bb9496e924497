package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/search"
)

func mustGoal(t *testing.T, n int) board.State {
	t.Helper()
	g, err := board.Goal(n)
	require.NoError(t, err)
	return g
}

func mustShuffle(t *testing.T, n int, seed int64, steps int) board.State {
	t.Helper()
	s, err := board.Shuffle(n, board.WithSeed(seed), board.WithSteps(steps))
	require.NoError(t, err)
	return s
}

// requireValidPath replays the solution move by move and checks the root,
// every intermediate state, and the terminal goal state.
func requireValidPath(t *testing.T, res *search.Result, initial, goal board.State, n int) {
	t.Helper()
	require.True(t, res.Solved(), "expected a solution")

	root := res.Path[0]
	require.Equal(t, board.MoveNone, root.Move, "root step must carry MoveNone")
	require.True(t, root.State.Equal(initial), "path must start at the initial state")

	cur := initial
	for i, step := range res.Path[1:] {
		next, err := board.Apply(cur, step.Move, n)
		require.NoError(t, err, "step %d: move %s must be legal", i+1, step.Move)
		require.True(t, next.Equal(step.State), "step %d: recorded state diverges from replay", i+1)
		cur = next
	}
	require.True(t, cur.Equal(goal), "path must end at the goal state")
	require.Equal(t, len(res.Path)-1, res.Cost())
}
