// Command npuzzle shuffles and solves N²-1 sliding-tile puzzles from the
// terminal. It is a thin front-end over the board and search packages:
// pick a strategy and a heuristic, feed it a scrambled state (or let it
// scramble one for you), and read back the move list, path cost, node
// expansions, and elapsed time.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
	"github.com/katalvlaran/npuzzle/search"
)

func main() {
	cmd := &cli.Command{
		Name:  "npuzzle",
		Usage: "shuffle and solve N²-1 sliding-tile puzzles",
		Commands: []*cli.Command{
			shuffleCommand(),
			solveCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "npuzzle:", err)
		os.Exit(1)
	}
}

func shuffleCommand() *cli.Command {
	return &cli.Command{
		Name:  "shuffle",
		Usage: "print a random solvable configuration",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Value: 3, Usage: "board dimension N (N×N grid)"},
			&cli.IntFlag{Name: "steps", Value: 0, Usage: "random moves to apply (0 = default 15·N²)"},
			&cli.IntFlag{Name: "seed", Value: 0, Usage: "RNG seed (0 = fixed default stream)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			n := int(cmd.Int("size"))
			s, err := board.Shuffle(n,
				board.WithSteps(int(cmd.Int("steps"))),
				board.WithSeed(cmd.Int("seed")),
			)
			if err != nil {
				return err
			}
			fmt.Println(s)
			fmt.Println("state:", flatten(s))
			return nil
		},
	}
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "solve a configuration (scrambles one when --state is omitted)",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Value: 3, Usage: "board dimension N (N×N grid)"},
			&cli.StringFlag{Name: "algo", Aliases: []string{"a"}, Value: "astar", Usage: "bfs | dfs | ids | astar | greedy"},
			&cli.StringFlag{Name: "heuristic", Value: "manhattan", Usage: "manhattan | misplaced (astar/greedy only)"},
			&cli.StringFlag{Name: "state", Usage: "comma-separated tiles, blank as 0 (e.g. \"1,2,3,4,5,6,7,0,8\")"},
			&cli.IntFlag{Name: "seed", Value: 0, Usage: "shuffle RNG seed when --state is omitted"},
			&cli.IntFlag{Name: "depth-bound", Value: 0, Usage: "dfs depth bound (0 = default 2·N²)"},
			&cli.IntFlag{Name: "ceiling", Value: 0, Usage: "ids depth ceiling (0 = default 100)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "print the summary line only"},
		},
		Action: runSolve,
	}
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	n := int(cmd.Int("size"))

	algo, err := search.ParseAlgorithm(cmd.String("algo"))
	if err != nil {
		return err
	}
	hid, err := heuristic.ParseID(cmd.String("heuristic"))
	if err != nil {
		return err
	}
	hfn, err := heuristic.ForID(hid)
	if err != nil {
		return err
	}

	var initial board.State
	if raw := cmd.String("state"); raw != "" {
		if initial, err = parseState(raw); err != nil {
			return err
		}
		if err = board.Validate(initial, n); err != nil {
			return err
		}
	} else {
		if initial, err = board.Shuffle(n, board.WithSeed(cmd.Int("seed"))); err != nil {
			return err
		}
	}

	if !cmd.Bool("quiet") {
		fmt.Println(initial)
		fmt.Println()
	}

	res, err := search.Solve(algo, initial, n,
		search.WithContext(ctx),
		search.WithHeuristic(hfn),
		search.WithDepthBound(int(cmd.Int("depth-bound"))),
		search.WithDepthCeiling(int(cmd.Int("ceiling"))),
	)
	if err != nil {
		return err
	}

	if !res.Solved() {
		fmt.Printf("%s: no solution found (%d nodes expanded, %s)\n",
			algo, res.Expanded, res.Elapsed)
		return nil
	}

	if !cmd.Bool("quiet") {
		fmt.Println("moves:", joinMoves(res.Moves()))
	}
	fmt.Printf("%s: solved in %d moves, %d nodes expanded, %s\n",
		algo, res.Cost(), res.Expanded, res.Elapsed)
	return nil
}

// parseState reads a comma- or space-separated list of tile values.
func parseState(raw string) (board.State, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	s := make(board.State, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad tile value %q: %w", f, err)
		}
		s = append(s, v)
	}
	return s, nil
}

func flatten(s board.State) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinMoves(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
