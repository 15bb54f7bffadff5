package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vagnervjs/slider/internal/board"
	"github.com/vagnervjs/slider/internal/solver"
	"github.com/vagnervjs/slider/internal/storage"
)

var flagRandom int

var solveCmd = &cobra.Command{
	Use:   "solve [board]",
	Short: "Solve a board",
	Long: `Compute the shortest move sequence from the given board to the
solved configuration. The board is a comma-separated list of tiles in
row order with 0 for the blank.

The result is one of three verdicts: already solved, solved in N moves
(with the move list), or no solution exists. Each run is recorded in the
solve history.

Examples:
  slider solve 1,2,3,4,0,5,7,8,6
  slider solve 8,1,2,0,4,3,7,6,5
  slider solve --random 25
  slider solve --random 40 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagRandom, "random", 0, "Scramble this many moves from the goal and solve that")
}

func runSolve(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var b board.Board
	switch {
	case flagRandom > 0:
		b = board.Scramble(cfg.Board.Side, flagRandom, newRNG())
	case len(args) == 1:
		b, err = board.Parse(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: provide a board or use --random")
		fmt.Fprintln(os.Stderr, "Run 'slider solve --help' for usage.")
		os.Exit(1)
	}

	side, err := board.Side(len(b))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: board has %d slots, which is not a square grid\n", len(b))
		os.Exit(1)
	}

	adj := board.NewAdjacency(side)

	started := time.Now()
	res, err := solver.Solve(b, adj)
	elapsed := time.Since(started)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("search finished",
		"outcome", res.Status.String(),
		"moves", len(res.Actions),
		"expanded", res.Expanded,
		"duration", elapsed)

	r := newRenderer()
	fmt.Println(r.Grid(b))
	fmt.Println()
	fmt.Println(r.Outcome(res))
	if len(res.Actions) > 0 {
		fmt.Println()
		fmt.Println(r.Actions(res.Actions))
	}

	// Record the solve. History is best-effort: a broken database should
	// not hide a perfectly good solution.
	store, err := storage.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveSolve(storage.SolveRecord{
		Board:      b.String(),
		Side:       side,
		Outcome:    res.Status.String(),
		Moves:      len(res.Actions),
		Expanded:   res.Expanded,
		DurationMs: elapsed.Milliseconds(),
	})
	if err != nil {
		logger.Warn("could not record solve", "error", err)
	}
}
