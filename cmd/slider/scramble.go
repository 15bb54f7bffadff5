package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vagnervjs/slider/internal/board"
)

var (
	flagMoves   int
	flagUniform bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scrambled board",
	Long: `Emit a scrambled, always-solvable board in the comma-separated
form that 'slider solve' accepts. The last line is the flat board, so
the output can be piped or pasted directly.

By default the board is produced by a random walk of legal moves from
the goal; --uniform draws a uniformly random solvable permutation
instead.

Examples:
  slider scramble
  slider scramble --moves 40
  slider scramble --uniform --seed 7`,
	Args: cobra.NoArgs,
	Run:  runScramble,
}

func init() {
	scrambleCmd.Flags().IntVar(&flagMoves, "moves", 0, "Random-walk length (0 = from config)")
	scrambleCmd.Flags().BoolVar(&flagUniform, "uniform", false, "Uniformly random solvable permutation")
}

func runScramble(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	moves := flagMoves
	if moves <= 0 {
		moves = cfg.Scramble.Moves
	}

	rng := newRNG()
	var b board.Board
	if flagUniform || cfg.Scramble.Uniform {
		b = board.UniformShuffle(cfg.Board.Side, rng)
	} else {
		b = board.Scramble(cfg.Board.Side, moves, rng)
	}

	r := newRenderer()
	fmt.Println(r.Grid(b))
	fmt.Println()
	fmt.Println(b.String())
}
