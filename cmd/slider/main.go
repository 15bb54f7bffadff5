// slider is a sliding-tile puzzle solver for the terminal.
//
// Usage:
//
//	slider solve <board>     - Compute the shortest solution for a board
//	slider solve --random 25 - Scramble and solve in one step
//	slider scramble          - Emit a scrambled board
//	slider history           - Show recent solves
//
// Global flags:
//
//	--size <n>      - Grid side length (default: from config, 3)
//	--seed <value>  - Set RNG seed for reproducible scrambles
//	--db <path>     - Set history database path
//	--config <p>    - Path to custom config YAML
//	--no-color      - Disable styled output
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vagnervjs/slider/internal/config"
	"github.com/vagnervjs/slider/internal/platform/cli"
)

var (
	// Global flags
	flagSize    int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagNoColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slider",
	Short: "Sliding-tile puzzle solver",
	Long: `slider computes shortest solutions for sliding-tile puzzles
(the classic 3x3 8-puzzle and larger square grids) using A* search
with the Manhattan distance heuristic.

Available commands:
  solve     - Solve a board and print the move list
  scramble  - Generate a scrambled board
  history   - View past solves

Examples:
  slider solve 1,2,3,4,0,5,7,8,6
  slider solve --random 25
  slider scramble --moves 40
  slider history --stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid side length (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the YAML config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSize > 0 {
		cfg.Board.Side = flagSize
	}
	if flagDBPath != "" {
		cfg.History.Path = flagDBPath
	}
	return cfg, nil
}

// newLogger builds the CLI logger. Diagnostics go to stderr so command
// output stays pipeable.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "slider",
	})
}

// newRNG seeds from --seed, falling back to the clock.
func newRNG() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newRenderer styles output only when stdout is a terminal and --no-color
// is not set.
func newRenderer() *cli.Renderer {
	styled := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	return cli.NewRenderer(styled)
}
