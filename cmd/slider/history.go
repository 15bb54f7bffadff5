package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vagnervjs/slider/internal/storage"
)

var (
	flagLimit int
	flagStats bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent solves",
	Long: `Display the most recent solve records: start board, verdict,
solution length, nodes expanded, and wall-clock time.

Examples:
  slider history
  slider history --limit 50
  slider history --stats
  slider history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of records to show (0 = from config)")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregated statistics instead of records")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the entire solve history")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSolves(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Solve history cleared.")
		return
	}

	if flagStats {
		printStats(store)
		return
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.History.Limit
	}

	records, err := store.RecentSolves(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'slider solve --random 25' to record the first one!")
		return
	}

	fmt.Println("Recent solves")
	fmt.Println()
	fmt.Printf("  %-19s  %-14s  %6s  %9s  %7s  %s\n", "Date", "Outcome", "Moves", "Expanded", "ms", "Board")
	fmt.Printf("  %-19s  %-14s  %6s  %9s  %7s  %s\n", "----", "-------", "-----", "--------", "--", "-----")

	for _, rec := range records {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-19s  %-14s  %6d  %9d  %7d  %s\n",
			dateStr, rec.Outcome, rec.Moves, rec.Expanded, rec.DurationMs, rec.Board)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Solve history statistics")
	fmt.Println()
	fmt.Printf("  Total solves:   %d\n", stats.Total)
	fmt.Printf("  Solved:         %d\n", stats.Solved)
	fmt.Printf("  Unsolvable:     %d\n", stats.Unsolvable)
	if stats.Solved > 0 {
		fmt.Printf("  Best solution:  %d moves\n", stats.BestMoves)
		fmt.Printf("  Avg solution:   %.1f moves\n", stats.AvgMoves)
	}
	if stats.Total > 0 {
		fmt.Printf("  Avg expanded:   %.0f nodes\n", stats.AvgExpanded)
		fmt.Printf("  Last solve:     %s\n", stats.LastSolve.Format("2006-01-02 15:04"))
	}
}
