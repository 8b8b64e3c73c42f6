package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ksenzov/perspective-painters/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds",
	Long: `Display the most recent rounds: which story was played, whether it
was solved, and how many wrong tries it took.

Examples:
  painters history
  painters history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of rounds to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	plays, err := store.RecentPlays(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent rounds")
	fmt.Println()

	if len(plays) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'painters play' to play the first one!")
		return
	}

	fmt.Printf("  %-30s  %-8s  %-6s  %s\n", "Story", "Result", "Tries", "Date")
	fmt.Printf("  %-30s  %-8s  %-6s  %s\n", "-----", "------", "-----", "----")

	for _, entry := range plays {
		result := "gave up"
		if entry.Solved {
			result = "solved"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-30s  %-8s  %-6d  %s\n", entry.ScenarioTitle, result, entry.WrongAttempts, dateStr)
	}

	solved, err := store.SolvedCount()
	if err == nil {
		fmt.Println()
		fmt.Printf("Solved in total: %d\n", solved)
	}
}
