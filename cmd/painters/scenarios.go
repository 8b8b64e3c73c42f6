package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksenzov/perspective-painters/internal/storage"
)

var flagScenariosLimit int

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Show recently generated scenarios",
	Long: `Display the most recently generated scenarios from the archive,
including each story's goal, characters, and which viewpoint solved it.

Examples:
  painters scenarios
  painters scenarios --limit 5`,
	Run: runScenarios,
}

func init() {
	scenariosCmd.Flags().IntVar(&flagScenariosLimit, "limit", 10, "Maximum number of scenarios to show")
}

func runScenarios(_ *cobra.Command, _ []string) {
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

	entries, err := store.RecentScenarios(flagScenariosLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scenarios: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No generated scenarios archived yet.")
		fmt.Println()
		fmt.Println("Press N during 'painters play' to paint a new story.")
		return
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Println(strings.Repeat("-", 50))
		}
		fmt.Printf("%s %s  (%s)\n", entry.SceneEmoji, entry.Title, entry.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("Goal: %s\n", entry.Goal)

		sc, scErr := entry.Scenario()
		if scErr != nil {
			fmt.Printf("  (characters unreadable: %v)\n", scErr)
			continue
		}
		for _, key := range sc.Order {
			ch := sc.Characters[key]
			marker := "  "
			if key == sc.Solution {
				marker = "✓ "
			}
			fmt.Printf("  %s%s %s: %s %s\n", marker, ch.Emoji, ch.Name, ch.Action.Icon, ch.Action.Name)
		}
	}
}
