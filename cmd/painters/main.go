// painters is a tiny terminal game for kids about perspective-taking:
// switch between three characters' points of view and find whose action
// solves the scene's goal. Scenarios are painted by an LLM, with a
// built-in story when no provider is reachable.
//
// Usage:
//
//	painters play             - Play locally in the terminal
//	painters serve            - Start SSH server for remote play
//	painters history          - Show recent rounds
//	painters scenarios        - Show recently generated scenarios
//
// Global flags:
//
//	--config <path>  - Path to config YAML (default: ~/.painters/config.yaml)
//	--db <path>      - Path to history database (overrides config)
package main

import (
	"fmt"
	"os"

	anyllmlib "github.com/mozilla-ai/any-llm-go"
	"github.com/spf13/cobra"

	"github.com/ksenzov/perspective-painters/internal/config"
	"github.com/ksenzov/perspective-painters/internal/game"
	"github.com/ksenzov/perspective-painters/internal/provider/anyllm"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "painters",
	Short: "Perspective Painters - a point-of-view puzzle game for kids",
	Long: `Perspective Painters is a terminal game about seeing a scene through
different eyes. Each story has a goal and three characters; look through
each character's point of view and decide whose action fits the goal.

Available commands:
  play       - Play locally in the terminal
  serve      - Start SSH server for remote play
  history    - Show recent rounds
  scenarios  - Show recently generated scenarios

Examples:
  painters play
  painters play --config ./painters.yaml
  painters serve --ssh :2222
  painters history`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scenariosCmd)
}

// loadConfig loads the effective configuration, applying the --db override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}

// newProvider builds the LLM provider from config. A failure is not fatal:
// the game falls back to the built-in scenario, so this warns and returns
// nil instead of exiting.
func newProvider(pc config.ProviderConfig) game.Provider {
	var opts []anyllmlib.Option
	if pc.APIKey != "" {
		opts = append(opts, anyllmlib.WithAPIKey(pc.APIKey))
	}
	if pc.BaseURL != "" {
		opts = append(opts, anyllmlib.WithBaseURL(pc.BaseURL))
	}

	prov, err := anyllm.New(pc.Name, pc.Model, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM provider unavailable (%v), using the built-in story\n", err)
		return nil
	}
	return prov
}
