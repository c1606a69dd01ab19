// Package cmd implements the wtrack CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/wtrack/internal/cli"
	"github.com/theirongolddev/wtrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Weights file: %s\n", dataFile())
	if env := os.Getenv(config.EnvDataFile); env != "" && flagFile == "" {
		fmt.Printf("    (from $%s)\n", config.EnvDataFile)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	tr, err := openTracker()
	if err != nil {
		return err
	}
	tc := tr.Config()
	fmt.Println("  [Tracker]")
	fmt.Printf("    Height:      %s\n", cli.FormatHeight(tc.HeightInches))
	if tc.HasGoal() {
		fmt.Printf("    Goal weight: %s\n", cli.FormatWeight(tc.GoalWeight))
	} else {
		fmt.Println("    Goal weight: not set")
	}
	fmt.Printf("    Coins spent: %d\n", tc.SpentCoins)
	fmt.Println()

	fmt.Println("  Run `wtrack setup` to reconfigure.")
	return nil
}
