package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wtrack/internal/config"
	"github.com/theirongolddev/wtrack/internal/model"
	"github.com/theirongolddev/wtrack/internal/tracker"
	"github.com/theirongolddev/wtrack/internal/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	vals := tui.NewSetupValues(cfg, dataFile())
	if err := tui.NewSetupForm(vals).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	path := strings.TrimSpace(vals.DataFile)
	if path == config.DefaultDataFile() {
		path = ""
	}
	cfg.General.DataFile = path
	cfg.Appearance.Theme = vals.Theme

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ledgerPath := flagFile
	if ledgerPath == "" {
		ledgerPath = config.DataFile(cfg)
	}
	tr, err := tracker.Open(ledgerPath, tracker.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	if err := applyOptional(vals.Height, tr.SetHeight); err != nil {
		return err
	}
	if err := applyOptional(vals.Goal, tr.SetGoalWeight); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Weights file: %s\n", tr.Path())
	fmt.Println("  Run `wtrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// applyOptional writes a non-empty, non-zero numeric answer through set.
func applyOptional(answer string, set func(float64) error) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil
	}
	v, err := model.ParseWeight(answer)
	if err != nil {
		return err
	}
	if v == 0 {
		return nil
	}
	return set(v)
}
