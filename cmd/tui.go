package cmd

import (
	"fmt"

	"github.com/theirongolddev/wtrack/internal/config"
	"github.com/theirongolddev/wtrack/internal/tui"
	"github.com/theirongolddev/wtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch the interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	tr, err := openTracker()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewApp(tr))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fmt.Println("  Goodbye!")
	return nil
}
