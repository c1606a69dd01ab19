package cmd

import (
	"fmt"

	"github.com/theirongolddev/wtrack/internal/cli"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View stats (avg, min, max, total lost, rewards)",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	s := tr.Stats()
	if s.Entries == 0 {
		fmt.Println("\n  No entries found.")
		fmt.Println("  Add one with `wtrack add today <weight>`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEIGHT STATS"))
	fmt.Println()

	changeLabel, changeValue := cli.FormatChange(s.TotalLost)
	rows := [][]string{
		{"Entries", cli.FormatNumber(int64(s.Entries))},
		{"Average", cli.FormatWeight(s.Average)},
		{"Min", cli.FormatWeight(s.Min)},
		{"Max", cli.FormatWeight(s.Max)},
		{"---"},
		{"Starting", cli.FormatWeight(s.StartWeight)},
		{"Current", cli.FormatWeight(s.CurrentWeight)},
		{changeLabel, changeValue},
		{"BMI", cli.FormatBMI(s.BMI, s.BMICategory)},
		{"---"},
		{"Blipcoins", cli.FormatNumber(int64(s.Coins))},
		{"Spent", cli.FormatNumber(int64(s.SpentCoins))},
	}

	if s.GoalWeight > 0 {
		goal := cli.FormatWeight(s.GoalWeight)
		if s.GoalAchieved {
			goal += " (achieved)"
		}
		rows = append(rows,
			[]string{"---"},
			[]string{"Goal", goal},
			[]string{"To goal", cli.FormatWeight(s.PoundsToGoal)},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if s.GoalWeight > 0 {
		fmt.Printf("\n  Goal progress  %s\n", cli.RenderGoalBar(s.ProgressBar, s.GoalAchieved))
	}
	if s.Entries > 1 {
		fmt.Printf("  Trend          %s\n", cli.RenderSparkline(tr.Weights()))
	}
	fmt.Println()

	return nil
}
