package cmd

import (
	"fmt"

	"github.com/theirongolddev/wtrack/internal/cli"
	"github.com/theirongolddev/wtrack/internal/model"
	"github.com/theirongolddev/wtrack/internal/tracker"

	"github.com/spf13/cobra"
)

var treatCmd = &cobra.Command{
	Use:   "treat",
	Short: "Buy a sweet treat (-1 Blipcoin)",
	Args:  cobra.NoArgs,
	RunE:  runTreat,
}

var heightCmd = &cobra.Command{
	Use:   "height [inches]",
	Short: "View or set height (0 keeps current)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHeight,
}

var goalCmd = &cobra.Command{
	Use:   "goal [pounds]",
	Short: "View or set goal weight (0 keeps current)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGoal,
}

func init() {
	rootCmd.AddCommand(treatCmd, heightCmd, goalCmd)
}

func runTreat(_ *cobra.Command, _ []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	ok, err := tr.BuyTreat()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(cli.RenderWarning("Not enough Blipcoins to buy a sweet treat."))
		return nil
	}
	fmt.Println(cli.RenderSuccess("Yum! You bought a sweet treat (-1 Blipcoin)"))
	fmt.Printf("  Balance: %s\n", cli.FormatCoins(tr.CoinBalance()))
	return nil
}

func runHeight(_ *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		v, err := model.ParseWeight(args[0])
		if err != nil {
			return err
		}
		if v != 0 {
			if err := tr.SetHeight(v); err != nil {
				return err
			}
			fmt.Println(cli.RenderSuccess("Height updated."))
		}
	}

	cfg := tr.Config()
	fmt.Printf("  Height: %s\n", cli.FormatHeight(cfg.HeightInches))
	if bmi := tr.CurrentBMI(); bmi > 0 {
		fmt.Printf("  BMI:    %s\n", cli.FormatBMI(bmi, tracker.BMICategory(bmi)))
	}
	return nil
}

func runGoal(_ *cobra.Command, args []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		v, err := model.ParseWeight(args[0])
		if err != nil {
			return err
		}
		if v != 0 {
			hadGoal := tr.Config().GoalAchieved && tr.Config().GoalWeight == v
			if err := tr.SetGoalWeight(v); err != nil {
				return err
			}
			fmt.Println(cli.RenderSuccess("Goal weight updated."))
			reportGoal(tr, hadGoal)
		}
	}

	cfg := tr.Config()
	if !cfg.HasGoal() {
		fmt.Println("  Goal: not set")
		return nil
	}
	fmt.Printf("  Goal:     %s\n", cli.FormatWeight(cfg.GoalWeight))
	fmt.Printf("  To goal:  %s\n", cli.FormatWeight(tr.PoundsToGoal()))
	fmt.Printf("  Progress: %s\n", cli.RenderGoalBar(tr.GoalProgressBar(), cfg.GoalAchieved))
	return nil
}
