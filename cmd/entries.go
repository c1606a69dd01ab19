package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/wtrack/internal/cli"
	"github.com/theirongolddev/wtrack/internal/model"
	"github.com/theirongolddev/wtrack/internal/tracker"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var addCmd = &cobra.Command{
	Use:   "add <date|today> <weight>",
	Short: "Add a new entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "View all entries",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <date>",
	Aliases: []string{"rm"},
	Short:   "Delete the entry for a date",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var updateCmd = &cobra.Command{
	Use:   "update <date> <weight>",
	Short: "Update the entry for a date",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

func init() {
	addCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Overwrite an existing entry without asking")
	rootCmd.AddCommand(addCmd, listCmd, deleteCmd, updateCmd)
}

func parseEntryArgs(args []string) (model.Entry, error) {
	date, err := parseDateArg(args[0])
	if err != nil {
		return model.Entry{}, err
	}
	weight, err := model.ParseWeight(args[1])
	if err != nil {
		return model.Entry{}, err
	}
	return model.NewEntry(date, weight), nil
}

func runAdd(_ *cobra.Command, args []string) error {
	e, err := parseEntryArgs(args)
	if err != nil {
		return err
	}
	tr, err := openTracker()
	if err != nil {
		return err
	}

	hadGoal := tr.Config().GoalAchieved
	defer reportGoal(tr, hadGoal)

	err = tr.AddEntry(e.Date, e.Weight)
	var conflict *tracker.ConflictError
	if !errors.As(err, &conflict) {
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderSuccess("Entry added."))
		return nil
	}

	overwrite := flagYes
	if !overwrite {
		prompt := huh.NewConfirm().
			Title(conflict.Error() + ".").
			Description("Overwrite it?").
			Affirmative("Overwrite").
			Negative("Keep").
			Value(&overwrite)
		if err := prompt.Run(); err != nil {
			return fmt.Errorf("%w (use --yes to overwrite)", conflict)
		}
	}
	if !overwrite {
		fmt.Println(cli.RenderWarning("Kept the existing entry."))
		return nil
	}

	if _, err := tr.UpdateEntry(e.Date, e.Weight); err != nil {
		return err
	}
	fmt.Println(cli.RenderSuccess("Entry overwritten."))
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	tr, err := openTracker()
	if err != nil {
		return err
	}

	entries := tr.Entries()
	if len(entries) == 0 {
		fmt.Println("\n  No entries found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEIGHT LOG  %d entries", len(entries))))
	fmt.Println()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date.Format(model.DateLayout),
			cli.FormatDayOfWeek(int(e.Date.Weekday())),
			cli.FormatWeight(e.Weight),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Weight"},
		Rows:    rows,
	}))
	return nil
}

func runDelete(_ *cobra.Command, args []string) error {
	date, err := parseDateArg(args[0])
	if err != nil {
		return err
	}
	tr, err := openTracker()
	if err != nil {
		return err
	}

	n, err := tr.DeleteEntry(date)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println(cli.RenderWarning("No entry found for that date."))
		return nil
	}
	fmt.Println(cli.RenderSuccess("Entry deleted."))
	return nil
}

func runUpdate(_ *cobra.Command, args []string) error {
	e, err := parseEntryArgs(args)
	if err != nil {
		return err
	}
	tr, err := openTracker()
	if err != nil {
		return err
	}

	hadGoal := tr.Config().GoalAchieved
	ok, err := tr.UpdateEntry(e.Date, e.Weight)
	if err != nil {
		return err
	}
	reportGoal(tr, hadGoal)
	if !ok {
		fmt.Println(cli.RenderWarning("No entry found for that date."))
		return nil
	}
	fmt.Println(cli.RenderSuccess("Entry updated."))
	return nil
}

// reportGoal prints a notice when the last operation achieved the goal.
func reportGoal(tr *tracker.Tracker, hadGoal bool) {
	if !hadGoal && tr.Config().GoalAchieved {
		fmt.Println(cli.RenderSuccess("Goal weight reached! +1 Blipcoin"))
	}
}
