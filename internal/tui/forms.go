package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/wtrack/internal/model"

	"github.com/charmbracelet/huh"
)

// formValues backs every menu form. It lives behind a pointer so the
// bindings survive App being copied by Bubble Tea.
type formValues struct {
	date    string
	weight  string
	amount  string
	confirm bool
}

func validateDate(s string) error {
	_, err := model.ParseDate(s)
	return err
}

func validateWeight(s string) error {
	_, err := model.ParseWeight(s)
	return err
}

func validateAmount(s string) error {
	v, err := model.ParseWeight(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func newDateWeightForm(title string, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Date (YYYY-MM-DD)").
				Placeholder(time.Now().Format(model.DateLayout)).
				Value(&vals.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Weight (lbs)").
				Value(&vals.weight).
				Validate(validateWeight),
		),
	).WithShowHelp(false)
}

func newDateForm(title string, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Date (YYYY-MM-DD)").
				Value(&vals.date).
				Validate(validateDate),
		),
	).WithShowHelp(false)
}

func newAmountForm(title, current string, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(fmt.Sprintf("Current: %s. Enter 0 to keep it.", current)).
				Value(&vals.amount).
				Validate(validateAmount),
		),
	).WithShowHelp(false)
}

func newOverwriteForm(existing model.Entry, vals *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("An entry for %s already exists (%s lbs).",
					existing.Date.Format(model.DateLayout), model.FormatWeight(existing.Weight))).
				Description("Overwrite it?").
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&vals.confirm),
		),
	).WithShowHelp(false)
}
