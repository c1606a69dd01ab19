package tui

import (
	"github.com/theirongolddev/wtrack/internal/config"
	"github.com/theirongolddev/wtrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the first-run setup wizard. Height and
// goal are kept as text so an empty answer means "leave unchanged".
type SetupValues struct {
	DataFile string
	Theme    string
	Height   string
	Goal     string
}

// NewSetupValues seeds the wizard from the current config.
func NewSetupValues(cfg config.Config, dataFile string) *SetupValues {
	return &SetupValues{
		DataFile: dataFile,
		Theme:    theme.ByName(cfg.Appearance.Theme).Name,
	}
}

// NewSetupForm builds the setup wizard bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	optionalAmount := func(s string) error {
		if s == "" {
			return nil
		}
		return validateAmount(s)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weights file").
				Description("Where entries are stored.").
				Value(&vals.DataFile),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Height (inches)").
				Description("Used for BMI. Leave blank to skip.").
				Value(&vals.Height).
				Validate(optionalAmount),
			huh.NewInput().
				Title("Goal weight (lbs)").
				Description("Leave blank to skip.").
				Value(&vals.Goal).
				Validate(optionalAmount),
		),
	)
}
