// Package tui provides the interactive Bubble Tea menu for wtrack.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/wtrack/internal/cli"
	"github.com/theirongolddev/wtrack/internal/model"
	"github.com/theirongolddev/wtrack/internal/tracker"
	"github.com/theirongolddev/wtrack/internal/tui/components"
	"github.com/theirongolddev/wtrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type action int

const (
	actionAdd action = iota
	actionList
	actionDelete
	actionStats
	actionUpdate
	actionTreat
	actionHeight
	actionGoal
	actionQuit
)

var menuItems = []struct {
	label  string
	action action
}{
	{"Add new entry", actionAdd},
	{"View all entries", actionList},
	{"Delete entry by date", actionDelete},
	{"View stats", actionStats},
	{"Update entry by date", actionUpdate},
	{"Buy sweet treat (-1 Blipcoin)", actionTreat},
	{"View/set height", actionHeight},
	{"View/set goal weight", actionGoal},
	{"Exit", actionQuit},
}

type panel int

const (
	panelNone panel = iota
	panelEntries
	panelStats
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// App is the root Bubble Tea model.
type App struct {
	tracker *tracker.Tracker

	width  int
	height int
	cursor int
	panel  panel

	// active form, nil on the menu
	form       *huh.Form
	formAction action
	vals       *formValues
	confirming bool // form is the overwrite prompt for an add

	flash    string
	flashErr bool
}

// NewApp creates the menu model for an open tracker.
func NewApp(tr *tracker.Tracker) App {
	return App{tracker: tr}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = ws.Width
		a.height = ws.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil
	}

	if a.form != nil {
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
			a.closeForm()
			a.setFlash("Cancelled.", false)
			return a, nil
		}
		return a.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key := km.String(); key {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "up", "k":
		a.cursor = (a.cursor - 1 + len(menuItems)) % len(menuItems)
	case "down", "j":
		a.cursor = (a.cursor + 1) % len(menuItems)
	case "enter":
		return a.choose(menuItems[a.cursor].action)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(menuItems) {
			a.cursor = n - 1
			return a.choose(menuItems[a.cursor].action)
		}
	}
	return a, nil
}

func (a App) choose(act action) (tea.Model, tea.Cmd) {
	a.flash = ""
	cfg := a.tracker.Config()

	switch act {
	case actionQuit:
		return a, tea.Quit
	case actionList:
		a.panel = panelEntries
		return a, nil
	case actionStats:
		a.panel = panelStats
		return a, nil
	case actionTreat:
		ok, err := a.tracker.BuyTreat()
		switch {
		case err != nil:
			a.setFlash(err.Error(), true)
		case ok:
			a.setFlash("Yum! You bought a sweet treat (-1 Blipcoin)", false)
		default:
			a.setFlash("Not enough Blipcoins to buy a sweet treat.", true)
		}
		return a, nil
	}

	a.vals = &formValues{}
	a.formAction = act
	a.confirming = false

	switch act {
	case actionAdd:
		a.form = newDateWeightForm("Add new entry", a.vals)
	case actionUpdate:
		a.form = newDateWeightForm("Update entry", a.vals)
	case actionDelete:
		a.form = newDateForm("Delete entry", a.vals)
	case actionHeight:
		a.form = newAmountForm("Height (inches)", cli.FormatHeight(cfg.HeightInches), a.vals)
	case actionGoal:
		current := "not set"
		if cfg.HasGoal() {
			current = cli.FormatWeight(cfg.GoalWeight)
		}
		a.form = newAmountForm("Goal weight (lbs)", current, a.vals)
	}

	if a.width > 0 {
		a.form = a.form.WithWidth(a.contentWidth())
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.applyForm()
	case huh.StateAborted:
		a.closeForm()
		a.setFlash("Cancelled.", false)
		return a, nil
	}

	return a, cmd
}

// applyForm runs the tracker operation for the completed form.
func (a App) applyForm() (tea.Model, tea.Cmd) {
	vals := a.vals
	act := a.formAction
	confirming := a.confirming
	a.closeForm()

	if act == actionHeight || act == actionGoal {
		v, err := model.ParseWeight(vals.amount)
		if err != nil {
			a.setFlash("Invalid input. Please try again.", true)
			return a, nil
		}
		a.applySetting(act, v)
		return a, nil
	}

	date, err := model.ParseDate(vals.date)
	if err != nil {
		a.setFlash("Invalid input. Please try again.", true)
		return a, nil
	}

	if act == actionDelete {
		n, err := a.tracker.DeleteEntry(date)
		switch {
		case err != nil:
			a.setFlash(err.Error(), true)
		case n == 0:
			a.setFlash("No entry found for that date.", true)
		default:
			a.setFlash("Entry deleted.", false)
		}
		return a, nil
	}

	weight, err := model.ParseWeight(vals.weight)
	if err != nil {
		a.setFlash("Invalid input. Please try again.", true)
		return a, nil
	}

	switch {
	case act == actionAdd && confirming && !vals.confirm:
		a.setFlash("Kept the existing entry.", false)
		return a, nil
	case act == actionAdd && !confirming:
		err := a.tracker.AddEntry(date, weight)
		var conflict *tracker.ConflictError
		if errors.As(err, &conflict) {
			a.vals = vals
			a.formAction = actionAdd
			a.confirming = true
			a.form = newOverwriteForm(conflict.Existing, vals)
			return a, a.form.Init()
		}
		if err != nil {
			a.setFlash(err.Error(), true)
			return a, nil
		}
		a.setFlash("Entry added.", false)
		return a, nil
	}

	// update, or a confirmed overwrite
	ok, err := a.tracker.UpdateEntry(date, weight)
	switch {
	case err != nil:
		a.setFlash(err.Error(), true)
	case !ok:
		a.setFlash("No entry found for that date.", true)
	case confirming:
		a.setFlash("Entry overwritten.", false)
	default:
		a.setFlash("Entry updated.", false)
	}
	return a, nil
}

func (a *App) applySetting(act action, v float64) {
	if v == 0 {
		a.setFlash("Kept current value.", false)
		return
	}

	var err error
	if act == actionHeight {
		err = a.tracker.SetHeight(v)
	} else {
		err = a.tracker.SetGoalWeight(v)
	}
	if err != nil {
		a.setFlash(err.Error(), true)
		return
	}

	if act == actionHeight {
		a.setFlash(fmt.Sprintf("Height set to %s.", cli.FormatHeight(v)), false)
	} else if a.tracker.Config().GoalAchieved {
		a.setFlash("Goal set, and you're already there! +1 Blipcoin", false)
	} else {
		a.setFlash(fmt.Sprintf("Goal set to %s.", cli.FormatWeight(v)), false)
	}
}

func (a *App) closeForm() {
	a.form = nil
	a.vals = nil
	a.confirming = false
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

func (a App) contentWidth() int {
	w := a.width
	if w == 0 {
		w = defaultWidth
	}
	return min(w, maxWidth)
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active
	w := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  --- Weight Tracker ---"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%d. %s", i+1, item.label)
		if i == a.cursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case a.form != nil:
		b.WriteString(a.form.View())
		b.WriteString("\n")
	case a.panel == panelEntries:
		b.WriteString(a.renderEntries(w))
		b.WriteString("\n")
	case a.panel == panelStats:
		b.WriteString(a.renderStats(w))
		b.WriteString("\n")
	}

	if a.flash != "" {
		color := t.Green
		if a.flashErr {
			color = t.Orange
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render("  " + a.flash))
		b.WriteString("\n")
	}

	hints := "↑/↓ move  enter select  1-9 jump  q quit"
	if a.form != nil {
		hints = "enter confirm  esc cancel"
	}
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(w, hints, a.tracker.Path()))

	return b.String()
}

func (a App) renderEntries(w int) string {
	entries := a.tracker.Entries()
	if len(entries) == 0 {
		return components.ContentCard("Entries", "No entries found.", w)
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s  %s -> %s",
			cli.FormatDayOfWeek(int(e.Date.Weekday())),
			e.Date.Format(model.DateLayout),
			model.FormatWeight(e.Weight))
	}
	return components.ContentCard(fmt.Sprintf("Entries (%d)", len(entries)), strings.Join(lines, "\n"), w)
}

func (a App) renderStats(w int) string {
	s := a.tracker.Stats()
	if s.Entries == 0 {
		return components.ContentCard("Stats", "No entries found.", w)
	}

	cards := components.MetricCardRow([]components.Metric{
		{Label: "Average", Value: cli.FormatWeight(s.Average)},
		{Label: "Min", Value: cli.FormatWeight(s.Min)},
		{Label: "Max", Value: cli.FormatWeight(s.Max)},
		{Label: "Blipcoins", Value: strconv.Itoa(s.Coins), Delta: fmt.Sprintf("%d spent", s.SpentCoins)},
	}, w)

	label, value := cli.FormatChange(s.TotalLost)
	lines := []string{
		fmt.Sprintf("%-14s %s", "Current:", cli.FormatWeight(s.CurrentWeight)),
		fmt.Sprintf("%-14s %s", label+":", value),
		fmt.Sprintf("%-14s %s", "BMI:", cli.FormatBMI(s.BMI, s.BMICategory)),
		fmt.Sprintf("%-14s %s", "Trend:", cli.RenderSparkline(a.tracker.Weights())),
	}

	if s.GoalWeight > 0 {
		lines = append(lines, fmt.Sprintf("%-14s %s (%s to go)", "Goal:",
			cli.FormatWeight(s.GoalWeight), cli.FormatWeight(s.PoundsToGoal)))
		if strings.HasPrefix(s.ProgressBar, "[") {
			lines = append(lines, components.GoalBar("Progress:", s.GoalProgress, 14, tracker.ProgressSegments))
		} else {
			lines = append(lines, fmt.Sprintf("%-14s %s", "Progress:", s.ProgressBar))
		}
	}

	return cards + "\n" + components.ContentCard("Details", strings.Join(lines, "\n"), w)
}
