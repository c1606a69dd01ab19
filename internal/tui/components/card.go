// Package components provides reusable widgets for the wtrack menu.
package components

import (
	"strings"

	"github.com/theirongolddev/wtrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// frame is the rounded border shared by all cards. outerWidth includes the
// border; content never shrinks below 10 columns.
func frame(outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)
}

// MetricCard renders a label over a bold value, with an optional dim delta
// line underneath.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active
	lines := []string{
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label),
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value),
	}
	if m.Delta != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Delta))
	}
	return frame(outerWidth).Render(strings.Join(lines, "\n"))
}

// Metric is one labeled value for a MetricCardRow.
type Metric struct {
	Label, Value, Delta string
}

// MetricCardRow lays out one card per metric so the row spans totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders body in a card, under title when one is given.
func ContentCard(title, body string, outerWidth int) string {
	if title != "" {
		heading := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true)
		body = heading.Render(title) + "\n" + body
	}
	return frame(outerWidth).Render(body)
}
