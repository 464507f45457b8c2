package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Share is one slice of a whole, drawn as a bar of its percentage.
type Share struct {
	Label string
	Value string  // preformatted amount
	Pct   float64 // 0-100
	Color lipgloss.Color
}

// SplitBars renders one labeled bar per share, stacked vertically.
func SplitBars(shares []Share, width int) string {
	if len(shares) == 0 {
		return ""
	}

	labelW := 0
	valueW := 0
	for _, s := range shares {
		labelW = max(labelW, lipgloss.Width(s.Label))
		valueW = max(valueW, lipgloss.Width(s.Value))
	}
	barW := width - labelW - valueW - 9
	if barW < 8 {
		barW = 8
	}

	lines := make([]string, len(shares))
	for i, s := range shares {
		lines[i] = ShareBar(s, labelW, valueW, barW)
	}
	return strings.Join(lines, "\n")
}

// ShareBar renders "Label  ████░░░  Value  42%".
func ShareBar(s Share, labelW, valueW, barW int) string {
	t := theme.Active

	frac := s.Pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(s.Color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)) +
		spaceStyle.Render("  ") +
		bar.ViewAs(frac) +
		spaceStyle.Render("  ") +
		valueStyle.Render(fmt.Sprintf("%*s", valueW, s.Value)) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", s.Pct))
}

// ColorForDelta returns green for growth, red for cuts and muted for no
// change, for tinting adjustment values.
func ColorForDelta(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct > 0:
		return t.Green
	case pct < 0:
		return t.Red
	default:
		return t.TextMuted
	}
}
