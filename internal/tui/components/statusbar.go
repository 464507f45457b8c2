package components

import (
	"strings"

	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the scenario summary in the middle and info on the right.
func RenderStatusBar(width int, summary, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)
	summaryStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	left := " [?]help  [q]uit  "
	right := ""
	if info != "" {
		right = info + " "
	}

	room := width - lipgloss.Width(left) - lipgloss.Width(right)
	if room < 0 {
		room = 0
	}
	mid := truncate(summary, room)
	padding := room - lipgloss.Width(mid)

	bar := style.Render(left) + summaryStyle.Render(mid) +
		style.Render(strings.Repeat(" ", padding)) + style.Render(right)
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Background(t.Surface).Render(bar)
}
