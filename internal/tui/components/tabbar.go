package components

import (
	"strings"

	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs. The first four map one-to-one onto the
// report kinds.
var Tabs = []Tab{
	{Name: "Rev/Exp", Key: '1'},
	{Name: "Cash", Key: '2'},
	{Name: "Vendors", Key: '3'},
	{Name: "Payroll", Key: '4'},
	{Name: "Chat", Key: '5'},
	{Name: "Settings", Key: '6'},
}

// tabPadding is the horizontal padding on each side of a tab label.
const tabPadding = 1

// tabLabel is the plain text of a tab; inactive tabs show their key.
func tabLabel(tab Tab, active bool) string {
	if active {
		return tab.Name
	}
	return "[" + string(tab.Key) + "]" + tab.Name
}

// TabVisualWidth is the rendered width of a tab, padding included.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(tabLabel(tab, active)) + 2*tabPadding
}

// RenderTabBar renders the tab bar with the given active index. Tabs are
// separated by a single column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceBright).
		Bold(true).
		Padding(0, tabPadding)

	nameStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	pad := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", tabPadding))

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tabLabel(tab, true))
			continue
		}
		parts[i] = pad + keyStyle.Render("["+string(tab.Key)+"]") + nameStyle.Render(tab.Name) + pad
	}

	row := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
