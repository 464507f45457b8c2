package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one named run of values drawn in a single color.
type Series struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values. Negative values sit on
// the floor.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-2))
		if idx < 0 {
			idx = 0
		}
		if idx > len(blocks)-2 {
			idx = len(blocks) - 2
		}
		buf.WriteRune(blocks[idx+1])
	}
	return style.Render(buf.String())
}

// yAxis is the tick layout shared by the bar charts.
type yAxis struct {
	ceiling float64
	rows    int
	labelW  int
	labels  map[int]string
}

func newYAxis(maxVal float64, height int) yAxis {
	if maxVal <= 0 {
		maxVal = 1
	}

	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}

	ax := yAxis{
		ceiling: ceiling,
		rows:    rowsPerTick * numIntervals,
		labels:  make(map[int]string),
	}
	ax.labelW = len(moneyLabel(ceiling)) + 1
	if ax.labelW < 5 {
		ax.labelW = 5
	}
	for i := 1; i <= numIntervals; i++ {
		ax.labels[i*rowsPerTick] = moneyLabel(tickStep * float64(i))
	}
	return ax
}

// cell returns the block drawn for value v in the row spanning
// (bottom, top].
func cell(v, bottom, top float64) rune {
	switch {
	case v >= top:
		return '█'
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		if idx > 8 {
			idx = 8
		}
		if idx < 1 {
			idx = 1
		}
		return blocks[idx]
	default:
		return ' '
	}
}

// BarChart renders a single-series bar chart with a y-axis and x labels.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	return GroupedBarChart([]Series{{Values: values, Color: color}}, labels, width, height)
}

// GroupedBarChart draws one cluster of bars per label, one bar per series.
// Values below zero are drawn as empty bars.
func GroupedBarChart(series []Series, labels []string, width, height int) string {
	n := 0
	for _, s := range series {
		if len(s.Values) > n {
			n = len(s.Values)
		}
	}
	if n == 0 || len(series) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(series[0].Values, series[0].Color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	ax := newYAxis(maxVal, height)

	chartW := width - ax.labelW - 1
	if chartW < 5 {
		chartW = 5
	}

	k := len(series)
	gap := 1
	if n == 1 {
		gap = 0
	}
	barW := (chartW - (n-1)*gap) / (n * k)
	if barW < 1 {
		barW = 1
	}
	maxBar := 6
	if k > 1 {
		maxBar = 3
	}
	if barW > maxBar {
		barW = maxBar
	}
	groupW := barW * k
	axisLen := n*groupW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	styles := make([]lipgloss.Style, k)
	for i, s := range series {
		styles[i] = lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface)
	}

	var b strings.Builder
	for row := ax.rows; row >= 1; row-- {
		top := ax.ceiling * float64(row) / float64(ax.rows)
		bottom := ax.ceiling * float64(row-1) / float64(ax.rows)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", ax.labelW, ax.labels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i := 0; i < n; i++ {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			for j, s := range series {
				v := 0.0
				if i < len(s.Values) {
					v = s.Values[i]
				}
				b.WriteString(styles[j].Render(strings.Repeat(string(cell(v, bottom, top)), barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", ax.labelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n {
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i * (groupW + gap)
		}
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", ax.labelW+1)))
		b.WriteString(axisStyle.Render(axisLabels(labels, positions, axisLen)))
	}

	return b.String()
}

// LineChart plots values left to right across width. The y range always
// includes zero, and a zero rule is drawn when values go negative.
func LineChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	labelW := max(len(moneyLabel(hi)), len(moneyLabel(lo))) + 1
	plotW := width - labelW - 1
	if plotW < 5 {
		plotW = 5
	}

	rowOf := func(v float64) int {
		return int(math.Round((v - lo) / (hi - lo) * float64(height-1)))
	}
	colOf := func(i int) int {
		if n == 1 {
			return 0
		}
		return i * (plotW - 1) / (n - 1)
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotW))
	}
	zero := rowOf(0)
	if lo < 0 {
		for c := range grid[zero] {
			grid[zero][c] = '─'
		}
	}

	for i := 0; i < n-1; i++ {
		c0, c1 := colOf(i), colOf(i+1)
		for c := c0 + 1; c < c1; c++ {
			frac := float64(c-c0) / float64(c1-c0)
			v := values[i] + (values[i+1]-values[i])*frac
			grid[rowOf(v)][c] = '·'
		}
	}
	positions := make([]int, n)
	for i, v := range values {
		positions[i] = colOf(i)
		grid[rowOf(v)][positions[i]] = '●'
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	lineStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r := height - 1; r >= 0; r-- {
		label := ""
		switch r {
		case height - 1:
			label = moneyLabel(hi)
		case 0:
			label = moneyLabel(lo)
		case zero:
			label = "0"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", labelW, label)))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(lineStyle.Render(string(grid[r])))
		if r > 0 {
			b.WriteString("\n")
		}
	}

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", labelW+1)))
		b.WriteString(axisStyle.Render(axisLabels(labels, positions, plotW)))
	}
	return b.String()
}

// HorizontalBars draws one labeled bar per value, longest for the maximum.
// format renders the amount printed after each bar.
func HorizontalBars(labels []string, values []float64, color lipgloss.Color, width int, format func(float64) string) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	labelW, valueW := 0, 0
	peak := 0.0
	for i, v := range values {
		if i < len(labels) {
			labelW = max(labelW, lipgloss.Width(labels[i]))
		}
		valueW = max(valueW, lipgloss.Width(format(v)))
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}
	barW := width - labelW - valueW - 4
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, len(values))
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		filled := 0
		if v > 0 {
			filled = int(math.Round(v / peak * float64(barW)))
		}
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
			blank.Render("  ") +
			barStyle.Render(strings.Repeat("█", filled)) +
			blank.Render(strings.Repeat(" ", barW-filled)) +
			blank.Render("  ") +
			valueStyle.Render(fmt.Sprintf("%*s", valueW, format(v)))
	}
	return strings.Join(lines, "\n")
}

// Legend renders "■ Name" swatches for each series.
func Legend(series []Series) string {
	t := theme.Active
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	sep := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	parts := make([]string, 0, len(series))
	for _, s := range series {
		swatch := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("■")
		parts = append(parts, swatch+text.Render(" "+s.Name))
	}
	return strings.Join(parts, sep)
}

// axisLabels lays labels out under their column positions, skipping any
// that would collide with the previous one. The last label wins a
// collision with its neighbour.
func axisLabels(labels []string, positions []int, axisLen int) string {
	n := len(labels)
	buf := []rune(strings.Repeat(" ", axisLen))

	place := func(i, lastEnd int) (int, bool) {
		lbl := []rune(labels[i])
		pos := positions[i]
		end := pos + len(lbl)
		if end > axisLen {
			pos = axisLen - len(lbl)
			end = axisLen
		}
		if pos < 0 || pos <= lastEnd {
			return lastEnd, false
		}
		copy(buf[pos:end], lbl)
		return end, true
	}

	lastEnd := -1
	var ends []int
	for i := 0; i < n-1; i++ {
		if end, ok := place(i, lastEnd); ok {
			ends = append(ends, end)
			lastEnd = end
		}
	}
	if n > 0 {
		if _, ok := place(n-1, lastEnd); !ok && len(ends) > 0 {
			// Drop the previous label to make room for the last one.
			prevEnd := ends[len(ends)-1]
			j := prevEnd - 1
			for j >= 0 && buf[j] != ' ' {
				buf[j] = ' '
				j--
			}
			lastEnd = j
			place(n-1, lastEnd)
		}
	}

	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// moneyLabel formats an axis value as "$50k", "-$1.2M" and so on.
func moneyLabel(v float64) string {
	if v < 0 {
		return "-" + moneyLabel(-v)
	}
	return "$" + formatChartLabel(v)
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
