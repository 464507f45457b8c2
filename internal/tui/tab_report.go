package tui

import (
	"strings"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/pipeline"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/tui/components"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const knobPanelWidth = 42

// renderReportTab lays out the chart beside the scenario knobs, with KPI
// cards and insights underneath.
func (a App) renderReportTab(cw, h int) string {
	b := a.ctl.Bundle()

	chartH := h - 14
	if chartH > 16 {
		chartH = 16
	}
	if chartH < 6 {
		chartH = 6
	}

	var top string
	if a.isCompactLayout() {
		chartCard := components.ContentCard(b.Title, renderChart(b, components.CardInnerWidth(cw), chartH), cw)
		knobCard := components.FocusCard("Scenario", a.renderKnobs(cw), cw)
		top = chartCard + "\n" + knobCard
	} else {
		chartW := cw - knobPanelWidth
		chartCard := components.ContentCard(b.Title, renderChart(b, components.CardInnerWidth(chartW), chartH), chartW)
		knobCard := components.FocusCard("Scenario", a.renderKnobs(knobPanelWidth), knobPanelWidth)
		top = components.CardRow([]string{chartCard, knobCard})
	}

	t := theme.Active
	insightStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	summaryStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	var notes strings.Builder
	for _, line := range b.Insights {
		notes.WriteString(insightStyle.Render(truncStr(line, components.CardInnerWidth(cw))))
		notes.WriteString("\n")
	}
	notes.WriteString(summaryStyle.Render(truncStr(b.Summary, components.CardInnerWidth(cw))))

	parts := []string{top}
	if kpis := components.KPIRow(b.KPIs, cw); kpis != "" {
		parts = append(parts, kpis)
	}
	parts = append(parts, components.ContentCard("Insights", notes.String(), cw))
	return strings.Join(parts, "\n")
}

// renderChart draws the bundle's chart in a terminal-friendly form.
func renderChart(b present.Bundle, w, h int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(b.Chart.Labels) == 0 || len(b.Chart.Datasets) == 0 {
		return dim.Render("No data for this window.")
	}

	switch b.Report {
	case scenario.RevExp:
		colors := []lipgloss.Color{t.Revenue(), t.Expenses()}
		series := make([]components.Series, 0, len(b.Chart.Datasets))
		for i, ds := range b.Chart.Datasets {
			series = append(series, components.Series{
				Name:   ds.Label,
				Values: floats(ds.Data),
				Color:  colors[i%len(colors)],
			})
		}
		return components.Legend(series) + "\n" +
			components.GroupedBarChart(series, b.Chart.Labels, w, h-2)

	case scenario.Cash:
		ds := b.Chart.Datasets[0]
		return components.Legend([]components.Series{{Name: ds.Label, Color: t.Cash()}}) + "\n" +
			components.LineChart(floats(ds.Data), b.Chart.Labels, t.Cash(), w, h-2)

	case scenario.Vendors:
		ds := b.Chart.Datasets[0]
		return components.HorizontalBars(b.Chart.Labels, floats(ds.Data), t.Vendors(), w,
			func(v float64) string { return cli.FormatMoney(int64(v)) })

	case scenario.Payroll:
		data := b.Chart.Datasets[0].Data
		split := pipeline.SplitPercent(data)
		colors := t.Payroll()
		shares := make([]components.Share, len(data))
		for i, v := range data {
			label := ""
			if i < len(b.Chart.Labels) {
				label = b.Chart.Labels[i]
			}
			shares[i] = components.Share{
				Label: label,
				Value: cli.FormatMoney(v),
				Pct:   float64(split[i]),
				Color: colors[i%len(colors)],
			}
		}
		return components.SplitBars(shares, w)
	}
	return ""
}

func floats(values []int64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
