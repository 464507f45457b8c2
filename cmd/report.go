package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/pipeline"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"

	"github.com/spf13/cobra"
)

// scenarioFlags are the knob flags shared by report and export.
type scenarioFlags struct {
	report    string
	span      int
	rev       float64
	exp       float64
	hire      int64
	hireStart int
	vendors   float64
	sal       float64
	ben       float64
	tax       float64
	preset    string
}

var reportFlags scenarioFlags

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print one report for a scenario",
	Example: `  whatif report --report cash --rev 10 --hire 8000 --hire-start 3
  whatif report --report payroll --preset lean --tax -2`,
	RunE: runReport,
}

func init() {
	reportFlags.register(reportCmd)
	rootCmd.AddCommand(reportCmd)
}

func (f *scenarioFlags) register(c *cobra.Command) {
	fs := c.Flags()
	fs.StringVar(&f.report, "report", "", "Report: revexp, cash, vendors or payroll (default from config)")
	fs.IntVar(&f.span, "span", scenario.DefaultSpan, "Months shown by timeline reports")
	fs.Float64Var(&f.rev, "rev", 0, "Revenue growth %")
	fs.Float64Var(&f.exp, "exp", 0, "Expense growth %")
	fs.Int64Var(&f.hire, "hire", 0, "New hire cost per month")
	fs.IntVar(&f.hireStart, "hire-start", 0, "Months before the hire starts")
	fs.Float64Var(&f.vendors, "vendors", 0, "Vendor spend adjustment %")
	fs.Float64Var(&f.sal, "sal", 0, "Salaries adjustment %")
	fs.Float64Var(&f.ben, "ben", 0, "Benefits adjustment %")
	fs.Float64Var(&f.tax, "tax", 0, "Payroll taxes adjustment %")
	fs.StringVar(&f.preset, "preset", "", "Apply a named preset before the other knobs")
}

// apply layers the preset onto st, then every knob flag set on the command
// line. Unset flags leave the state alone.
func (f *scenarioFlags) apply(c *cobra.Command, presets []scenario.Preset, st *scenario.State) error {
	fs := c.Flags()

	if f.report != "" {
		kind, err := scenario.ParseReportKind(f.report)
		if err != nil {
			return err
		}
		st.Report = kind
	}
	if fs.Changed("span") {
		st.Span = f.span
	}

	if f.preset != "" {
		p, ok := scenario.FindPreset(presets, f.preset)
		if !ok {
			return fmt.Errorf("unknown preset %q (see `whatif presets`)", f.preset)
		}
		p.Apply(st)
	}

	if fs.Changed("rev") {
		st.RevAdjPct = f.rev
	}
	if fs.Changed("exp") {
		st.ExpAdjPct = f.exp
	}
	if fs.Changed("hire") {
		st.HireCost = f.hire
	}
	if fs.Changed("hire-start") {
		st.HireStartOffset = f.hireStart
	}
	if fs.Changed("vendors") {
		st.VendorAdjPct = f.vendors
	}
	if fs.Changed("sal") {
		st.PayrollAdjPct.Sal = f.sal
	}
	if fs.Changed("ben") {
		st.PayrollAdjPct.Ben = f.ben
	}
	if fs.Changed("tax") {
		st.PayrollAdjPct.Tax = f.tax
	}
	return nil
}

func runReport(c *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	st := s.initial
	if err := reportFlags.apply(c, s.presets, &st); err != nil {
		return err
	}

	b := present.Build(st, s.data)

	fmt.Println()
	fmt.Println(cli.RenderTitle(reportTitle(b, st)))
	fmt.Println()
	fmt.Print(renderBundle(b))
	return nil
}

func reportTitle(b present.Bundle, st scenario.State) string {
	title := strings.ToUpper(b.Title)
	if b.Report.UsesTimeline() {
		title += fmt.Sprintf("  Last %d mo", st.Span)
	}
	return title
}

// renderBundle prints the chart data, KPIs, insights and scenario summary
// of one bundle.
func renderBundle(b present.Bundle) string {
	var out strings.Builder

	if len(b.Chart.Labels) == 0 || len(b.Chart.Datasets) == 0 {
		out.WriteString("  No data for this window.\n")
	} else {
		switch b.Report {
		case scenario.Vendors:
			out.WriteString(renderBars(b.Chart.Labels, b.Chart.Datasets[0].Data, nil))
		case scenario.Payroll:
			data := b.Chart.Datasets[0].Data
			out.WriteString(renderBars(b.Chart.Labels, data, pipeline.SplitPercent(data)))
		default:
			out.WriteString(cli.RenderTable(chartTable(b)))
			out.WriteString(trendLine(b))
		}
	}
	out.WriteString("\n")

	if len(b.KPIs) > 0 {
		rows := make([][]string, len(b.KPIs))
		for i, k := range b.KPIs {
			rows[i] = []string{k.Label, k.Value}
		}
		out.WriteString(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))
		out.WriteString("\n")
	}

	for _, line := range b.Insights {
		fmt.Fprintf(&out, "  %s\n", line)
	}
	fmt.Fprintf(&out, "  Scenario: %s\n", b.Summary)
	return out.String()
}

// chartTable lays the timeline datasets out as money columns. Revenue vs
// expenses also gets a net column.
func chartTable(b present.Bundle) cli.Table {
	t := cli.Table{Headers: []string{"Month"}}
	for _, ds := range b.Chart.Datasets {
		t.Headers = append(t.Headers, ds.Label)
	}
	withNet := b.Report == scenario.RevExp && len(b.Chart.Datasets) == 2
	if withNet {
		t.Headers = append(t.Headers, "Net")
	}

	for i, label := range b.Chart.Labels {
		row := []string{label}
		for _, ds := range b.Chart.Datasets {
			row = append(row, cli.FormatMoney(at(ds.Data, i)))
		}
		if withNet {
			row = append(row, cli.FormatMoney(at(b.Chart.Datasets[0].Data, i)-at(b.Chart.Datasets[1].Data, i)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func trendLine(b present.Bundle) string {
	var values []float64
	switch b.Report {
	case scenario.Cash:
		for _, v := range b.Chart.Datasets[0].Data {
			values = append(values, float64(v))
		}
	case scenario.RevExp:
		if len(b.Chart.Datasets) < 2 {
			return ""
		}
		for i := range b.Chart.Labels {
			values = append(values, float64(at(b.Chart.Datasets[0].Data, i)-at(b.Chart.Datasets[1].Data, i)))
		}
	default:
		return ""
	}
	return fmt.Sprintf("  Trend  %s\n", cli.RenderSparkline(values))
}

// renderBars draws one bar per label. pcts, when given, is appended to
// each value.
func renderBars(labels []string, data, pcts []int64) string {
	labelW := 0
	var peak int64
	for i, v := range data {
		if i < len(labels) {
			labelW = max(labelW, len(labels[i]))
		}
		peak = max(peak, v)
	}

	var b strings.Builder
	for i, v := range data {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		text := cli.FormatMoney(v)
		if i < len(pcts) {
			text += fmt.Sprintf("  (%d%%)", pcts[i])
		}
		b.WriteString(cli.RenderHorizontalBar(label, labelW, float64(v), float64(peak), 30, text))
		b.WriteString("\n")
	}
	return b.String()
}

func at(values []int64, i int) int64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
