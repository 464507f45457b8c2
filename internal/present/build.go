package present

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/pipeline"
	"github.com/theirongolddev/whatif/internal/scenario"
)

// Build derives the full chart bundle for the state's current report.
// It never mutates st or ds, and equal inputs give equal bundles.
func Build(st scenario.State, ds model.Dataset) Bundle {
	var b Bundle
	switch st.Report {
	case scenario.Cash:
		b = buildCash(st, ds)
	case scenario.Vendors:
		b = buildVendors(st, ds)
	case scenario.Payroll:
		b = buildPayroll(st, ds)
	default:
		b = buildRevExp(st, ds)
	}
	b.Summary = Summary(st)
	b.ControlGroups = VisibilityFor(b.Report)
	return b
}

// BuildAll builds one bundle per report kind with the same knobs.
func BuildAll(st scenario.State, ds model.Dataset) []Bundle {
	out := make([]Bundle, 0, len(scenario.AllReports))
	for _, k := range scenario.AllReports {
		s := st
		s.Report = k
		out = append(out, Build(s, ds))
	}
	return out
}

func buildRevExp(st scenario.State, ds model.Dataset) Bundle {
	adj := pipeline.ApplyWhatIf(pipeline.WindowSlice(ds, st.Span), st)

	return Bundle{
		Report: scenario.RevExp,
		Title:  "Revenue vs Expenses",
		Chart: ChartConfig{
			Type:   ChartBar,
			Labels: adj.Labels,
			Datasets: []Dataset{
				{Label: "Revenue", Data: adj.Revenue, BackgroundColor: []string{ColorRevenue}},
				{Label: "Expenses", Data: adj.Expenses, BackgroundColor: []string{ColorExpenses}},
			},
		},
		KPIs: []KPI{
			{Label: "Avg Rev", Value: cli.FormatMoney(pipeline.AverageRounded(adj.Revenue))},
			{Label: "Avg Exp", Value: cli.FormatMoney(pipeline.AverageRounded(adj.Expenses))},
			{Label: "Last Net", Value: cli.FormatMoney(pipeline.LastNet(adj))},
		},
		Insights: []string{
			fmt.Sprintf("Months in loss: %d of %d", pipeline.MonthsInLoss(adj), adj.Len()),
		},
	}
}

func buildCash(st scenario.State, ds model.Dataset) Bundle {
	adj := pipeline.ApplyWhatIf(pipeline.WindowSlice(ds, st.Span), st)
	balances := pipeline.CashForecast(adj, ds.StartingCash)
	runway := pipeline.RunwayInfo(adj.Labels, balances)

	return Bundle{
		Report: scenario.Cash,
		Title:  "Cash Balance Forecast",
		Chart: ChartConfig{
			Type:   ChartLine,
			Labels: adj.Labels,
			Datasets: []Dataset{{
				Label:           "Cash Balance",
				Data:            balances,
				BorderColor:     ColorCash,
				BackgroundColor: []string{ColorCashFill},
				Tension:         0.3,
				Fill:            true,
			}},
		},
		KPIs: []KPI{
			{Label: "Runway", Value: runway.Value()},
		},
		Insights: []string{
			"Starting cash: " + cli.FormatMoney(ds.StartingCash),
		},
	}
}

func buildVendors(st scenario.State, ds model.Dataset) Bundle {
	names := ds.VendorNames()
	spend := pipeline.VendorAdjust(ds.VendorSpend(), st.VendorAdjPct)

	top := "none"
	if i := pipeline.ArgMax(spend); i >= 0 {
		top = fmt.Sprintf("%s (%s)", names[i], cli.FormatMoney(spend[i]))
	}

	return Bundle{
		Report: scenario.Vendors,
		Title:  "Top Vendors",
		Chart: ChartConfig{
			Type:   ChartBar,
			Labels: names,
			Datasets: []Dataset{
				{Label: "Monthly Spend ($)", Data: spend, BackgroundColor: []string{ColorVendors}},
			},
		},
		KPIs: []KPI{
			{Label: "Total Vendors", Value: cli.FormatMoney(pipeline.Sum(spend))},
			{Label: "Top", Value: top},
		},
		Insights: []string{
			fmt.Sprintf("Adjustment applied: %s across all vendors.", cli.FormatPercent(st.VendorAdjPct)),
		},
	}
}

func buildPayroll(st scenario.State, ds model.Dataset) Bundle {
	amounts := pipeline.PayrollAdjust(ds.Payroll.Amounts(), st.PayrollAdjPct)
	data := amounts[:]
	split := pipeline.SplitPercent(data)

	parts := make([]string, len(split))
	for i, p := range split {
		parts[i] = fmt.Sprintf("%d%%", p)
	}

	p := st.PayrollAdjPct
	return Bundle{
		Report: scenario.Payroll,
		Title:  "Payroll Insights",
		Chart: ChartConfig{
			Type:   ChartDoughnut,
			Labels: append([]string(nil), model.PayrollParts[:]...),
			Datasets: []Dataset{
				{Data: data, BackgroundColor: append([]string(nil), PayrollColors...)},
			},
		},
		KPIs: []KPI{
			{Label: "Total", Value: cli.FormatMoney(pipeline.Sum(data))},
			{Label: "Split", Value: strings.Join(parts, "/")},
		},
		Insights: []string{
			fmt.Sprintf("Adj → Salaries: %s, Benefits: %s, Taxes: %s",
				cli.FormatPercent(p.Sal), cli.FormatPercent(p.Ben), cli.FormatPercent(p.Tax)),
		},
	}
}
