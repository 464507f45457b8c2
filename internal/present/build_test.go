package present

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/scenario"
)

func stateFor(k scenario.ReportKind) scenario.State {
	st := scenario.Default()
	st.Report = k
	return st
}

func TestBuildIsIdempotent(t *testing.T) {
	ds := baseline.Demo()
	st := scenario.Default()
	st.RevAdjPct = 7.5
	st.HireCost = 9000
	st.HireStartOffset = 3
	st.VendorAdjPct = -12
	st.PayrollAdjPct = scenario.PayrollPct{Sal: 4, Tax: 1.5}

	for _, k := range scenario.AllReports {
		st.Report = k
		first := Build(st, ds)
		second := Build(st, ds)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: bundles differ between calls", k)
		}

		a, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("%s: marshal: %v", k, err)
		}
		b, _ := json.Marshal(second)
		if !bytes.Equal(a, b) {
			t.Fatalf("%s: JSON differs between calls", k)
		}
	}
}

func TestBuildDoesNotMutateDataset(t *testing.T) {
	ds := baseline.Demo()
	before := ds.Clone()
	st := scenario.Default()
	st.RevAdjPct = 50
	st.HireCost = 1000

	for _, k := range scenario.AllReports {
		st.Report = k
		b := Build(st, ds)
		for i := range b.Chart.Datasets {
			for j := range b.Chart.Datasets[i].Data {
				b.Chart.Datasets[i].Data[j] = -1
			}
		}
		for i := range b.Chart.Labels {
			b.Chart.Labels[i] = "x"
		}
	}
	if !reflect.DeepEqual(ds, before) {
		t.Fatal("Build or bundle edits leaked into the dataset")
	}
	if model.PayrollParts[0] != "Salaries" {
		t.Fatal("bundle labels alias PayrollParts")
	}
}

func TestBuildRevExp(t *testing.T) {
	b := Build(stateFor(scenario.RevExp), baseline.Demo())

	if b.Title != "Revenue vs Expenses" || b.Chart.Type != ChartBar {
		t.Fatalf("title/type = %q/%q", b.Title, b.Chart.Type)
	}
	if len(b.Chart.Labels) != 12 || len(b.Chart.Datasets) != 2 {
		t.Fatalf("labels=%d datasets=%d", len(b.Chart.Labels), len(b.Chart.Datasets))
	}
	if b.Chart.Datasets[0].BackgroundColor[0] != ColorRevenue || b.Chart.Datasets[1].BackgroundColor[0] != ColorExpenses {
		t.Fatal("unexpected rev/exp colors")
	}

	want := []KPI{
		{Label: "Avg Rev", Value: "$60,083"},
		{Label: "Avg Exp", Value: "$49,917"},
		{Label: "Last Net", Value: "$11,000"},
	}
	if !reflect.DeepEqual(b.KPIs, want) {
		t.Fatalf("kpis = %+v, want %+v", b.KPIs, want)
	}
	if got := b.Insights[0]; got != "Months in loss: 0 of 12" {
		t.Fatalf("insight = %q", got)
	}
	if b.Summary != NoAdjustments {
		t.Fatalf("summary = %q", b.Summary)
	}
	if !b.ControlGroups.TimeRange || !b.ControlGroups.RevExp || b.ControlGroups.Vendors || b.ControlGroups.Payroll {
		t.Fatalf("visibility = %+v", b.ControlGroups)
	}
}

func TestBuildRevExpSixMonthsWithLoss(t *testing.T) {
	st := stateFor(scenario.RevExp)
	st.Span = 6
	st.ExpAdjPct = 30

	b := Build(st, baseline.Demo())
	if len(b.Chart.Labels) != 6 {
		t.Fatalf("labels = %d, want 6", len(b.Chart.Labels))
	}
	// Dec..May expenses * 1.3 all exceed revenue.
	if got := b.Insights[0]; got != "Months in loss: 6 of 6" {
		t.Fatalf("insight = %q", got)
	}
}

func TestBuildCash(t *testing.T) {
	b := Build(stateFor(scenario.Cash), baseline.Demo())

	if b.Title != "Cash Balance Forecast" || b.Chart.Type != ChartLine {
		t.Fatalf("title/type = %q/%q", b.Title, b.Chart.Type)
	}
	ds := b.Chart.Datasets[0]
	if ds.Label != "Cash Balance" || ds.BorderColor != ColorCash || ds.Tension != 0.3 || !ds.Fill {
		t.Fatalf("cash dataset = %+v", ds)
	}
	if ds.Data[0] != 127000 || ds.Data[11] != 242000 {
		t.Fatalf("balances = %v", ds.Data)
	}
	if got := b.KPIs[0].Text(); got != "Runway: > 12 months" {
		t.Fatalf("runway = %q", got)
	}
	if got := b.Insights[0]; got != "Starting cash: $120,000" {
		t.Fatalf("insight = %q", got)
	}
}

func TestBuildCashRunwayExhausted(t *testing.T) {
	st := stateFor(scenario.Cash)
	st.HireCost = 80000

	b := Build(st, baseline.Demo())
	// Jun: 120000 + 45000 - 118000 = 47000; Jul: 47000 + 52000 - 120000 = -21000.
	if got := b.KPIs[0].Text(); got != "Runway: ~2 months (≈ Jul)" {
		t.Fatalf("runway = %q", got)
	}
}

func TestBuildVendors(t *testing.T) {
	st := stateFor(scenario.Vendors)
	st.VendorAdjPct = 10

	b := Build(st, baseline.Demo())
	if b.Title != "Top Vendors" || b.Chart.Type != ChartBar {
		t.Fatalf("title/type = %q/%q", b.Title, b.Chart.Type)
	}
	if b.Chart.Datasets[0].Label != "Monthly Spend ($)" {
		t.Fatalf("dataset label = %q", b.Chart.Datasets[0].Label)
	}
	want := []KPI{
		{Label: "Total Vendors", Value: "$20,240"},
		{Label: "Top", Value: "Office Lease ($8,800)"},
	}
	if !reflect.DeepEqual(b.KPIs, want) {
		t.Fatalf("kpis = %+v", b.KPIs)
	}
	if got := b.Insights[0]; got != "Adjustment applied: 10% across all vendors." {
		t.Fatalf("insight = %q", got)
	}
	if !b.ControlGroups.Vendors || b.ControlGroups.TimeRange {
		t.Fatalf("visibility = %+v", b.ControlGroups)
	}
}

func TestBuildVendorsEmpty(t *testing.T) {
	b := Build(stateFor(scenario.Vendors), model.Dataset{})
	if b.KPIs[1].Value != "none" || b.KPIs[0].Value != "$0" {
		t.Fatalf("empty vendor kpis = %+v", b.KPIs)
	}
}

func TestBuildPayroll(t *testing.T) {
	b := Build(stateFor(scenario.Payroll), baseline.Demo())

	if b.Title != "Payroll Insights" || b.Chart.Type != ChartDoughnut {
		t.Fatalf("title/type = %q/%q", b.Title, b.Chart.Type)
	}
	if !reflect.DeepEqual(b.Chart.Datasets[0].BackgroundColor, PayrollColors) {
		t.Fatalf("colors = %v", b.Chart.Datasets[0].BackgroundColor)
	}
	want := []KPI{
		{Label: "Total", Value: "$40,000"},
		{Label: "Split", Value: "80%/15%/5%"},
	}
	if !reflect.DeepEqual(b.KPIs, want) {
		t.Fatalf("kpis = %+v", b.KPIs)
	}
	if got := b.Insights[0]; got != "Adj → Salaries: 0%, Benefits: 0%, Taxes: 0%" {
		t.Fatalf("insight = %q", got)
	}
}

func TestBuildPayrollZeroTotal(t *testing.T) {
	st := stateFor(scenario.Payroll)
	st.PayrollAdjPct = scenario.PayrollPct{Sal: -100, Ben: -100, Tax: -100}

	b := Build(st, baseline.Demo())
	if got := b.KPIs[1].Value; got != "0%/0%/0%" {
		t.Fatalf("split = %q", got)
	}
}

func TestBuildEmptyTimeline(t *testing.T) {
	for _, k := range []scenario.ReportKind{scenario.RevExp, scenario.Cash} {
		b := Build(stateFor(k), model.Dataset{})
		if len(b.Chart.Labels) != 0 {
			t.Fatalf("%s: labels = %v", k, b.Chart.Labels)
		}
		if strings.Contains(strings.Join(b.Insights, " "), "NaN") {
			t.Fatalf("%s: insight has NaN: %v", k, b.Insights)
		}
	}
}

func TestBuildAllCoversEveryReport(t *testing.T) {
	bundles := BuildAll(scenario.Default(), baseline.Demo())
	if len(bundles) != len(scenario.AllReports) {
		t.Fatalf("got %d bundles", len(bundles))
	}
	for i, k := range scenario.AllReports {
		if bundles[i].Report != k {
			t.Fatalf("bundle %d is %s, want %s", i, bundles[i].Report, k)
		}
	}
}
