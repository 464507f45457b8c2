package cmd

import (
	"strings"
	"testing"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

func parseScenarioFlags(t *testing.T, args ...string) (*cobra.Command, *scenarioFlags) {
	t.Helper()
	f := &scenarioFlags{}
	c := &cobra.Command{Use: "test"}
	f.register(c)
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return c, f
}

func TestScenarioFlagsOnlySetFlagsApply(t *testing.T) {
	c, f := parseScenarioFlags(t, "--rev", "10", "--hire", "8000", "--hire-start", "3")
	st := scenario.Default()
	st.VendorAdjPct = 7

	if err := f.apply(c, scenario.BuiltinPresets(), &st); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if st.RevAdjPct != 10 || st.HireCost != 8000 || st.HireStartOffset != 3 {
		t.Fatalf("state = %+v", st)
	}
	if st.VendorAdjPct != 7 || st.Span != scenario.DefaultSpan {
		t.Fatalf("unset flags changed state: %+v", st)
	}
}

func TestScenarioFlagsPresetThenOverride(t *testing.T) {
	c, f := parseScenarioFlags(t, "--preset", "lean", "--vendors", "-20", "--report", "vendors", "--span", "6")
	st := scenario.Default()

	if err := f.apply(c, scenario.BuiltinPresets(), &st); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if st.ExpAdjPct != -5 || st.PayrollAdjPct.Sal != -5 {
		t.Fatalf("preset not applied: %+v", st)
	}
	if st.VendorAdjPct != -20 {
		t.Fatalf("VendorAdjPct = %v, want -20", st.VendorAdjPct)
	}
	if st.Report != scenario.Vendors || st.Span != 6 {
		t.Fatalf("report = %s span = %d", st.Report, st.Span)
	}
}

func TestScenarioFlagsErrors(t *testing.T) {
	c, f := parseScenarioFlags(t, "--preset", "moonshot")
	st := scenario.Default()
	if err := f.apply(c, scenario.BuiltinPresets(), &st); err == nil {
		t.Fatal("expected unknown preset error")
	}

	c, f = parseScenarioFlags(t, "--report", "balance")
	if err := f.apply(c, nil, &st); err == nil {
		t.Fatal("expected unknown report error")
	}
}

func TestRenderBundleRevExp(t *testing.T) {
	st := scenario.Default()
	st.Span = 6
	st.RevAdjPct = 10
	b := present.Build(st, baseline.Demo())

	out := ansi.Strip(renderBundle(b))
	for _, want := range []string{"Month", "Revenue", "Expenses", "Net", "Trend", "Avg Rev", "Scenario: Revenue +10%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if got := reportTitle(b, st); got != "REVENUE VS EXPENSES  Last 6 mo" {
		t.Fatalf("title = %q", got)
	}
}

func TestRenderBundlePayrollShowsSplit(t *testing.T) {
	st := scenario.Default()
	st.Report = scenario.Payroll
	b := present.Build(st, baseline.Demo())

	out := ansi.Strip(renderBundle(b))
	if !strings.Contains(out, "Salaries") || !strings.Contains(out, "%)") {
		t.Fatalf("payroll output:\n%s", out)
	}
	if strings.Contains(reportTitle(b, st), "Last") {
		t.Fatal("payroll title should not mention a span")
	}
}

func TestRenderBundleEmptyWindow(t *testing.T) {
	st := scenario.Default()
	st.Span = 0
	out := renderBundle(present.Build(st, baseline.Demo()))
	if !strings.Contains(out, "No data for this window.") {
		t.Fatalf("output:\n%s", out)
	}
}
