package present

import (
	"testing"

	"github.com/theirongolddev/whatif/internal/scenario"
)

func TestSummaryNoAdjustments(t *testing.T) {
	st := scenario.Default()
	if got := Summary(st); got != NoAdjustments {
		t.Fatalf("Summary = %q, want %q", got, NoAdjustments)
	}

	// Report and span are not adjustments.
	st.Report = scenario.Payroll
	st.Span = 6
	if got := Summary(st); got != NoAdjustments {
		t.Fatalf("Summary = %q, want %q", got, NoAdjustments)
	}
}

func TestSummaryOrdersEveryAdjustment(t *testing.T) {
	st := scenario.Default()
	st.RevAdjPct = 10
	st.ExpAdjPct = -5
	st.HireCost = 8000
	st.HireStartOffset = 2
	st.VendorAdjPct = 10
	st.PayrollAdjPct = scenario.PayrollPct{Sal: 3, Ben: 0, Tax: -1.5}

	want := "Revenue +10% • Expenses -5% • New hire $8,000/mo (starts in 3 mo) • Vendors +10% • Payroll adj S:3% B:0% T:-1.5%"
	if got := Summary(st); got != want {
		t.Fatalf("Summary =\n  %q\nwant\n  %q", got, want)
	}
}

func TestSummarySkipsZeroKnobs(t *testing.T) {
	st := scenario.Default()
	st.ExpAdjPct = 12.5
	st.PayrollAdjPct.Ben = 2

	want := "Expenses +12.5% • Payroll adj S:0% B:2% T:0%"
	if got := Summary(st); got != want {
		t.Fatalf("Summary = %q, want %q", got, want)
	}
}

func TestSummaryIgnoresActiveReport(t *testing.T) {
	st := scenario.Default()
	st.RevAdjPct = 10
	st.VendorAdjPct = -15

	want := "Revenue +10% • Vendors -15%"
	for _, k := range scenario.AllReports {
		st.Report = k
		if got := Summary(st); got != want {
			t.Errorf("Summary on %s = %q, want %q", k, got, want)
		}
	}
}

func TestSummaryAfterReset(t *testing.T) {
	st := scenario.Default()
	st.RevAdjPct = 10
	st.HireCost = 500
	st.Reset()
	if got := Summary(st); got != NoAdjustments {
		t.Fatalf("Summary after reset = %q", got)
	}
}

func TestVisibilityFor(t *testing.T) {
	cases := []struct {
		kind scenario.ReportKind
		want Visibility
	}{
		{scenario.RevExp, Visibility{TimeRange: true, RevExp: true}},
		{scenario.Cash, Visibility{TimeRange: true, RevExp: true}},
		{scenario.Vendors, Visibility{Vendors: true}},
		{scenario.Payroll, Visibility{Payroll: true}},
	}
	for _, c := range cases {
		if got := VisibilityFor(c.kind); got != c.want {
			t.Errorf("VisibilityFor(%s) = %+v, want %+v", c.kind, got, c.want)
		}
	}
}
