package controller

import (
	"errors"
	"testing"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"
)

type recorder struct {
	bundles []present.Bundle
}

func (r *recorder) Render(b present.Bundle) { r.bundles = append(r.bundles, b) }

func (r *recorder) last() present.Bundle { return r.bundles[len(r.bundles)-1] }

func newBound(t *testing.T) (*Panel, *Controller, *recorder) {
	t.Helper()
	p := NewPanel()
	rec := &recorder{}
	c := New(p, rec, baseline.Demo(), scenario.Default())
	c.Bind()
	return p, c, rec
}

func TestBindRendersOnceAndSyncsView(t *testing.T) {
	p, c, rec := newBound(t)

	if len(rec.bundles) != 1 {
		t.Fatalf("renders after Bind = %d, want 1", len(rec.bundles))
	}
	if got := p.Value(ReportSelect); got != "revexp" {
		t.Fatalf("reportSelect = %q", got)
	}
	if got := p.Value(TimeRange); got != "12" {
		t.Fatalf("timeRange = %q", got)
	}
	if got := p.Text(RevGrowthVal); got != "0" {
		t.Fatalf("revGrowthVal = %q", got)
	}
	if !p.Visible(CtrlRevExp) || p.Visible(CtrlVendors) || p.Visible(CtrlPayroll) {
		t.Fatal("initial visibility wrong for revexp")
	}
	if c.Renders() != 1 {
		t.Fatalf("Renders = %d", c.Renders())
	}
}

func TestInputAssignsOneFieldAndRerenders(t *testing.T) {
	p, c, rec := newBound(t)

	p.Set(RevGrowth, "10", Input)
	st := c.State()
	if st.RevAdjPct != 10 {
		t.Fatalf("RevAdjPct = %v, want 10", st.RevAdjPct)
	}
	if st.ExpAdjPct != 0 || st.HireCost != 0 {
		t.Fatalf("other fields changed: %+v", st)
	}
	if got := p.Text(RevGrowthVal); got != "10" {
		t.Fatalf("revGrowthVal = %q", got)
	}
	if len(rec.bundles) != 2 {
		t.Fatalf("renders = %d, want 2", len(rec.bundles))
	}
	if got := rec.last().Summary; got != "Revenue +10%" {
		t.Fatalf("summary = %q", got)
	}
}

func TestUnparsableValueFallsBackToZero(t *testing.T) {
	p, c, _ := newBound(t)

	p.Set(HireCost, "5000", Input)
	p.Set(HireCost, "lots", Input)
	if got := c.State().HireCost; got != 0 {
		t.Fatalf("HireCost = %d, want 0", got)
	}
	p.Set(HireStart, "", Change)
	if got := c.State().HireStartOffset; got != 0 {
		t.Fatalf("HireStartOffset = %d", got)
	}
}

func TestWrongEventDoesNothing(t *testing.T) {
	p, c, rec := newBound(t)

	if p.Set(HireStart, "3", Input) {
		t.Fatal("hireStart should not listen for input events")
	}
	if c.State().HireStartOffset != 0 || len(rec.bundles) != 1 {
		t.Fatal("unsubscribed event changed state or rendered")
	}
}

func TestReportChangeTogglesVisibility(t *testing.T) {
	p, c, rec := newBound(t)

	p.Set(ReportSelect, "vendors", Change)
	if c.State().Report != scenario.Vendors {
		t.Fatalf("report = %s", c.State().Report)
	}
	if p.Visible(CtrlTimeRange) || p.Visible(CtrlRevExp) || !p.Visible(CtrlVendors) || p.Visible(CtrlPayroll) {
		t.Fatal("visibility wrong for vendors")
	}
	if rec.last().Title != "Top Vendors" {
		t.Fatalf("title = %q", rec.last().Title)
	}

	p.Set(ReportSelect, "payroll", Change)
	if !p.Visible(CtrlPayroll) || p.Visible(CtrlVendors) {
		t.Fatal("visibility wrong for payroll")
	}
}

func TestUnknownReportKeepsCurrent(t *testing.T) {
	p, c, rec := newBound(t)

	p.Set(ReportSelect, "cash", Change)
	renders := len(rec.bundles)
	p.Set(ReportSelect, "balance-sheet", Change)

	if c.State().Report != scenario.Cash {
		t.Fatalf("report = %s, want cash", c.State().Report)
	}
	if p.Value(ReportSelect) != "cash" {
		t.Fatalf("select value = %q, want it restored to cash", p.Value(ReportSelect))
	}
	if len(rec.bundles) != renders {
		t.Fatal("unknown report triggered a render")
	}
}

func TestTimeRangeChangesSpan(t *testing.T) {
	p, c, rec := newBound(t)

	p.Set(TimeRange, "6", Change)
	if c.State().Span != 6 {
		t.Fatalf("span = %d", c.State().Span)
	}
	if got := len(rec.last().Chart.Labels); got != 6 {
		t.Fatalf("labels = %d, want 6", got)
	}
}

func TestRunRerendersWithoutChangingState(t *testing.T) {
	p, c, rec := newBound(t)
	before := c.State()

	p.Fire(RunScenario, Click)
	if c.State() != before {
		t.Fatal("run changed state")
	}
	if len(rec.bundles) != 2 {
		t.Fatalf("renders = %d, want 2", len(rec.bundles))
	}
}

func TestResetZeroesControlsAndLabels(t *testing.T) {
	p, c, rec := newBound(t)

	p.Set(ReportSelect, "payroll", Change)
	p.Set(TimeRange, "6", Change)
	p.Set(RevGrowth, "15", Input)
	p.Set(ExpGrowth, "-4", Input)
	p.Set(HireCost, "9000", Input)
	p.Set(HireStart, "2", Change)
	p.Set(VendorAdj, "8", Input)
	p.Set(PayrollSal, "3", Input)
	p.Set(PayrollBen, "2", Input)
	p.Set(PayrollTax, "1", Input)

	p.Fire(ResetScenario, Click)

	st := c.State()
	if st.HasAdjustments() {
		t.Fatalf("adjustments survived reset: %+v", st)
	}
	if st.Report != scenario.Payroll || st.Span != 6 {
		t.Fatalf("reset touched report/span: %+v", st)
	}
	for _, id := range []string{RevGrowth, ExpGrowth, HireCost, HireStart, VendorAdj, PayrollSal, PayrollBen, PayrollTax} {
		if got := p.Value(id); got != "0" {
			t.Errorf("%s = %q after reset, want 0", id, got)
		}
	}
	for _, id := range []string{RevGrowthVal, ExpGrowthVal, VendorAdjVal, PayrollSalVal, PayrollBenVal, PayrollTaxVal} {
		if got := p.Text(id); got != "0" {
			t.Errorf("%s = %q after reset, want 0", id, got)
		}
	}
	if got := rec.last().Summary; got != present.NoAdjustments {
		t.Fatalf("summary after reset = %q", got)
	}
}

func TestApplyPresetSyncsView(t *testing.T) {
	p, c, rec := newBound(t)

	preset, ok := scenario.FindPreset(scenario.BuiltinPresets(), "hiring-spree")
	if !ok {
		t.Fatal("hiring-spree preset missing")
	}
	c.ApplyPreset(preset)

	if got := p.Value(HireCost); got != "18000" {
		t.Fatalf("hireCost = %q", got)
	}
	if got := c.State().HireStartOffset; got != 2 {
		t.Fatalf("HireStartOffset = %d", got)
	}
	if rec.last().Summary == present.NoAdjustments {
		t.Fatal("preset did not show up in the summary")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	_, c, _ := newBound(t)
	st := c.State()
	st.RevAdjPct = 99
	if c.State().RevAdjPct != 0 {
		t.Fatal("State exposed internal state")
	}
}

func TestPanelFiresInRegistrationOrder(t *testing.T) {
	p := NewPanel()
	var order []int
	p.On("x", Click, func() { order = append(order, 1) })
	p.On("x", Click, func() { order = append(order, 2) })
	p.On("x", Change, func() { order = append(order, 3) })

	if !p.Fire("x", Click) {
		t.Fatal("Fire reported no handlers")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, want [1 2]", order)
	}
	if p.Fire("y", Click) {
		t.Fatal("Fire on unbound control reported handlers")
	}
}

func TestDefaultEvent(t *testing.T) {
	ev, err := DefaultEvent(HireStart)
	if err != nil || ev != Change {
		t.Fatalf("DefaultEvent(hireStart) = %q, %v", ev, err)
	}
	if _, err := DefaultEvent("nope"); !errors.Is(err, ErrUnknownControl) {
		t.Fatalf("err = %v, want ErrUnknownControl", err)
	}
	if len(Controls()) != 12 {
		t.Fatalf("Controls = %v", Controls())
	}
}

func TestParseEvent(t *testing.T) {
	if ev, err := ParseEvent(" Input "); err != nil || ev != Input {
		t.Fatalf("ParseEvent = %q, %v", ev, err)
	}
	if _, err := ParseEvent("hover"); err == nil {
		t.Fatal("expected error for hover")
	}
}

func TestNilRendererIsAllowed(t *testing.T) {
	p := NewPanel()
	c := New(p, nil, baseline.Demo(), scenario.Default())
	c.Bind()
	p.Set(VendorAdj, "5", Input)
	if c.Bundle().Report != scenario.RevExp || c.State().VendorAdjPct != 5 {
		t.Fatalf("state = %+v", c.State())
	}
}
