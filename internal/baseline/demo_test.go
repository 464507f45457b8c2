package baseline

import "testing"

func TestDemoShape(t *testing.T) {
	ds := Demo()
	if ds.Len() != 12 {
		t.Fatalf("months = %d, want 12", ds.Len())
	}
	if ds.Months[0].Label != "Jun" || ds.Months[11].Label != "May" {
		t.Fatalf("labels = %s..%s, want Jun..May", ds.Months[0].Label, ds.Months[11].Label)
	}
	if len(ds.Vendors) != 5 {
		t.Fatalf("vendors = %d, want 5", len(ds.Vendors))
	}
	if ds.StartingCash != 120000 {
		t.Fatalf("starting cash = %d, want 120000", ds.StartingCash)
	}
	if got := ds.Payroll.Amounts(); got != [3]int64{32000, 6000, 2000} {
		t.Fatalf("payroll = %v", got)
	}
}

func TestDemoReturnsIndependentCopies(t *testing.T) {
	a := Demo()
	a.Months[0].Revenue = 1
	a.Vendors[0].MonthlySpend = 1

	b := Demo()
	if b.Months[0].Revenue != 45000 {
		t.Fatalf("mutation leaked into store: revenue = %d", b.Months[0].Revenue)
	}
	if b.Vendors[0].MonthlySpend != 5200 {
		t.Fatalf("mutation leaked into store: vendor spend = %d", b.Vendors[0].MonthlySpend)
	}
}
