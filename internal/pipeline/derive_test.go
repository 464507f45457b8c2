package pipeline

import (
	"reflect"
	"testing"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/scenario"
)

func TestWindowSliceReturnsMostRecent(t *testing.T) {
	ds := baseline.Demo()
	for _, span := range scenario.Spans {
		s := WindowSlice(ds, span)
		want := span
		if want > ds.Len() {
			want = ds.Len()
		}
		if s.Len() != want || len(s.Revenue) != want || len(s.Expenses) != want {
			t.Fatalf("span %d: got %d/%d/%d entries, want %d",
				span, s.Len(), len(s.Revenue), len(s.Expenses), want)
		}
		if s.Labels[len(s.Labels)-1] != "May" {
			t.Fatalf("span %d: last label = %s, want May", span, s.Labels[len(s.Labels)-1])
		}
	}

	six := WindowSlice(ds, 6)
	if six.Labels[0] != "Dec" || six.Revenue[0] != 64000 {
		t.Fatalf("span 6 starts at %s/%d, want Dec/64000", six.Labels[0], six.Revenue[0])
	}
}

func TestWindowSliceEdges(t *testing.T) {
	ds := baseline.Demo()
	if got := WindowSlice(ds, 40).Len(); got != 12 {
		t.Fatalf("oversized span len = %d, want 12", got)
	}
	if got := WindowSlice(ds, 0).Len(); got != 0 {
		t.Fatalf("zero span len = %d, want 0", got)
	}
	if got := WindowSlice(ds, -3).Len(); got != 0 {
		t.Fatalf("negative span len = %d, want 0", got)
	}
	if got := WindowSlice(model.Dataset{}, 12).Len(); got != 0 {
		t.Fatalf("empty dataset len = %d, want 0", got)
	}
}

func TestWindowSliceDoesNotAliasDataset(t *testing.T) {
	ds := baseline.Demo()
	s := WindowSlice(ds, 12)
	s.Revenue[0] = 1
	if ds.Months[0].Revenue != 45000 {
		t.Fatal("window slice aliases dataset storage")
	}
}

func TestApplyGrowth(t *testing.T) {
	s := model.Series{Labels: []string{"a"}, Revenue: []int64{100}, Expenses: []int64{100}}

	up := ApplyGrowth(s, 10, 0)
	if up.Revenue[0] != 110 {
		t.Fatalf("+10%% revenue = %d, want 110", up.Revenue[0])
	}
	if up.Expenses[0] != 100 {
		t.Fatalf("expenses changed by revenue growth: %d", up.Expenses[0])
	}

	down := ApplyGrowth(s, -50, 0)
	if down.Revenue[0] != 50 {
		t.Fatalf("-50%% revenue = %d, want 50", down.Revenue[0])
	}

	exp := ApplyGrowth(s, 0, 25)
	if exp.Revenue[0] != 100 || exp.Expenses[0] != 125 {
		t.Fatalf("expense growth = %d/%d, want 100/125", exp.Revenue[0], exp.Expenses[0])
	}

	if s.Revenue[0] != 100 {
		t.Fatal("ApplyGrowth mutated its input")
	}
}

func TestScaleRoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		v    int64
		pct  float64
		want int64
	}{
		{5, 10, 6},   // 5.5
		{-5, 10, -6}, // -5.5
		{45000, 10, 49500},
		{600, 2.5, 615},
		{1, -150, -1}, // -0.5
		{100, 0, 100},
	}
	for _, c := range cases {
		if got := Scale(c.v, c.pct); got != c.want {
			t.Errorf("Scale(%d, %v) = %d, want %d", c.v, c.pct, got, c.want)
		}
	}
}

func TestInjectHireCost(t *testing.T) {
	base := []int64{10, 20, 30}

	got := InjectHireCost(base, 5, 1)
	if !reflect.DeepEqual(got, []int64{10, 25, 35}) {
		t.Fatalf("offset 1 = %v", got)
	}
	if !reflect.DeepEqual(InjectHireCost(base, 5, 3), base) {
		t.Fatal("offset == len should be a no-op")
	}
	if !reflect.DeepEqual(InjectHireCost(base, 5, 99), base) {
		t.Fatal("offset past len should be a no-op")
	}
	if !reflect.DeepEqual(InjectHireCost(base, 5, -2), []int64{15, 25, 35}) {
		t.Fatal("negative offset should start at month 0")
	}
	if base[0] != 10 {
		t.Fatal("InjectHireCost mutated its input")
	}
	if got := InjectHireCost(nil, 5, 0); len(got) != 0 {
		t.Fatalf("empty input = %v", got)
	}
}

func TestApplyWhatIfOrdersGrowthBeforeHire(t *testing.T) {
	s := model.Series{Labels: []string{"a", "b"}, Revenue: []int64{100, 100}, Expenses: []int64{100, 100}}
	st := scenario.Default()
	st.ExpAdjPct = 10
	st.HireCost = 50
	st.HireStartOffset = 1

	adj := ApplyWhatIf(s, st)
	if !reflect.DeepEqual(adj.Expenses, []int64{110, 160}) {
		t.Fatalf("expenses = %v, want [110 160]", adj.Expenses)
	}
}

func TestVendorAdjust(t *testing.T) {
	got := VendorAdjust([]int64{5200, 2100, 8000, 2500, 600}, 10)
	want := []int64{5720, 2310, 8800, 2750, 660}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("vendors +10%% = %v, want %v", got, want)
	}
}

func TestPayrollAdjust(t *testing.T) {
	base := [3]int64{32000, 6000, 2000}
	if got := PayrollAdjust(base, scenario.PayrollPct{}); got != base {
		t.Fatalf("zero adjustment = %v, want %v", got, base)
	}

	got := PayrollAdjust(base, scenario.PayrollPct{Sal: 10, Ben: -50, Tax: 0})
	if got != [3]int64{35200, 3000, 2000} {
		t.Fatalf("adjusted payroll = %v", got)
	}
}
