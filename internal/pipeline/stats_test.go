package pipeline

import (
	"testing"

	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/scenario"
)

func TestSplitPercentSumsToHundred(t *testing.T) {
	base := [3]int64{32000, 6000, 2000}
	adjustments := []scenario.PayrollPct{
		{},
		{Sal: 10},
		{Sal: -30, Ben: 45, Tax: 7},
		{Sal: 33.3, Ben: 33.3, Tax: 33.3},
		{Sal: -100},
	}
	for _, pct := range adjustments {
		adj := PayrollAdjust(base, pct)
		split := SplitPercent(adj[:])
		if Sum(adj[:]) == 0 {
			continue
		}
		total := Sum(split)
		if total < 99 || total > 101 {
			t.Fatalf("split %v of %v sums to %d, want 100±1", split, adj, total)
		}
	}
}

func TestSplitPercentZeroTotal(t *testing.T) {
	got := SplitPercent([]int64{0, 0, 0})
	for i, v := range got {
		if v != 0 {
			t.Fatalf("split[%d] = %d, want 0", i, v)
		}
	}
}

func TestAverageRounded(t *testing.T) {
	if got := AverageRounded(nil); got != 0 {
		t.Fatalf("empty average = %d", got)
	}
	if got := AverageRounded([]int64{1, 2}); got != 2 {
		t.Fatalf("average(1,2) = %d, want 2", got)
	}
}

func TestArgMax(t *testing.T) {
	if ArgMax(nil) != -1 {
		t.Fatal("ArgMax(nil) != -1")
	}
	if got := ArgMax([]int64{5200, 2100, 8000, 2500, 8000}); got != 2 {
		t.Fatalf("ArgMax = %d, want first max at 2", got)
	}
}

func TestMonthsInLossAndLastNet(t *testing.T) {
	s := model.Series{
		Labels:   []string{"a", "b", "c"},
		Revenue:  []int64{10, 5, 20},
		Expenses: []int64{5, 10, 25},
	}
	if got := MonthsInLoss(s); got != 2 {
		t.Fatalf("MonthsInLoss = %d, want 2", got)
	}
	if got := LastNet(s); got != -5 {
		t.Fatalf("LastNet = %d, want -5", got)
	}
	if got := LastNet(model.Series{}); got != 0 {
		t.Fatalf("LastNet(empty) = %d", got)
	}
}
