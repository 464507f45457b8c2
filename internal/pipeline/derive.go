// Package pipeline turns a baseline dataset and a scenario into display-ready series.
package pipeline

import (
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/scenario"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Scale multiplies v by (1 + pct/100) and rounds to the nearest integer,
// ties away from zero.
func Scale(v int64, pct float64) int64 {
	if pct == 0 {
		return v
	}
	factor := hundred.Add(decimal.NewFromFloat(pct))
	return decimal.NewFromInt(v).Mul(factor).Div(hundred).Round(0).IntPart()
}

func scaleAll(values []int64, pct float64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = Scale(v, pct)
	}
	return out
}

// WindowSlice returns the most recent span months of the baseline in
// chronological order. Spans longer than the baseline return everything;
// non-positive spans return an empty series.
func WindowSlice(ds model.Dataset, span int) model.Series {
	n := ds.Len()
	start := n - span
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}

	labels := ds.Labels()
	revenue := ds.Revenue()
	expenses := ds.Expenses()
	return model.Series{
		Labels:   labels[start:],
		Revenue:  revenue[start:],
		Expenses: expenses[start:],
	}
}

// ApplyGrowth scales revenue and expenses independently by their own percentage.
func ApplyGrowth(s model.Series, revPct, expPct float64) model.Series {
	return model.Series{
		Labels:   append([]string(nil), s.Labels...),
		Revenue:  scaleAll(s.Revenue, revPct),
		Expenses: scaleAll(s.Expenses, expPct),
	}
}

// InjectHireCost adds hireCost to every month from startOffset to the end.
// A negative offset starts at the first month; an offset past the end is a no-op.
func InjectHireCost(expenses []int64, hireCost int64, startOffset int) []int64 {
	out := append([]int64(nil), expenses...)
	if startOffset < 0 {
		startOffset = 0
	}
	for i := startOffset; i < len(out); i++ {
		out[i] += hireCost
	}
	return out
}

// ApplyWhatIf applies the state's growth knobs and then the hire cost.
func ApplyWhatIf(s model.Series, st scenario.State) model.Series {
	adj := ApplyGrowth(s, st.RevAdjPct, st.ExpAdjPct)
	adj.Expenses = InjectHireCost(adj.Expenses, st.HireCost, st.HireStartOffset)
	return adj
}

// VendorAdjust scales every vendor's spend by pct.
func VendorAdjust(spend []int64, pct float64) []int64 {
	return scaleAll(spend, pct)
}

// PayrollAdjust scales salaries, benefits and taxes by their own percentages.
func PayrollAdjust(amounts [3]int64, pct scenario.PayrollPct) [3]int64 {
	return [3]int64{
		Scale(amounts[0], pct.Sal),
		Scale(amounts[1], pct.Ben),
		Scale(amounts[2], pct.Tax),
	}
}
