package pipeline

import (
	"fmt"

	"github.com/theirongolddev/whatif/internal/model"
)

// CashForecast folds monthly net income into a running balance that starts
// from startingCash. It returns one balance per month.
func CashForecast(s model.Series, startingCash int64) []int64 {
	balances := make([]int64, len(s.Revenue))
	c := startingCash
	for i, r := range s.Revenue {
		var e int64
		if i < len(s.Expenses) {
			e = s.Expenses[i]
		}
		c += r - e
		balances[i] = c
	}
	return balances
}

// Runway describes when the cash balance first reaches zero or below.
type Runway struct {
	Exhausted bool   `json:"exhausted"`
	Months    int    `json:"months,omitempty"` // 1-based month count, set when Exhausted
	Label     string `json:"label,omitempty"`
	Horizon   int    `json:"horizon"` // series length the forecast covers
}

// Value is the runway figure without its "Runway:" prefix.
func (r Runway) Value() string {
	if !r.Exhausted {
		return fmt.Sprintf("> %d months", r.Horizon)
	}
	return fmt.Sprintf("~%d months (≈ %s)", r.Months, r.Label)
}

// Text renders the runway the way the KPI row shows it.
func (r Runway) Text() string {
	return "Runway: " + r.Value()
}

// RunwayInfo finds the first month whose balance is zero or below.
func RunwayInfo(labels []string, balances []int64) Runway {
	r := Runway{Horizon: len(labels)}
	for i, b := range balances {
		if b > 0 {
			continue
		}
		r.Exhausted = true
		r.Months = i + 1
		if i < len(labels) {
			r.Label = labels[i]
		}
		break
	}
	return r
}
