// Package baseline holds the built-in demo financials.
package baseline

import "github.com/theirongolddev/whatif/internal/model"

// StartingCash is the demo opening cash balance.
const StartingCash int64 = 120000

var (
	demoLabels   = []string{"Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar", "Apr", "May"}
	demoRevenue  = []int64{45000, 52000, 48000, 60000, 58000, 61000, 64000, 63000, 65000, 67000, 68000, 70000}
	demoExpenses = []int64{38000, 40000, 42000, 45000, 50000, 51000, 52000, 54000, 55000, 56000, 57000, 59000}

	demoVendors = []model.Vendor{
		{Name: "AWS", MonthlySpend: 5200},
		{Name: "Salesforce", MonthlySpend: 2100},
		{Name: "Office Lease", MonthlySpend: 8000},
		{Name: "Insurance", MonthlySpend: 2500},
		{Name: "Google Workspace", MonthlySpend: 600},
	}

	demoPayroll = model.Payroll{Salaries: 32000, Benefits: 6000, Taxes: 2000}
)

// Demo returns a fresh copy of the twelve-month demo dataset.
func Demo() model.Dataset {
	months := make([]model.Month, len(demoLabels))
	for i, label := range demoLabels {
		months[i] = model.Month{
			Label:    label,
			Revenue:  demoRevenue[i],
			Expenses: demoExpenses[i],
		}
	}

	return model.Dataset{
		Months:       months,
		Vendors:      append([]model.Vendor(nil), demoVendors...),
		Payroll:      demoPayroll,
		StartingCash: StartingCash,
	}
}
