// Package model defines domain types for whatif baselines and derived series.
package model

// PayrollParts are the display labels for the three payroll categories,
// in the same order as Payroll.Amounts.
var PayrollParts = [3]string{"Salaries", "Benefits", "Taxes"}

// Month is one baseline month of revenue and expenses.
type Month struct {
	Label    string
	Revenue  int64
	Expenses int64
}

// Vendor is a recurring vendor with its monthly spend.
type Vendor struct {
	Name         string
	MonthlySpend int64
}

// Payroll is the fixed three-way payroll split.
type Payroll struct {
	Salaries int64
	Benefits int64
	Taxes    int64
}

// Amounts returns the payroll categories as an array ordered like PayrollParts.
func (p Payroll) Amounts() [3]int64 {
	return [3]int64{p.Salaries, p.Benefits, p.Taxes}
}

// Dataset is the full baseline the dashboard computes scenarios against.
type Dataset struct {
	Months       []Month
	Vendors      []Vendor
	Payroll      Payroll
	StartingCash int64
}

// Len returns the number of baseline months.
func (d Dataset) Len() int {
	return len(d.Months)
}

// Labels returns a fresh slice of month labels.
func (d Dataset) Labels() []string {
	out := make([]string, len(d.Months))
	for i, m := range d.Months {
		out[i] = m.Label
	}
	return out
}

// Revenue returns a fresh slice of monthly revenue.
func (d Dataset) Revenue() []int64 {
	out := make([]int64, len(d.Months))
	for i, m := range d.Months {
		out[i] = m.Revenue
	}
	return out
}

// Expenses returns a fresh slice of monthly expenses.
func (d Dataset) Expenses() []int64 {
	out := make([]int64, len(d.Months))
	for i, m := range d.Months {
		out[i] = m.Expenses
	}
	return out
}

// VendorNames returns vendor names in display order.
func (d Dataset) VendorNames() []string {
	out := make([]string, len(d.Vendors))
	for i, v := range d.Vendors {
		out[i] = v.Name
	}
	return out
}

// VendorSpend returns vendor monthly spend in display order.
func (d Dataset) VendorSpend() []int64 {
	out := make([]int64, len(d.Vendors))
	for i, v := range d.Vendors {
		out[i] = v.MonthlySpend
	}
	return out
}

// Clone returns a deep copy so callers can't alias the source slices.
func (d Dataset) Clone() Dataset {
	c := d
	c.Months = append([]Month(nil), d.Months...)
	c.Vendors = append([]Vendor(nil), d.Vendors...)
	return c
}

// Series is a windowed slice of the baseline, possibly adjusted.
type Series struct {
	Labels   []string
	Revenue  []int64
	Expenses []int64
}

// Len returns the number of months in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Net returns revenue minus expenses per month.
func (s Series) Net() []int64 {
	out := make([]int64, len(s.Revenue))
	for i := range s.Revenue {
		var e int64
		if i < len(s.Expenses) {
			e = s.Expenses[i]
		}
		out[i] = s.Revenue[i] - e
	}
	return out
}
