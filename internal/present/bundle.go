// Package present maps a scenario onto chart configurations, KPIs and
// insight text for whichever surface draws them.
package present

import "github.com/theirongolddev/whatif/internal/scenario"

// ChartType names the browser chart kinds a bundle can ask for.
type ChartType string

const (
	ChartBar      ChartType = "bar"
	ChartLine     ChartType = "line"
	ChartDoughnut ChartType = "doughnut"
)

// Chart colors.
const (
	ColorRevenue  = "#2563eb"
	ColorExpenses = "#ef4444"
	ColorCash     = "#10b981"
	ColorCashFill = "rgba(16,185,129,0.2)"
	ColorVendors  = "#f59e0b"
)

// PayrollColors color the salaries, benefits and taxes slices.
var PayrollColors = []string{"#2563eb", "#10b981", "#f43f5e"}

// ChartConfig is the payload a chart library needs to draw one chart.
type ChartConfig struct {
	Type     ChartType `json:"type"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single series inside a chart.
type Dataset struct {
	Label           string   `json:"label,omitempty"`
	Data            []int64  `json:"data"`
	BackgroundColor []string `json:"backgroundColor,omitempty"`
	BorderColor     string   `json:"borderColor,omitempty"`
	Tension         float64  `json:"tension,omitempty"`
	Fill            bool     `json:"fill,omitempty"`
}

// KPI is a single headline figure shown next to the chart.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Text renders the KPI as "Label: Value".
func (k KPI) Text() string {
	return k.Label + ": " + k.Value
}

// Visibility says which control groups apply to the current report.
type Visibility struct {
	TimeRange bool `json:"time_range"`
	RevExp    bool `json:"rev_exp"`
	Vendors   bool `json:"vendors"`
	Payroll   bool `json:"payroll"`
}

// VisibilityFor returns the control groups shown for a report.
func VisibilityFor(k scenario.ReportKind) Visibility {
	return Visibility{
		TimeRange: k.UsesTimeline(),
		RevExp:    k.UsesTimeline(),
		Vendors:   k == scenario.Vendors,
		Payroll:   k == scenario.Payroll,
	}
}

// Bundle is everything a surface needs to redraw after a state change.
type Bundle struct {
	Report        scenario.ReportKind `json:"report"`
	Title         string              `json:"title"`
	Chart         ChartConfig         `json:"chart"`
	KPIs          []KPI               `json:"kpis"`
	Insights      []string            `json:"insights"`
	Summary       string              `json:"summary"`
	ControlGroups Visibility          `json:"control_groups"`
}
