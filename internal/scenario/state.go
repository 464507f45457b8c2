// Package scenario holds the mutable what-if state and named presets.
package scenario

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownReport is returned when a report name doesn't match any ReportKind.
var ErrUnknownReport = errors.New("unknown report")

// ReportKind selects which chart the dashboard shows.
type ReportKind int

const (
	RevExp ReportKind = iota
	Cash
	Vendors
	Payroll
)

// AllReports lists every report in display order.
var AllReports = []ReportKind{RevExp, Cash, Vendors, Payroll}

func (k ReportKind) String() string {
	switch k {
	case RevExp:
		return "revexp"
	case Cash:
		return "cash"
	case Vendors:
		return "vendors"
	case Payroll:
		return "payroll"
	default:
		return fmt.Sprintf("report(%d)", int(k))
	}
}

// Title is the human name used in menus.
func (k ReportKind) Title() string {
	switch k {
	case RevExp:
		return "Revenue vs Expenses"
	case Cash:
		return "Cash Forecast"
	case Vendors:
		return "Vendors"
	case Payroll:
		return "Payroll"
	default:
		return k.String()
	}
}

// UsesTimeline reports whether the report is driven by the monthly series
// (and therefore by span, growth and hire knobs).
func (k ReportKind) UsesTimeline() bool {
	return k == RevExp || k == Cash
}

// MarshalText implements encoding.TextMarshaler.
func (k ReportKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ReportKind) UnmarshalText(b []byte) error {
	parsed, err := ParseReportKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseReportKind parses the short report name (case-insensitive).
func ParseReportKind(s string) (ReportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "revexp", "rev-exp", "revenue":
		return RevExp, nil
	case "cash":
		return Cash, nil
	case "vendors", "vendor":
		return Vendors, nil
	case "payroll":
		return Payroll, nil
	}
	return RevExp, fmt.Errorf("%w: %q", ErrUnknownReport, s)
}

// DefaultSpan is the time span in months when nothing else is chosen.
const DefaultSpan = 12

// Spans are the time spans offered by the time range control.
var Spans = []int{6, 12}

// PayrollPct holds per-category payroll adjustments in percent.
type PayrollPct struct {
	Sal float64 `json:"sal" yaml:"salaries"`
	Ben float64 `json:"ben" yaml:"benefits"`
	Tax float64 `json:"tax" yaml:"taxes"`
}

// IsZero reports whether every category is unadjusted.
func (p PayrollPct) IsZero() bool {
	return p.Sal == 0 && p.Ben == 0 && p.Tax == 0
}

// State is the current report selection plus every adjustment knob.
// Percentages are unbounded; negative values shrink the series.
type State struct {
	Report          ReportKind `json:"report"`
	Span            int        `json:"span"`
	RevAdjPct       float64    `json:"rev_adj_pct"`
	ExpAdjPct       float64    `json:"exp_adj_pct"`
	HireCost        int64      `json:"hire_cost"`
	HireStartOffset int        `json:"hire_start_offset"`
	VendorAdjPct    float64    `json:"vendor_adj_pct"`
	PayrollAdjPct   PayrollPct `json:"payroll_adj_pct"`
}

// Default returns the startup state: revenue/expense report over twelve
// months with no adjustments.
func Default() State {
	return State{
		Report: RevExp,
		Span:   DefaultSpan,
	}
}

// Reset zeroes every adjustment. Report and Span are left alone.
func (s *State) Reset() {
	s.RevAdjPct = 0
	s.ExpAdjPct = 0
	s.HireCost = 0
	s.HireStartOffset = 0
	s.VendorAdjPct = 0
	s.PayrollAdjPct = PayrollPct{}
}

// HasAdjustments reports whether any knob differs from its zero default.
func (s State) HasAdjustments() bool {
	return s.RevAdjPct != 0 ||
		s.ExpAdjPct != 0 ||
		s.HireCost != 0 ||
		s.HireStartOffset != 0 ||
		s.VendorAdjPct != 0 ||
		!s.PayrollAdjPct.IsZero()
}
