// Package controller wires dashboard controls to the scenario state and
// re-renders a bundle after every change.
package controller

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownControl is returned for a control ID the dashboard doesn't have.
var ErrUnknownControl = errors.New("unknown control")

// Event is the kind of interaction a control reports.
type Event string

const (
	Change Event = "change"
	Input  Event = "input"
	Click  Event = "click"
)

// ParseEvent parses an event name; an empty string yields "".
func ParseEvent(s string) (Event, error) {
	switch e := Event(strings.ToLower(strings.TrimSpace(s))); e {
	case Change, Input, Click, "":
		return e, nil
	}
	return "", fmt.Errorf("unknown event %q", s)
}

// Handler reacts to a control event.
type Handler func()

// View is what the controller needs from a UI: read and write control
// values, set label text, toggle control groups and subscribe to events.
type View interface {
	Value(id string) string
	SetValue(id, v string)
	SetText(id, text string)
	SetVisible(id string, show bool)
	On(id string, ev Event, h Handler)
}

// Control IDs.
const (
	ReportSelect  = "reportSelect"
	TimeRange     = "timeRange"
	RevGrowth     = "revGrowth"
	ExpGrowth     = "expGrowth"
	HireCost      = "hireCost"
	HireStart     = "hireStart"
	VendorAdj     = "vendorAdj"
	PayrollSal    = "payrollSal"
	PayrollBen    = "payrollBen"
	PayrollTax    = "payrollTax"
	RunScenario   = "runScenario"
	ResetScenario = "resetScenario"
)

// Value labels shown next to sliders.
const (
	RevGrowthVal  = "revGrowthVal"
	ExpGrowthVal  = "expGrowthVal"
	VendorAdjVal  = "vendorAdjVal"
	PayrollSalVal = "payrollSalVal"
	PayrollBenVal = "payrollBenVal"
	PayrollTaxVal = "payrollTaxVal"
)

// Control groups toggled per report.
const (
	CtrlTimeRange = "ctrlTimeRange"
	CtrlRevExp    = "ctrlRevExp"
	CtrlVendors   = "ctrlVendors"
	CtrlPayroll   = "ctrlPayroll"
)

// defaultEvents maps each interactive control to the event it fires.
var defaultEvents = map[string]Event{
	ReportSelect:  Change,
	TimeRange:     Change,
	RevGrowth:     Input,
	ExpGrowth:     Input,
	HireCost:      Input,
	HireStart:     Change,
	VendorAdj:     Input,
	PayrollSal:    Input,
	PayrollBen:    Input,
	PayrollTax:    Input,
	RunScenario:   Click,
	ResetScenario: Click,
}

// DefaultEvent returns the event a control fires when the caller doesn't say.
func DefaultEvent(id string) (Event, error) {
	ev, ok := defaultEvents[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	return ev, nil
}

// Controls lists every interactive control ID in sorted order.
func Controls() []string {
	ids := make([]string, 0, len(defaultEvents))
	for id := range defaultEvents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
