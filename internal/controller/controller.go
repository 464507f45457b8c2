package controller

import (
	"strconv"

	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"
)

// Renderer draws a bundle.
type Renderer interface {
	Render(present.Bundle)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(present.Bundle)

// Render calls f(b).
func (f RendererFunc) Render(b present.Bundle) { f(b) }

// knob binds one numeric control to one state field.
type knob struct {
	id    string
	ev    Event
	label string // value label updated on change, if any
	get   func(*scenario.State) string
	set   func(*scenario.State, string)
}

func pct(v float64) string { return scenario.FormatNumber(v) }

var knobs = []knob{
	{
		id: RevGrowth, ev: Input, label: RevGrowthVal,
		get: func(s *scenario.State) string { return pct(s.RevAdjPct) },
		set: func(s *scenario.State, raw string) { s.RevAdjPct = scenario.ParseNumber(raw) },
	},
	{
		id: ExpGrowth, ev: Input, label: ExpGrowthVal,
		get: func(s *scenario.State) string { return pct(s.ExpAdjPct) },
		set: func(s *scenario.State, raw string) { s.ExpAdjPct = scenario.ParseNumber(raw) },
	},
	{
		id: HireCost, ev: Input,
		get: func(s *scenario.State) string { return strconv.FormatInt(s.HireCost, 10) },
		set: func(s *scenario.State, raw string) { s.HireCost = scenario.ParseInt(raw) },
	},
	{
		id: HireStart, ev: Change,
		get: func(s *scenario.State) string { return strconv.Itoa(s.HireStartOffset) },
		set: func(s *scenario.State, raw string) { s.HireStartOffset = int(scenario.ParseInt(raw)) },
	},
	{
		id: VendorAdj, ev: Input, label: VendorAdjVal,
		get: func(s *scenario.State) string { return pct(s.VendorAdjPct) },
		set: func(s *scenario.State, raw string) { s.VendorAdjPct = scenario.ParseNumber(raw) },
	},
	{
		id: PayrollSal, ev: Input, label: PayrollSalVal,
		get: func(s *scenario.State) string { return pct(s.PayrollAdjPct.Sal) },
		set: func(s *scenario.State, raw string) { s.PayrollAdjPct.Sal = scenario.ParseNumber(raw) },
	},
	{
		id: PayrollBen, ev: Input, label: PayrollBenVal,
		get: func(s *scenario.State) string { return pct(s.PayrollAdjPct.Ben) },
		set: func(s *scenario.State, raw string) { s.PayrollAdjPct.Ben = scenario.ParseNumber(raw) },
	},
	{
		id: PayrollTax, ev: Input, label: PayrollTaxVal,
		get: func(s *scenario.State) string { return pct(s.PayrollAdjPct.Tax) },
		set: func(s *scenario.State, raw string) { s.PayrollAdjPct.Tax = scenario.ParseNumber(raw) },
	},
}

// Controller owns the scenario state for one session. Every handler it
// registers assigns one field and then re-renders the whole bundle.
type Controller struct {
	view     View
	renderer Renderer
	data     model.Dataset
	state    scenario.State
	last     present.Bundle
	renders  int
}

// New returns a controller over view. Call Bind before firing events.
func New(view View, r Renderer, ds model.Dataset, initial scenario.State) *Controller {
	if r == nil {
		r = RendererFunc(func(present.Bundle) {})
	}
	return &Controller{
		view:     view,
		renderer: r,
		data:     ds,
		state:    initial,
	}
}

// Bind subscribes every handler, writes the initial state into the view,
// applies control visibility and renders once.
func (c *Controller) Bind() {
	c.view.On(ReportSelect, Change, func() {
		k, err := scenario.ParseReportKind(c.view.Value(ReportSelect))
		if err != nil {
			c.view.SetValue(ReportSelect, c.state.Report.String())
			return
		}
		c.state.Report = k
		c.applyVisibility()
		c.Render()
	})

	c.view.On(TimeRange, Change, func() {
		c.state.Span = int(scenario.ParseInt(c.view.Value(TimeRange)))
		c.Render()
	})

	for _, k := range knobs {
		k := k
		c.view.On(k.id, k.ev, func() {
			k.set(&c.state, c.view.Value(k.id))
			if k.label != "" {
				c.view.SetText(k.label, k.get(&c.state))
			}
			c.Render()
		})
	}

	c.view.On(RunScenario, Click, c.Render)
	c.view.On(ResetScenario, Click, c.Reset)

	c.sync()
	c.applyVisibility()
	c.Render()
}

// Reset zeroes every adjustment, writes the zeros back into the view and
// re-renders. Report and span are kept.
func (c *Controller) Reset() {
	c.state.Reset()
	c.syncKnobs()
	c.Render()
}

// ApplyPreset assigns a preset's knobs, syncs the view and re-renders.
func (c *Controller) ApplyPreset(p scenario.Preset) {
	p.Apply(&c.state)
	c.syncKnobs()
	c.Render()
}

// Render rebuilds the bundle from the current state and hands it to the renderer.
func (c *Controller) Render() {
	c.last = present.Build(c.state, c.data)
	c.renders++
	c.renderer.Render(c.last)
}

// State returns a copy of the current state.
func (c *Controller) State() scenario.State { return c.state }

// Bundle returns the most recently rendered bundle.
func (c *Controller) Bundle() present.Bundle { return c.last }

// Dataset returns the baseline the controller renders against.
func (c *Controller) Dataset() model.Dataset { return c.data }

// Renders counts how many times the bundle has been rebuilt.
func (c *Controller) Renders() int { return c.renders }

func (c *Controller) applyVisibility() {
	vis := present.VisibilityFor(c.state.Report)
	c.view.SetVisible(CtrlTimeRange, vis.TimeRange)
	c.view.SetVisible(CtrlRevExp, vis.RevExp)
	c.view.SetVisible(CtrlVendors, vis.Vendors)
	c.view.SetVisible(CtrlPayroll, vis.Payroll)
}

func (c *Controller) sync() {
	c.view.SetValue(ReportSelect, c.state.Report.String())
	c.view.SetValue(TimeRange, strconv.Itoa(c.state.Span))
	c.syncKnobs()
}

func (c *Controller) syncKnobs() {
	for _, k := range knobs {
		v := k.get(&c.state)
		c.view.SetValue(k.id, v)
		if k.label != "" {
			c.view.SetText(k.label, v)
		}
	}
}
