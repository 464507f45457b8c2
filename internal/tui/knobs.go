package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/controller"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/tui/components"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type knobUnit int

const (
	unitPercent knobUnit = iota
	unitMoney
	unitMonths
)

// knobDef is one adjustable control as the TUI lists it.
type knobDef struct {
	id    string
	label string
	group string
	step  float64
	unit  knobUnit
}

var knobDefs = []knobDef{
	{controller.TimeRange, "Time range", controller.CtrlTimeRange, 0, unitMonths},
	{controller.RevGrowth, "Revenue growth", controller.CtrlRevExp, 1, unitPercent},
	{controller.ExpGrowth, "Expense growth", controller.CtrlRevExp, 1, unitPercent},
	{controller.HireCost, "New hire cost", controller.CtrlRevExp, 500, unitMoney},
	{controller.HireStart, "Hire starts in", controller.CtrlRevExp, 1, unitMonths},
	{controller.VendorAdj, "Vendor spend", controller.CtrlVendors, 1, unitPercent},
	{controller.PayrollSal, "Salaries", controller.CtrlPayroll, 1, unitPercent},
	{controller.PayrollBen, "Benefits", controller.CtrlPayroll, 1, unitPercent},
	{controller.PayrollTax, "Taxes", controller.CtrlPayroll, 1, unitPercent},
}

// knobState tracks the scenario panel cursor and inline editor.
type knobState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

// visibleKnobs lists the knobs whose control group is shown for the
// current report.
func (a App) visibleKnobs() []knobDef {
	var out []knobDef
	for _, k := range knobDefs {
		if a.panel.Visible(k.group) {
			out = append(out, k)
		}
	}
	return out
}

func (a App) selectedKnob() (knobDef, bool) {
	visible := a.visibleKnobs()
	if a.knobs.cursor < 0 || a.knobs.cursor >= len(visible) {
		return knobDef{}, false
	}
	return visible[a.knobs.cursor], true
}

func (a *App) moveKnob(delta int) {
	a.knobs.cursor += delta
	a.clampKnob()
}

func (a *App) clampKnob() {
	n := len(a.visibleKnobs())
	if a.knobs.cursor >= n {
		a.knobs.cursor = n - 1
	}
	if a.knobs.cursor < 0 {
		a.knobs.cursor = 0
	}
}

// stepKnob nudges the selected knob by one step in dir. The time range
// cycles through the offered spans instead.
func (a *App) stepKnob(dir int) {
	k, ok := a.selectedKnob()
	if !ok {
		return
	}
	if k.id == controller.TimeRange {
		a.panel.Set(controller.TimeRange, strconv.Itoa(nextSpan(a.ctl.State().Span, dir)), controller.Change)
		return
	}
	v := scenario.ParseNumber(a.panel.Value(k.id)) + float64(dir)*k.step
	a.setKnob(k, scenario.FormatNumber(v))
}

// setKnob fires the knob's own event with raw; the controller does the
// numeric coercion.
func (a *App) setKnob(k knobDef, raw string) {
	ev, err := controller.DefaultEvent(k.id)
	if err != nil {
		return
	}
	a.panel.Set(k.id, raw, ev)
}

func (a App) knobStartEdit() (tea.Model, tea.Cmd) {
	k, ok := a.selectedKnob()
	if !ok {
		return a, nil
	}

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 12
	ti.SetValue(a.panel.Value(k.id))
	switch k.unit {
	case unitPercent:
		ti.Placeholder = "percent, e.g. -5"
	case unitMoney:
		ti.Placeholder = "dollars per month"
	case unitMonths:
		ti.Placeholder = "months"
	}
	ti.Focus()

	a.knobs.editing = true
	a.knobs.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateKnobInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if k, ok := a.selectedKnob(); ok {
			a.setKnob(k, strings.TrimSpace(a.knobs.input.Value()))
		}
		a.knobs.editing = false
		return a, nil
	case "esc":
		a.knobs.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.knobs.input, cmd = a.knobs.input.Update(msg)
	return a, cmd
}

// knobDisplay formats the knob's current control value.
func (a App) knobDisplay(k knobDef) string {
	raw := a.panel.Value(k.id)
	switch k.unit {
	case unitPercent:
		return cli.FormatSignedPercent(scenario.ParseNumber(raw))
	case unitMoney:
		return cli.FormatMoney(scenario.ParseInt(raw)) + "/mo"
	default:
		n := scenario.ParseInt(raw)
		if k.id == controller.HireStart {
			return fmt.Sprintf("+%d mo", n)
		}
		return fmt.Sprintf("%d mo", n)
	}
}

func (a App) renderKnobs(outerWidth int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerWidth)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selectedLabel := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	blank := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	visible := a.visibleKnobs()
	if len(visible) == 0 {
		return labelStyle.Render("No adjustments for this report.")
	}

	labelW := 16
	var b strings.Builder
	for i, k := range visible {
		value := a.knobDisplay(k)
		valueColor := t.TextPrimary
		if k.unit == unitPercent {
			valueColor = components.ColorForDelta(scenario.ParseNumber(a.panel.Value(k.id)))
		}

		if i == a.knobs.cursor {
			if a.knobs.editing {
				b.WriteString(markerStyle.Render("▸ "))
				b.WriteString(selectedLabel.Render(fmt.Sprintf("%-*s ", labelW, k.label)))
				b.WriteString(a.knobs.input.View())
				b.WriteString("\n")
				continue
			}
			line := markerStyle.Render("▸ ") +
				selectedLabel.Render(fmt.Sprintf("%-*s ", labelW, k.label)) +
				lipgloss.NewStyle().Foreground(valueColor).Background(t.SurfaceBright).Bold(true).Render(value)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad))
			}
			b.WriteString(line)
		} else {
			b.WriteString(blank.Render("  "))
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s ", labelW, k.label)))
			b.WriteString(lipgloss.NewStyle().Foreground(valueColor).Background(t.Surface).Render(value))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[h/l] adjust  [enter] type"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[t] span  [r] run  [z] reset  [p] preset"))
	return b.String()
}
