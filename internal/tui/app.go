// Package tui provides the interactive Bubble Tea dashboard for whatif.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/whatif/internal/chat"
	"github.com/theirongolddev/whatif/internal/config"
	"github.com/theirongolddev/whatif/internal/controller"
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/tui/components"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a new App.
type Options struct {
	Dataset   model.Dataset
	Initial   scenario.State
	Presets   []scenario.Preset
	Agent     chat.Agent
	Source    string // where the baseline came from, shown in settings
	Config    config.Config
	NeedSetup bool

	// Save persists settings edits. Defaults to config.Save.
	Save func(config.Config) error
}

// App is the root Bubble Tea model. The panel and controller are shared
// pointers, so copies of App made by Update all drive the same scenario.
type App struct {
	panel   *controller.Panel
	ctl     *controller.Controller
	presets []scenario.Preset
	preset  int // last applied preset, -1 for none
	source  string
	cfg     config.Config
	save    func(config.Config) error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    string

	// Per-tab state
	knobs    knobState
	chat     chatState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	tabRevExp = iota
	tabCash
	tabVendors
	tabPayroll
	tabChat
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5
)

// NewApp binds a fresh controller to an in-memory panel and returns the
// dashboard model.
func NewApp(opts Options) App {
	if opts.Initial.Span == 0 {
		opts.Initial.Span = scenario.DefaultSpan
	}
	if opts.Agent.Delay <= 0 {
		opts.Agent.Delay = chat.DefaultDelay
	}
	if opts.Save == nil {
		opts.Save = config.Save
	}
	if opts.Source == "" {
		opts.Source = "demo"
	}

	panel := controller.NewPanel()
	ctl := controller.New(panel, nil, opts.Dataset, opts.Initial)
	ctl.Bind()

	a := App{
		panel:     panel,
		ctl:       ctl,
		presets:   opts.Presets,
		preset:    -1,
		source:    opts.Source,
		cfg:       opts.Config,
		save:      opts.Save,
		activeTab: int(opts.Initial.Report),
		chat:      newChatState(opts.Agent),
		settings:  settingsState{input: newSettingsInput()},
		needSetup: opts.NeedSetup,
	}

	if a.needSetup {
		a.setupVals = defaultSetupValues(opts.Config)
		a.setupForm = newSetupForm(opts.Dataset.Len(), a.source, a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.isReportTab() {
				a.moveKnob(-1)
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.isReportTab() {
				a.moveKnob(1)
			}
			return a, nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					return a.selectTab(tab)
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case chatReplyMsg:
		a.chat.log.Append(msg.msg)
		if a.chat.pending > 0 {
			a.chat.pending--
		}
		return a, nil

	case spinner.TickMsg:
		if a.chat.pending > 0 {
			var cmd tea.Cmd
			a.chat.spinner, cmd = a.chat.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}
	if a.isReportTab() && a.knobs.editing {
		return a.updateKnobInput(msg)
	}
	if a.activeTab == tabChat {
		if m, cmd, handled := a.updateChatKey(msg); handled {
			return m, cmd
		}
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	a.notice = ""

	if a.isReportTab() {
		switch key {
		case "j", "down":
			a.moveKnob(1)
			return a, nil
		case "k", "up":
			a.moveKnob(-1)
			return a, nil
		case "h":
			a.stepKnob(-1)
			return a, nil
		case "l":
			a.stepKnob(1)
			return a, nil
		case "enter":
			return a.knobStartEdit()
		}
	}

	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		a.panel.Fire(controller.RunScenario, controller.Click)
		a.notice = "Scenario re-run"
		return a, nil
	case "z":
		a.panel.Fire(controller.ResetScenario, controller.Click)
		a.preset = -1
		a.notice = "Adjustments reset"
		return a, nil
	case "p":
		a.cyclePreset()
		return a, nil
	case "t":
		a.toggleSpan()
		return a, nil
	case "tab", "right":
		return a.selectTab((a.activeTab + 1) % len(components.Tabs))
	case "shift+tab", "left":
		return a.selectTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	}

	if len(msg.Runes) == 1 {
		if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
			return a.selectTab(tab)
		}
	}
	return a, nil
}

// selectTab switches tabs. Report tabs drive the report select control so
// the controller re-renders and toggles control groups.
func (a App) selectTab(tab int) (tea.Model, tea.Cmd) {
	a.activeTab = tab
	if a.isReportTab() {
		kind := scenario.AllReports[tab]
		if a.ctl.State().Report != kind {
			a.panel.Set(controller.ReportSelect, kind.String(), controller.Change)
		}
		a.clampKnob()
		return a, nil
	}
	if tab == tabChat {
		return a, a.chat.focus()
	}
	return a, nil
}

func (a App) isReportTab() bool {
	return a.activeTab < len(scenario.AllReports)
}

func (a *App) cyclePreset() {
	if len(a.presets) == 0 {
		a.notice = "No presets loaded"
		return
	}
	a.preset = (a.preset + 1) % len(a.presets)
	p := a.presets[a.preset]
	a.ctl.ApplyPreset(p)
	a.notice = "Preset: " + p.Name
}

func (a *App) toggleSpan() {
	if !a.panel.Visible(controller.CtrlTimeRange) {
		a.notice = "Time range applies to Rev/Exp and Cash"
		return
	}
	a.panel.Set(controller.TimeRange, strconv.Itoa(nextSpan(a.ctl.State().Span, 1)), controller.Change)
}

// nextSpan returns the span dir steps away from cur in scenario.Spans,
// wrapping around. Unknown spans start from the first entry.
func nextSpan(cur, dir int) int {
	spans := scenario.Spans
	idx := -1
	for i, s := range spans {
		if s == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		return spans[0]
	}
	return spans[(idx+dir%len(spans)+len(spans))%len(spans)]
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.notice = "Setup saved"
		if err := a.saveSetupConfig(); err != nil {
			a.notice = "Setup not saved: " + err.Error()
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  whatif needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1-6", "Jump to tab"},
			{"tab ⇧tab", "Next / Previous tab"},
			{"j k", "Select knob or setting"},
		}},
		{"Scenario", []struct{ key, desc string }{
			{"h l", "Step the selected knob"},
			{"Enter", "Type a value"},
			{"t", "Toggle 6 / 12 months"},
			{"r", "Run scenario"},
			{"z", "Reset adjustments"},
			{"p", "Apply next preset"},
		}},
		{"General", []struct{ key, desc string }{
			{"Esc", "Cancel edit"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + scenario pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)

	st := a.ctl.State()
	pill := pillStyle.Render(" ") + pillAccent.Render(fmt.Sprintf("%d mo", st.Span)) +
		pillStyle.Render(" │ ") + pillAccent.Render(st.Report.Title())
	if a.preset >= 0 && a.preset < len(a.presets) {
		pill += pillStyle.Render(" │ preset ") + pillAccent.Render(a.presets[a.preset].Name)
	}
	if a.notice != "" {
		pill += pillStyle.Render("   ") + noticeStyle.Render(a.notice)
	}
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).MaxWidth(w).Render(pill)

	// 2. Status bar
	info := fmt.Sprintf("%s · %d renders", a.source, a.ctl.Renders())
	statusBar := components.RenderStatusBar(w, a.ctl.Bundle().Summary, info)

	// 3. Content zone
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.isReportTab():
		content = a.renderReportTab(cw, contentH)
	case a.activeTab == tabChat:
		content = a.renderChatTab(cw, contentH)
	case a.activeTab == tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
