package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/config"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/tui/components"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldReport
	settingsFieldSpan
	settingsFieldLedger
	settingsFieldPresets
	settingsFieldChatDelay
	settingsFieldChatReply
	settingsFieldDaemonAddr
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// settingsValue returns the editable text of a field.
func (a App) settingsValue(field int) string {
	cfg := a.cfg
	switch field {
	case settingsFieldTheme:
		return cfg.Appearance.Theme
	case settingsFieldReport:
		return cfg.General.DefaultReport
	case settingsFieldSpan:
		return strconv.Itoa(cfg.General.DefaultSpan)
	case settingsFieldLedger:
		return cfg.General.LedgerPath
	case settingsFieldPresets:
		return cfg.General.PresetsPath
	case settingsFieldChatDelay:
		return strconv.Itoa(cfg.Chat.DelayMS)
	case settingsFieldChatReply:
		return cfg.Chat.Reply
	case settingsFieldDaemonAddr:
		return cfg.Daemon.Addr
	}
	return ""
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
	case settingsFieldReport:
		ti.Placeholder = "revexp, cash, vendors, payroll"
	case settingsFieldSpan:
		ti.Placeholder = "12"
	case settingsFieldLedger:
		ti.Placeholder = "path to a SQLite ledger (empty for demo data)"
	case settingsFieldPresets:
		ti.Placeholder = "path to a presets YAML file"
	case settingsFieldChatDelay:
		ti.Placeholder = "800"
	case settingsFieldChatReply:
		ti.Placeholder = "canned assistant reply"
	case settingsFieldDaemonAddr:
		ti.Placeholder = "127.0.0.1:8787"
	}
	ti.SetValue(a.settingsValue(a.settings.cursor))
	ti.Focus()

	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited field, applies it to the live session
// where that makes sense and persists the config.
func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())
	cfg := a.cfg

	switch a.settings.cursor {
	case settingsFieldTheme:
		if _, ok := theme.Lookup(val); !ok {
			a.settings.saveErr = fmt.Errorf("unknown theme %q", val)
			return
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldReport:
		kind, err := scenario.ParseReportKind(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.General.DefaultReport = kind.String()
	case settingsFieldSpan:
		d, err := strconv.Atoi(val)
		if err != nil || d <= 0 {
			a.settings.saveErr = fmt.Errorf("span must be a positive number of months")
			return
		}
		cfg.General.DefaultSpan = d
	case settingsFieldLedger:
		cfg.General.LedgerPath = val
	case settingsFieldPresets:
		cfg.General.PresetsPath = val
	case settingsFieldChatDelay:
		ms, err := strconv.Atoi(val)
		if err != nil || ms < 0 {
			a.settings.saveErr = fmt.Errorf("delay must be zero or more milliseconds")
			return
		}
		cfg.Chat.DelayMS = ms
		if ms > 0 {
			a.chat.agent.Delay = time.Duration(ms) * time.Millisecond
		}
	case settingsFieldChatReply:
		cfg.Chat.Reply = val
		a.chat.agent.Reply = val
	case settingsFieldDaemonAddr:
		if val == "" {
			a.settings.saveErr = fmt.Errorf("daemon address can't be empty")
			return
		}
		cfg.Daemon.Addr = val
	}

	a.cfg = cfg
	a.settings.saveErr = a.save(cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	labels := [settingsFieldCount]string{
		"Theme",
		"Default report",
		"Default span",
		"Ledger path",
		"Presets path",
		"Chat delay (ms)",
		"Chat reply",
		"Daemon address",
	}

	var formBody strings.Builder
	for i, label := range labels {
		value := a.settingsValue(i)
		if value == "" {
			value = "(not set)"
		}

		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			lbl := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", label+":"))
			val := selectedStyle.Render(value)
			formBody.WriteString(marker + lbl + val)
			used := lipgloss.Width(marker) + lipgloss.Width(lbl) + lipgloss.Width(val)
			if pad := components.CardInnerWidth(cw) - used; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", label+":")))
			formBody.WriteString(valueStyle.Render(value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Baseline:        ") + valueStyle.Render(a.source) + "\n")
	infoBody.WriteString(labelStyle.Render("Months loaded:   ") + valueStyle.Render(cli.FormatNumber(int64(a.ctl.Dataset().Len()))) + "\n")
	infoBody.WriteString(labelStyle.Render("Presets:         ") + valueStyle.Render(strconv.Itoa(len(a.presets))) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.Path()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))
	return b.String()
}
