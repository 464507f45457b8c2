package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/whatif/internal/config"
	"github.com/theirongolddev/whatif/internal/controller"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues receives the first-run form answers. The form writes through
// pointers, so App keeps it behind a pointer too.
type setupValues struct {
	theme  string
	report string
	span   int
	ledger string
}

func defaultSetupValues(cfg config.Config) *setupValues {
	v := &setupValues{
		theme:  cfg.Appearance.Theme,
		report: cfg.General.DefaultReport,
		span:   cfg.General.DefaultSpan,
		ledger: cfg.General.LedgerPath,
	}
	if v.theme == "" {
		v.theme = theme.FlexokiDark.Name
	}
	if v.report == "" {
		v.report = scenario.RevExp.String()
	}
	if v.span == 0 {
		v.span = scenario.DefaultSpan
	}
	return v
}

func newSetupForm(months int, source string, vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	reportOpts := make([]huh.Option[string], 0, len(scenario.AllReports))
	for _, k := range scenario.AllReports {
		reportOpts = append(reportOpts, huh.NewOption(k.Title(), k.String()))
	}

	spanOpts := make([]huh.Option[int], 0, len(scenario.Spans))
	for _, s := range scenario.Spans {
		spanOpts = append(spanOpts, huh.NewOption("Last "+strconv.Itoa(s)+" months", s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to whatif").
				Description(fmt.Sprintf("Loaded %d months of baseline data from %s.\nPick a few defaults and the dashboard opens.", months, source)),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewSelect[string]().
				Title("Report to open with").
				Options(reportOpts...).
				Value(&vals.report),
			huh.NewSelect[int]().
				Title("Time range").
				Options(spanOpts...).
				Value(&vals.span),
			huh.NewInput().
				Title("Ledger path").
				Description("SQLite baseline ledger. Leave blank to use demo data.").
				Value(&vals.ledger),
		),
	).WithTheme(huh.ThemeCharm())
}

// saveSetupConfig applies the form answers to the running dashboard and
// writes them to the config file.
func (a *App) saveSetupConfig() error {
	vals := a.setupVals
	cfg := a.cfg

	cfg.Appearance.Theme = vals.theme
	theme.SetActive(vals.theme)

	if kind, err := scenario.ParseReportKind(vals.report); err == nil {
		cfg.General.DefaultReport = kind.String()
		a.activeTab = int(kind)
		a.panel.Set(controller.ReportSelect, kind.String(), controller.Change)
	}
	if vals.span > 0 {
		cfg.General.DefaultSpan = vals.span
		a.panel.Set(controller.TimeRange, strconv.Itoa(vals.span), controller.Change)
	}
	cfg.General.LedgerPath = strings.TrimSpace(vals.ledger)

	a.cfg = cfg
	a.clampKnob()
	return a.save(cfg)
}
