package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/whatif/internal/config"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	themeName := cfg.Appearance.Theme
	report := cfg.General.DefaultReport
	span := cfg.General.DefaultSpan
	ledger := cfg.General.LedgerPath
	presets := cfg.General.PresetsPath
	delay := strconv.Itoa(cfg.Chat.DelayMS)

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
		spanOpts = append(spanOpts, huh.NewOption(fmt.Sprintf("%d months", s), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Color theme").Options(themeOpts...).Value(&themeName),
			huh.NewSelect[string]().Title("Default report").Options(reportOpts...).Value(&report),
			huh.NewSelect[int]().Title("Default time range").Options(spanOpts...).Value(&span),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Ledger path").
				Description("SQLite baseline from `whatif ledger init`. Blank uses demo data.").
				Value(&ledger),
			huh.NewInput().
				Title("Presets file").
				Description("Optional YAML with extra presets.").
				Value(&presets),
			huh.NewInput().
				Title("Chat reply delay (ms)").
				Value(&delay).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(strings.TrimSpace(s)); err != nil || n < 0 {
						return fmt.Errorf("enter zero or more milliseconds")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	cfg.Appearance.Theme = themeName
	cfg.General.DefaultReport = report
	cfg.General.DefaultSpan = span
	cfg.General.LedgerPath = strings.TrimSpace(ledger)
	cfg.General.PresetsPath = strings.TrimSpace(presets)
	cfg.Chat.DelayMS, _ = strconv.Atoi(strings.TrimSpace(delay))

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `whatif setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
