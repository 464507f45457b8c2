package cmd

import (
	"fmt"

	"github.com/theirongolddev/whatif/internal/chat"
	"github.com/theirongolddev/whatif/internal/config"
	"github.com/theirongolddev/whatif/internal/tui"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The first-run form only shows when there is no config file yet.
	needSetup := !config.Exists()

	s, err := loadSession()
	if err != nil {
		return err
	}
	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Dataset:   s.data,
		Initial:   s.initial,
		Presets:   s.presets,
		Agent:     chat.Agent{Delay: s.cfg.Chat.Delay(), Reply: s.cfg.Chat.Reply},
		Source:    s.source,
		Config:    s.cfg,
		NeedSetup: needSetup,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
