// Package cmd implements the whatif CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/whatif/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	config.LoadDotenv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default report: %s\n", cfg.General.DefaultReport)
	fmt.Printf("    Default span:   %d months\n", cfg.General.DefaultSpan)
	fmt.Printf("    Ledger:         %s\n", orNotSet(cfg.General.LedgerPath, "demo data"))
	fmt.Printf("    Presets file:   %s\n", orNotSet(cfg.General.PresetsPath, "built-in only"))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Chat]")
	fmt.Printf("    Reply delay: %s\n", cfg.Chat.Delay())
	fmt.Printf("    Reply:       %s\n", orNotSet(cfg.Chat.Reply, "default"))
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:       %s\n", cfg.Daemon.Addr)
	fmt.Printf("    Events buffer: %d\n", cfg.Daemon.EventsBuffer)
	fmt.Printf("    Log level:     %s\n", cfg.Daemon.LogLevel)
	fmt.Println()

	fmt.Println("  Run `whatif setup` to reconfigure.")
	return nil
}

func orNotSet(v, fallback string) string {
	if v == "" {
		return "not set (" + fallback + ")"
	}
	return v
}
