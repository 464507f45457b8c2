package cmd

import (
	"fmt"

	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/present"
	"github.com/theirongolddev/whatif/internal/scenario"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List scenario presets",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(s.presets))
	for _, p := range s.presets {
		var st scenario.State
		p.Apply(&st)
		rows = append(rows, []string{p.Name, p.Description, present.Summary(st)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Presets",
		Headers: []string{"Name", "Description", "Adjustments"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println("  Apply one with `whatif report --preset <name>` or press p in the TUI.")
	return nil
}
