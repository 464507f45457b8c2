package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/whatif/internal/export"
	"github.com/theirongolddev/whatif/internal/present"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
	exportFlags      scenarioFlags
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write reports to xlsx, csv or json",
	Long: "Export the scenario. xlsx writes one sheet per report; csv and json\n" +
		"write the selected report only.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "xlsx", "Output format: xlsx, csv or json")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default whatif.<format>, - for stdout)")
	exportFlags.register(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(c *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	s, err := loadSession()
	if err != nil {
		return err
	}
	st := s.initial
	if err := exportFlags.apply(c, s.presets, &st); err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = "whatif." + string(format)
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	switch format {
	case export.FormatXLSX:
		err = export.XLSX(w, present.BuildAll(st, s.data))
	case export.FormatCSV:
		err = export.CSV(w, present.Build(st, s.data))
	case export.FormatJSON:
		err = export.JSON(w, present.Build(st, s.data))
	}
	if err != nil {
		return err
	}

	if out != "-" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", out)
	}
	return nil
}
