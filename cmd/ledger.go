package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/store"

	"github.com/spf13/cobra"
)

var flagLedgerForce bool

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Manage the SQLite baseline ledger",
}

var ledgerInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a ledger seeded with the demo figures",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerInit,
}

var ledgerShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the months, vendors and payroll held by a ledger",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLedgerShow,
}

func init() {
	ledgerInitCmd.Flags().BoolVar(&flagLedgerForce, "force", false, "Overwrite the figures in an existing ledger")
	ledgerCmd.AddCommand(ledgerInitCmd)
	ledgerCmd.AddCommand(ledgerShowCmd)
	rootCmd.AddCommand(ledgerCmd)
}

func runLedgerInit(_ *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !flagLedgerForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	ds := baseline.Demo()
	if err := store.Create(path, ds); err != nil {
		return err
	}

	fmt.Printf("  Wrote %d months, %d vendors to %s\n", ds.Len(), len(ds.Vendors), path)
	fmt.Println("  Edit it with any SQLite client, then run:")
	fmt.Printf("    whatif --ledger %s\n", path)
	return nil
}

func runLedgerShow(_ *cobra.Command, args []string) error {
	path := flagLedger
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		s, err := loadSession()
		if err != nil {
			return err
		}
		path = s.cfg.General.LedgerPath
	}
	if path == "" {
		return errors.New("no ledger given and none configured")
	}

	ds, err := store.LoadFile(path)
	if err != nil {
		return err
	}

	months := cli.Table{
		Title:   "Months",
		Headers: []string{"Month", "Revenue", "Expenses"},
	}
	for _, m := range ds.Months {
		months.Rows = append(months.Rows, []string{m.Label, cli.FormatMoney(m.Revenue), cli.FormatMoney(m.Expenses)})
	}

	vendors := cli.Table{
		Title:   "Vendors",
		Headers: []string{"Vendor", "Monthly"},
	}
	for _, v := range ds.Vendors {
		vendors.Rows = append(vendors.Rows, []string{v.Name, cli.FormatMoney(v.MonthlySpend)})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("LEDGER  " + path))
	fmt.Println()
	fmt.Print(cli.RenderTable(months))
	fmt.Println()
	fmt.Print(cli.RenderTable(vendors))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Payroll and cash",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Salaries", cli.FormatMoney(ds.Payroll.Salaries)},
			{"Benefits", cli.FormatMoney(ds.Payroll.Benefits)},
			{"Taxes", cli.FormatMoney(ds.Payroll.Taxes)},
			{"---"},
			{"Starting cash", cli.FormatMoney(ds.StartingCash)},
		},
	}))
	return nil
}
