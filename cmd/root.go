package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/cli"
	"github.com/theirongolddev/whatif/internal/config"
	"github.com/theirongolddev/whatif/internal/model"
	"github.com/theirongolddev/whatif/internal/scenario"
	"github.com/theirongolddev/whatif/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagLedger  string
	flagPresets string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Financial what-if dashboard",
	Long:  "Adjust revenue, expenses, hiring, vendors and payroll and see the effect on cash.",
	RunE:  runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLedger, "ledger", "", "SQLite baseline ledger (default: config ledger_path, else demo data)")
	rootCmd.PersistentFlags().StringVar(&flagPresets, "presets", "", "YAML file with extra scenario presets")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")

	// Report flags are accepted on the bare command too, since it runs report.
	reportFlags.register(rootCmd)
}

// session is everything a command needs to build reports.
type session struct {
	cfg     config.Config
	data    model.Dataset
	source  string
	presets []scenario.Preset
	initial scenario.State
}

// loadSession is the shared loading path used by all commands: config,
// baseline dataset and presets.
func loadSession() (*session, error) {
	config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
		config.ApplyEnv(&cfg)
	}

	ledger := flagLedger
	if ledger == "" {
		ledger = cfg.General.LedgerPath
	}
	data, source, err := loadDataset(ledger)
	if err != nil {
		return nil, err
	}

	presetsPath := flagPresets
	if presetsPath == "" {
		presetsPath = cfg.General.PresetsPath
	}
	presets := scenario.BuiltinPresets()
	if presetsPath != "" {
		extra, err := scenario.LoadPresets(presetsPath)
		if err != nil {
			return nil, err
		}
		presets = scenario.MergePresets(presets, extra)
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Loaded %d presets from %s\n", len(extra), presetsPath)
		}
	}

	return &session{
		cfg:     cfg,
		data:    data,
		source:  source,
		presets: presets,
		initial: initialState(cfg),
	}, nil
}

// loadDataset reads the baseline from a ledger, or returns the built-in
// demo figures when path is empty.
func loadDataset(path string) (model.Dataset, string, error) {
	if path == "" {
		return baseline.Demo(), "demo", nil
	}

	data, err := store.LoadFile(path)
	if err != nil {
		return model.Dataset{}, "", fmt.Errorf("loading ledger %s: %w", path, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %s months from %s\n", cli.FormatNumber(int64(data.Len())), path)
	}
	return data, path, nil
}

// initialState applies the configured default report and span.
func initialState(cfg config.Config) scenario.State {
	st := scenario.Default()
	if cfg.General.DefaultReport != "" {
		kind, err := scenario.ParseReportKind(cfg.General.DefaultReport)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Ignoring default_report: %v\n", err)
		} else {
			st.Report = kind
		}
	}
	if cfg.General.DefaultSpan > 0 {
		st.Span = cfg.General.DefaultSpan
	}
	return st
}
