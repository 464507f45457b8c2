// Package store reads baseline figures from a SQLite ledger.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/theirongolddev/whatif/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrEmptyLedger is returned when a ledger has no months to chart.
var ErrEmptyLedger = errors.New("ledger has no months")

const pragmas = "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)"

var payrollCategories = [3]string{"salaries", "benefits", "taxes"}

// Ledger is a baseline ledger database.
type Ledger struct {
	db *sql.DB
}

// Open opens an existing ledger. It fails if the file doesn't exist.
func Open(dbPath string) (*Ledger, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+pragmas)
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Create writes ds to a ledger at dbPath, replacing any figures already there.
func Create(dbPath string, ds model.Dataset) error {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+pragmas)
	if err != nil {
		return fmt.Errorf("opening ledger db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	l := &Ledger{db: db}
	return l.write(ds)
}

func (l *Ledger) write(ds model.Dataset) error {
	tx, err := l.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"months", "vendors", "payroll", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, m := range ds.Months {
		_, err = tx.Exec(`INSERT INTO months (position, label, revenue, expenses)
			VALUES (?, ?, ?, ?)`, i, m.Label, m.Revenue, m.Expenses)
		if err != nil {
			return fmt.Errorf("writing month %q: %w", m.Label, err)
		}
	}

	for i, v := range ds.Vendors {
		_, err = tx.Exec(`INSERT INTO vendors (position, name, monthly_spend)
			VALUES (?, ?, ?)`, i, v.Name, v.MonthlySpend)
		if err != nil {
			return fmt.Errorf("writing vendor %q: %w", v.Name, err)
		}
	}

	amounts := ds.Payroll.Amounts()
	for i, cat := range payrollCategories {
		_, err = tx.Exec("INSERT INTO payroll (category, amount) VALUES (?, ?)", cat, amounts[i])
		if err != nil {
			return fmt.Errorf("writing payroll %s: %w", cat, err)
		}
	}

	_, err = tx.Exec("INSERT INTO settings (key, value) VALUES ('starting_cash', ?)",
		strconv.FormatInt(ds.StartingCash, 10))
	if err != nil {
		return fmt.Errorf("writing starting cash: %w", err)
	}

	return tx.Commit()
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// LoadDataset reads every table back into a dataset, ordered by position.
func (l *Ledger) LoadDataset() (model.Dataset, error) {
	var ds model.Dataset

	rows, err := l.db.Query("SELECT label, revenue, expenses FROM months ORDER BY position")
	if err != nil {
		return ds, fmt.Errorf("reading months: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var m model.Month
		if err := rows.Scan(&m.Label, &m.Revenue, &m.Expenses); err != nil {
			return ds, fmt.Errorf("scanning month: %w", err)
		}
		ds.Months = append(ds.Months, m)
	}
	if err := rows.Err(); err != nil {
		return ds, err
	}
	if len(ds.Months) == 0 {
		return ds, ErrEmptyLedger
	}

	vrows, err := l.db.Query("SELECT name, monthly_spend FROM vendors ORDER BY position")
	if err != nil {
		return ds, fmt.Errorf("reading vendors: %w", err)
	}
	defer func() { _ = vrows.Close() }()
	for vrows.Next() {
		var v model.Vendor
		if err := vrows.Scan(&v.Name, &v.MonthlySpend); err != nil {
			return ds, fmt.Errorf("scanning vendor: %w", err)
		}
		ds.Vendors = append(ds.Vendors, v)
	}
	if err := vrows.Err(); err != nil {
		return ds, err
	}

	prows, err := l.db.Query("SELECT category, amount FROM payroll")
	if err != nil {
		return ds, fmt.Errorf("reading payroll: %w", err)
	}
	defer func() { _ = prows.Close() }()
	for prows.Next() {
		var cat string
		var amount int64
		if err := prows.Scan(&cat, &amount); err != nil {
			return ds, fmt.Errorf("scanning payroll: %w", err)
		}
		switch strings.ToLower(cat) {
		case "salaries":
			ds.Payroll.Salaries = amount
		case "benefits":
			ds.Payroll.Benefits = amount
		case "taxes":
			ds.Payroll.Taxes = amount
		}
	}
	if err := prows.Err(); err != nil {
		return ds, err
	}

	var cash string
	err = l.db.QueryRow("SELECT value FROM settings WHERE key = 'starting_cash'").Scan(&cash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return ds, fmt.Errorf("reading starting cash: %w", err)
	default:
		ds.StartingCash, err = strconv.ParseInt(strings.TrimSpace(cash), 10, 64)
		if err != nil {
			return ds, fmt.Errorf("parsing starting cash %q: %w", cash, err)
		}
	}

	return ds, nil
}

// MonthCount returns the number of months in the ledger.
func (l *Ledger) MonthCount() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM months").Scan(&count)
	return count, err
}

// LoadFile opens the ledger at path, reads its dataset and closes it.
func LoadFile(path string) (model.Dataset, error) {
	l, err := Open(path)
	if err != nil {
		return model.Dataset{}, err
	}
	defer func() { _ = l.Close() }()
	return l.LoadDataset()
}
