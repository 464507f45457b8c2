package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theirongolddev/whatif/internal/baseline"
	"github.com/theirongolddev/whatif/internal/model"
)

func TestCreateLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "ledger.db")
	want := baseline.Demo()

	if err := Create(path, want); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = l.Close() }()

	n, err := l.MonthCount()
	if err != nil || n != 12 {
		t.Fatalf("MonthCount = %d, %v", n, err)
	}

	got, err := l.LoadDataset()
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestCreateReplacesExistingFigures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	if err := Create(path, baseline.Demo()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	small := model.Dataset{
		Months:       []model.Month{{Label: "Q1", Revenue: 10, Expenses: 20}},
		Vendors:      []model.Vendor{{Name: "Hosting", MonthlySpend: 5}},
		Payroll:      model.Payroll{Salaries: 3, Benefits: 2, Taxes: 1},
		StartingCash: -50,
	}
	if err := Create(path, small); err != nil {
		t.Fatalf("Create again: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !reflect.DeepEqual(got, small) {
		t.Fatalf("got %+v, want %+v", got, small)
	}
}

func TestLoadEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	if err := Create(path, model.Dataset{}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("err = %v, want ErrEmptyLedger", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Fatal("expected error for missing ledger")
	}
}
