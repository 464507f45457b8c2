// Package export writes chart bundles as spreadsheets, CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/whatif/internal/present"

	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXLSX, FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want xlsx, csv or json)", s)
}

// Table flattens a bundle's chart into a header row and one row per label.
func Table(b present.Bundle) (header []string, rows [][]string) {
	header = []string{"Label"}
	for i, ds := range b.Chart.Datasets {
		name := ds.Label
		if name == "" {
			name = "Value"
			if len(b.Chart.Datasets) > 1 {
				name = "Value " + strconv.Itoa(i+1)
			}
		}
		header = append(header, name)
	}

	rows = make([][]string, len(b.Chart.Labels))
	for i, label := range b.Chart.Labels {
		row := []string{label}
		for _, ds := range b.Chart.Datasets {
			cell := ""
			if i < len(ds.Data) {
				cell = strconv.FormatInt(ds.Data[i], 10)
			}
			row = append(row, cell)
		}
		rows[i] = row
	}
	return header, rows
}

// CSV writes the bundle's table followed by its KPIs, insights and summary.
func CSV(w io.Writer, b present.Bundle) error {
	cw := csv.NewWriter(w)

	header, rows := Table(b)
	records := [][]string{header}
	records = append(records, rows...)
	records = append(records, []string{})
	for _, k := range b.KPIs {
		records = append(records, []string{k.Label, k.Value})
	}
	for _, in := range b.Insights {
		records = append(records, []string{"Insight", in})
	}
	records = append(records, []string{"Summary", b.Summary})

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// JSON writes the bundle as indented JSON.
func JSON(w io.Writer, b any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// XLSX writes a workbook with one sheet per bundle.
func XLSX(w io.Writer, bundles []present.Bundle) error {
	if len(bundles) == 0 {
		return fmt.Errorf("writing xlsx: no reports to export")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	first := -1
	for _, b := range bundles {
		sheet := b.Report.Title()
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return fmt.Errorf("adding sheet %q: %w", sheet, err)
		}
		if first < 0 {
			first = idx
		}
		if err := writeSheet(f, sheet, b); err != nil {
			return fmt.Errorf("filling sheet %q: %w", sheet, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("dropping default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(bundles[0].Report.Title()); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, b present.Bundle) error {
	row := 1
	put := func(values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheet, cell, &values)
	}

	if err := put(b.Title); err != nil {
		return err
	}
	row++

	header, _ := Table(b)
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := put(hdr...); err != nil {
		return err
	}
	for i, label := range b.Chart.Labels {
		cells := []any{label}
		for _, ds := range b.Chart.Datasets {
			if i < len(ds.Data) {
				cells = append(cells, ds.Data[i])
			} else {
				cells = append(cells, "")
			}
		}
		if err := put(cells...); err != nil {
			return err
		}
	}
	row++

	for _, k := range b.KPIs {
		if err := put(k.Label, k.Value); err != nil {
			return err
		}
	}
	for _, in := range b.Insights {
		if err := put("Insight", in); err != nil {
			return err
		}
	}
	if err := put("Summary", b.Summary); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "A", 22)
}
