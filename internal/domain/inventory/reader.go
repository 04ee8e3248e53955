package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an inventory extract as a plain grid: the header row and the
// data rows beneath it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadTable opens a tabular inventory extract. CSV and Excel files are
// both accepted, matching what the vendor portal exports.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readExcel(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open inventory file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return ReadCSVTable(f)
	}
}

// ReadCSVTable parses a CSV inventory extract from r, tolerating a
// UTF-8 BOM and ragged rows.
func ReadCSVTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("inventory file is empty")
	}
	rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

func readExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("inventory workbook is empty")
	}
	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// ParseLines extracts line items from the table. The Item Name and
// Product Type columns are required; Size and SKU are optional. Rows
// with an empty item name are skipped entirely.
func ParseLines(t *Table) ([]Line, error) {
	itemIdx, typeIdx, sizeIdx, skuIdx := -1, -1, -1, -1
	for i, c := range t.Columns {
		switch strings.TrimSpace(c) {
		case "Item Name":
			itemIdx = i
		case "Product Type":
			typeIdx = i
		case "Size":
			sizeIdx = i
		case "SKU":
			skuIdx = i
		}
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("inventory file has no %q column", "Item Name")
	}
	if typeIdx < 0 {
		return nil, fmt.Errorf("inventory file has no %q column", "Product Type")
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	lines := make([]Line, 0, len(t.Rows))
	for _, row := range t.Rows {
		name := cell(row, itemIdx)
		if name == "" {
			continue
		}
		size := cell(row, sizeIdx)
		if size == "" {
			size = DefaultSize
		}
		lines = append(lines, Line{
			ItemName:    name,
			ProductType: cell(row, typeIdx),
			Size:        size,
			SKU:         cell(row, skuIdx),
		})
	}
	return lines, nil
}
