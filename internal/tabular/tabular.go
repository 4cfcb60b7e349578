// Package tabular reads and writes the legacy spreadsheet tables the shop
// used before the database: one workbook per record type, rewritten
// wholesale on save. Reads favor availability: a missing or corrupt
// workbook yields an empty table and absent canonical columns are
// backfilled, never an error.
package tabular

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Canonical column sets for the three workbooks.
var (
	UserColumns    = []string{"username", "password", "role", "active", "created_at"}
	ProductColumns = []string{"id", "name", "description", "price", "stock", "image", "seller"}
	OrderColumns   = []string{"id", "product_id", "product_name", "price", "customer", "seller", "timestamp", "status"}
)

// Row is one record keyed by canonical column name.
type Row map[string]string

// Load reads a workbook into ordered rows. Any open or parse failure is
// swallowed: the caller gets an empty table and the failure is logged at
// warn level. Columns missing from the stored header are backfilled with
// empty values; stored columns outside the canonical set are dropped.
func Load(path string, columns []string, zlog *zap.SugaredLogger) []Row {
	if zlog == nil {
		zlog = zap.NewNop().Sugar()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		zlog.Warnw("workbook unreadable, treating as empty", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	raw, err := f.GetRows(f.GetSheetName(0))
	if err != nil || len(raw) == 0 {
		if err != nil {
			zlog.Warnw("workbook rows unreadable, treating as empty", "path", path, "error", err)
		}
		return nil
	}

	// Map stored header positions onto canonical names.
	stored := map[string]int{}
	for i, name := range raw[0] {
		stored[name] = i
	}

	var rows []Row
	for _, cells := range raw[1:] {
		row := Row{}
		for _, col := range columns {
			if i, ok := stored[col]; ok && i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Save rewrites the workbook wholesale with the canonical header.
func Save(path string, columns []string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for n, row := range rows {
		cells := make([]interface{}, len(columns))
		for i, col := range columns {
			cells[i] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", n+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// NormalizeOrders applies the order-table repair rules: rows without a
// product name are dropped, ids are coerced to integers, and when any id
// is duplicated or zero the whole column is renumbered 1..N in current
// row order.
func NormalizeOrders(rows []Row) []Row {
	var kept []Row
	for _, row := range rows {
		if row["product_name"] == "" {
			continue
		}
		id, err := strconv.Atoi(row["id"])
		if err != nil || id < 0 {
			id = 0
		}
		row["id"] = strconv.Itoa(id)
		kept = append(kept, row)
	}

	seen := map[string]bool{}
	renumber := false
	for _, row := range kept {
		if row["id"] == "0" || seen[row["id"]] {
			renumber = true
			break
		}
		seen[row["id"]] = true
	}
	if renumber {
		for i, row := range kept {
			row["id"] = strconv.Itoa(i + 1)
		}
	}
	return kept
}
