package handlers

import (
	"io"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/query"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Data"
)

// writeWorkbook writes t as a single sheet workbook with a header row of the
// table columns. Numeric values are written as numbers.
func writeWorkbook(w io.Writer, t *query.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return errors.Wrap(err, "failed to name sheet")
	}

	for i, h := range t.Columns() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return errors.Wrapf(err, "failed to write header %s", h)
		}
	}

	for r, row := range t.Rows {
		for c, v := range exportRow(t, row) {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return errors.Wrapf(err, "failed to write cell %s", cell)
			}
		}
	}

	return errors.Wrap(f.Write(w), "failed to write workbook")
}

// exportRow returns the cells of row in the order of the table columns
func exportRow(t *query.Table, row query.Row) []interface{} {
	cells := []interface{}{row.TimePeriod, row.GeographicLevel, row.LocationName, nil}
	if f, ok := row.Value.Float(); ok {
		cells[3] = f
	} else if row.Value.Kind == query.ValueString {
		cells[3] = row.Value.Text
	}
	for _, dim := range t.FilterDimensions {
		if v, ok := row.Filters[dim]; ok {
			cells = append(cells, v)
		} else {
			cells = append(cells, nil)
		}
	}
	return cells
}
