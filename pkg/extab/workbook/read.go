package workbook

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ukaji3/extab-go/pkg/extab/models"
	"github.com/xuri/excelize/v2"
)

// Builtin number format IDs that display a serial number as a calendar date.
// Pure time formats (18-21, 45-47) stay numeric.
var dateNumFmts = map[int]bool{
	14: true, // m/d/yyyy
	15: true, // d-mmm-yy
	16: true, // d-mmm
	17: true, // mmm-yy
	22: true, // m/d/yyyy h:mm
}

// ReadSheet reads a sheet into a typed grid. Cell values come back raw, so
// numbers keep every digit the file stores; date-formatted numbers become
// date cells with the time of day dropped. Rows keep the ragged shape the
// workbook reports.
func ReadSheet(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	grid := make(models.Grid, 0, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, raw := range row {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			cell, err := readCell(f, sheetName, cellName, raw)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = cell
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// readCell types a single raw cell value using the cell's stored type and
// number format.
func readCell(f *excelize.File, sheetName, cellName, raw string) (models.Cell, error) {
	if raw == "" {
		return models.Empty(), nil
	}

	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return models.Cell{}, fmt.Errorf("failed to read cell %s: %w", cellName, err)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.NewBool(raw == "1"), nil
	case excelize.CellTypeError:
		return models.NewError(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.NewText(raw), nil
	case excelize.CellTypeDate:
		return dateCell(raw), nil
	case excelize.CellTypeFormula:
		// The cached result carries no type marker; numbers are the common
		// case, anything else stays text.
		if cell, err := models.NewNumberString(raw); err == nil {
			return cell, nil
		}
		return models.NewText(raw), nil
	default:
		isDate, err := hasDateFormat(f, sheetName, cellName)
		if err != nil {
			return models.Cell{}, err
		}
		if isDate {
			return dateCell(raw), nil
		}
		if cell, err := models.NewNumberString(raw); err == nil {
			return cell, nil
		}
		return models.NewText(raw), nil
	}
}

// hasDateFormat reports whether the cell's number format is one of the
// builtin calendar date formats.
func hasDateFormat(f *excelize.File, sheetName, cellName string) (bool, error) {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, fmt.Errorf("failed to read style of cell %s: %w", cellName, err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false, nil
	}
	return dateNumFmts[style.NumFmt], nil
}

// dateCell converts a raw date value, either an Excel serial number or an
// ISO 8601 string, to a date cell. Unconvertible values fall back to text.
func dateCell(raw string) models.Cell {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return models.NewText(raw)
		}
		return models.NewDate(t)
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return models.NewDate(t)
		}
	}
	return models.NewText(raw)
}
