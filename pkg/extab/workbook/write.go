package workbook

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/extab-go/pkg/extab/models"
	"github.com/xuri/excelize/v2"
)

// WriteSheet writes a grid of field text into a sheet, creating the sheet if
// it does not exist. Each field is retyped on a best-effort basis: booleans,
// integers, dates and floats become native cell values, everything else is
// stored as text. Empty fields leave their cells unset.
func WriteSheet(f *excelize.File, sheetName string, grid models.StringGrid) error {
	if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
		}
	}

	for rowIdx, row := range grid {
		for colIdx, field := range row {
			if field == "" {
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err := f.SetCellValue(sheetName, cellName, parseValue(field)); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cellName, err)
			}
		}
	}
	return nil
}

// parseValue converts field text back to a typed cell value. Returns bool for
// TRUE/FALSE, int64 for integers, time.Time for ISO 8601 dates, float64 for
// decimals float64 can hold exactly, or the original string. Numbers with
// more precision than float64 stay strings so no digit is lost.
func parseValue(s string) interface{} {
	switch s {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if d, err := decimal.NewFromString(s); err == nil {
		f, _ := d.Float64()
		if !math.IsInf(f, 0) && !math.IsNaN(f) && d.Equal(decimal.NewFromFloat(f)) {
			return f
		}
	}
	return s
}
