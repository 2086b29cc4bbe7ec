package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/extab-go/pkg/extab/models"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header")
	f.SetCellValue(sheetName, "B1", 100)
	f.SetCellValue(sheetName, "C1", 200.5)
	f.SetCellValue(sheetName, "A2", true)
	f.SetCellValue(sheetName, "B2", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	// D2 left unset, A3 carries digits beyond float64 precision
	f.SetCellDefault(sheetName, "A3", "123456789012345678901234567890.123456789")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ReadSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}

	if grid[0][0].Kind != models.KindText || grid[0][0].Text != "Header" {
		t.Errorf("A1 = %+v, expected text Header", grid[0][0])
	}
	if grid[0][1].Kind != models.KindNumber || grid[0][1].Number.String() != "100" {
		t.Errorf("B1 = %+v, expected number 100", grid[0][1])
	}
	if grid[0][2].Kind != models.KindNumber || grid[0][2].Number.String() != "200.5" {
		t.Errorf("C1 = %+v, expected number 200.5", grid[0][2])
	}
	if grid[1][0].Kind != models.KindBool || !grid[1][0].Bool {
		t.Errorf("A2 = %+v, expected bool true", grid[1][0])
	}
	if grid[1][1].Kind != models.KindDate {
		t.Errorf("B2 = %+v, expected a date cell", grid[1][1])
	}
	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if !grid[1][1].Date.Equal(want) {
		t.Errorf("B2 date = %v, expected %v", grid[1][1].Date, want)
	}
	if grid[2][0].Kind != models.KindNumber {
		t.Errorf("A3 = %+v, expected a number cell", grid[2][0])
	}
	if got := grid[2][0].Number.String(); got != "123456789012345678901234567890.123456789" {
		t.Errorf("A3 = %s, lost precision", got)
	}
}

func TestReadSheetEmptyCellsStayEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "x")
	f.SetCellValue("Sheet1", "C1", "y")

	tmpFile := filepath.Join(t.TempDir(), "gaps.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := ReadSheet(f2, "Sheet1")
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}
	if !grid[0][1].IsEmpty() {
		t.Errorf("B1 = %+v, expected empty", grid[0][1])
	}
}

func TestReadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadSheet(f, "NoSuchSheet"); err == nil {
		t.Errorf("Expected error for missing sheet")
	}
}

func TestDateCell(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"45358", "2024-03-07"},
		{"45358.75", "2024-03-07"},
		{"2024-03-07", "2024-03-07"},
		{"2024-03-07T15:04:05", "2024-03-07"},
	}

	for _, tt := range tests {
		cell := dateCell(tt.raw)
		if cell.Kind != models.KindDate {
			t.Errorf("dateCell(%q).Kind = %v, expected KindDate", tt.raw, cell.Kind)
			continue
		}
		if got := cell.Date.Format("2006-01-02"); got != tt.want {
			t.Errorf("dateCell(%q) = %s, expected %s", tt.raw, got, tt.want)
		}
	}

	if cell := dateCell("not a date"); cell.Kind != models.KindText {
		t.Errorf("dateCell fallback = %v, expected KindText", cell.Kind)
	}
}
