package workbook

import (
	"github.com/ukaji3/extab-go/pkg/extab/models"
)

// UsedRange crops a grid to the bounding box of its non-empty cells,
// dropping empty margin rows and columns. A grid with no data yields nil.
func UsedRange(g models.Grid) models.Grid {
	minRow, maxRow, minCol, maxCol := dataBounds(g)
	if minRow < 0 {
		return nil
	}

	out := make(models.Grid, 0, maxRow-minRow+1)
	for _, row := range g[minRow : maxRow+1] {
		if minCol >= len(row) {
			out = append(out, nil)
			continue
		}
		hi := maxCol + 1
		if hi > len(row) {
			hi = len(row)
		}
		out = append(out, row[minCol:hi])
	}
	return out
}

// dataBounds finds the bounding box of non-empty cells.
func dataBounds(g models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range g {
		for colIdx, cell := range row {
			if !cell.IsEmpty() {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
