package workbook

import (
	"fmt"
	"strings"

	"github.com/ukaji3/extab-go/pkg/extab/models"
	"github.com/xuri/excelize/v2"
)

// Range is an inclusive rectangle of 1-based row and column coordinates.
type Range struct {
	R1 int
	C1 int
	R2 int
	C2 int
}

// ParseRange parses an A1-style range like "A1:D10". Absolute markers are
// ignored, a single cell name means a one-cell range, and corners may be
// given in either order.
func ParseRange(s string) (Range, error) {
	clean := strings.ReplaceAll(s, "$", "")

	parts := strings.Split(clean, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q", s)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}

	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	return Range{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// Crop returns the cells of g that fall inside r, clamped to the data the
// grid actually holds. Rows inside the range but shorter than its left edge
// come back empty rather than padded.
func Crop(g models.Grid, r Range) models.Grid {
	top := r.R1 - 1
	if top < 0 {
		top = 0
	}
	bottom := r.R2
	if bottom > len(g) {
		bottom = len(g)
	}
	if top >= bottom {
		return nil
	}

	out := make(models.Grid, 0, bottom-top)
	for _, row := range g[top:bottom] {
		left := r.C1 - 1
		if left < 0 {
			left = 0
		}
		right := r.C2
		if right > len(row) {
			right = len(row)
		}
		if left >= right {
			out = append(out, nil)
			continue
		}
		out = append(out, row[left:right])
	}
	return out
}
