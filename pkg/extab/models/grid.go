package models

// Grid is an ordered sequence of rows of typed cells. A grid is rectangular
// once normalized; it is owned exclusively by the single export or import call
// that created it.
type Grid [][]Cell

// Columns returns the width of the widest row.
func (g Grid) Columns() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Normalize pads short rows with empty cells so every row has Columns() cells.
// Ragged input is common and not semantically significant, so it is repaired
// rather than rejected. The receiver's rows may be extended in place.
func (g Grid) Normalize() Grid {
	cols := g.Columns()
	for i, row := range g {
		for len(row) < cols {
			row = append(row, Empty())
		}
		g[i] = row
	}
	return g
}

// StringGrid is a rectangular grid of raw field text, the result of an import.
// Typing fields back into numbers or dates is the caller's concern.
type StringGrid [][]string

// Columns returns the width of the widest row.
func (g StringGrid) Columns() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Normalize pads short rows with empty strings so every row has Columns()
// fields. The receiver's rows may be extended in place.
func (g StringGrid) Normalize() StringGrid {
	cols := g.Columns()
	for i, row := range g {
		for len(row) < cols {
			row = append(row, "")
		}
		g[i] = row
	}
	return g
}
