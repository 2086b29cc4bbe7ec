// Package extab converts spreadsheet grids to and from delimited text.
//
// Export renders typed cells as CSV or tab-separated lines with
// full-precision numbers, ISO 8601 dates and marker-escaped control
// characters; Import reads those lines back into a rectangular grid of raw
// field text. Files ending in .gz are compressed and decompressed
// transparently.
package extab

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/ukaji3/extab-go/pkg/extab/codec"
	"github.com/ukaji3/extab-go/pkg/extab/models"
)

// Export writes the grid to w as delimited text. Short rows are padded with
// empty fields so every line has the width of the widest row.
func Export(w io.Writer, grid models.Grid, mode Mode, opts Options) error {
	if !mode.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownMode, string(mode))
	}
	cw := codec.NewWriter(w, mode)
	cw.UseCRLF = opts.UseCRLF

	width := grid.Columns()
	row := make([]string, width)
	for _, cells := range grid {
		for i := range row {
			if i < len(cells) {
				row[i] = codec.FormatCell(cells[i])
			} else {
				row[i] = ""
			}
		}
		if err := cw.WriteRow(row); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// ExportFile writes the grid to path, creating or truncating the file. A
// path ending in .gz is gzip-compressed.
func ExportFile(path string, grid models.Grid, mode Mode, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}
	if err := Export(w, grid, mode, opts); err != nil {
		f.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
