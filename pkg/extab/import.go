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

// Import reads delimited text from r into a grid of raw field text. Ragged
// input is padded with empty fields to the widest row, never rejected.
func Import(r io.Reader, mode Mode) (models.StringGrid, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, string(mode))
	}
	rows, err := codec.NewReader(r, mode).ReadAll()
	if err != nil {
		return nil, err
	}
	return models.StringGrid(rows).Normalize(), nil
}

// ImportFile reads the file at path. A path ending in .gz is decompressed
// first.
func ImportFile(path string, mode Mode) (models.StringGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Import(r, mode)
}
