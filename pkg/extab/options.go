package extab

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/extab-go/pkg/extab/codec"
)

// Mode selects the delimiter family.
type Mode = codec.Mode

const (
	// ModeCSV separates fields with commas.
	ModeCSV = codec.ModeCSV
	// ModeTab separates fields with tabs.
	ModeTab = codec.ModeTab
)

// Options controls export output.
type Options struct {
	// UseCRLF terminates rows with \r\n instead of \n.
	UseCRLF bool
}

// DefaultOptions returns the default export options: \n terminators.
func DefaultOptions() Options {
	return Options{}
}

// ModeFromString parses a mode name. Accepted values are "csv", "tab" and
// "tsv".
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "csv":
		return ModeCSV, nil
	case "tab", "tsv":
		return ModeTab, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// ModeFromPath infers the mode from a file extension, ignoring a trailing
// .gz: .tsv and .tab mean tab mode, everything else is CSV. The file content
// is never inspected.
func ModeFromPath(path string) Mode {
	path = strings.TrimSuffix(path, ".gz")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return ModeTab
	}
	return ModeCSV
}
