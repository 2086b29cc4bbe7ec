// Package codec implements the delimited-text encoding used by extab: value
// formatting, field escaping, row serialization, and the matching decoder.
//
// Documents are always UTF-8. The writer never emits a byte order mark; the
// reader tolerates and discards one. Line breaks and tabs embedded in field
// values are encoded with a fixed escape marker of three backslashes, so a
// field never spans lines and, in tab mode, never contains the delimiter:
//
//	carriage return  ->  \\\r
//	line feed        ->  \\\n
//	CR LF            ->  \\\r\\\n  (two tokens, never a combined one)
//	tab (tab mode)   ->  \\\t
//	\\\ itself       ->  \\\\\\
//
// Single and doubled backslashes, as found in Windows paths and UNC shares,
// pass through untouched. In CSV mode a comma inside a field is written as-is;
// the format deliberately omits RFC 4180 quote-wrapping and is therefore not a
// conventional CSV dialect. It round-trips exactly through this package's own
// reader, which is the supported use.
package codec

// Mode selects the field delimiter for one export or import operation.
type Mode string

const (
	// ModeCSV separates fields with commas.
	ModeCSV Mode = "csv"
	// ModeTab separates fields with tabs.
	ModeTab Mode = "tab"
)

// Delimiter returns the field separator byte for the mode.
func (m Mode) Delimiter() byte {
	if m == ModeTab {
		return '\t'
	}
	return ','
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeCSV || m == ModeTab
}

// Marker is the escape prefix. Three backslashes collide with neither single
// backslashes (C:\x) nor doubled ones (\\server\share), so path-like text stays
// literal.
const Marker = `\\\`

// Fixed tokens produced by FormatCell.
const (
	TokenTrue  = "TRUE"
	TokenFalse = "FALSE"
	DateLayout = "2006-01-02"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
