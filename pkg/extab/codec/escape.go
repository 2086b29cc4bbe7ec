package codec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDesignator is returned when the escape marker is followed by a
	// character that is not a valid designator for the mode.
	ErrUnknownDesignator = errors.New("extab: unknown escape designator")
	// ErrTruncatedEscape is returned when a field ends in the middle of an
	// escape sequence.
	ErrTruncatedEscape = errors.New("extab: truncated escape sequence")
)

// EscapeError reports a malformed escape sequence and where in the field it
// starts.
type EscapeError struct {
	// Offset is the byte offset of the escape marker within the field.
	Offset int
	// Designator is the offending character after the marker, 0 when the field
	// ended instead.
	Designator byte
	// Err is ErrUnknownDesignator or ErrTruncatedEscape.
	Err error
}

// Error formats the malformed-escape message with its field offset.
func (e *EscapeError) Error() string {
	if e.Designator != 0 {
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Designator, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

// Unwrap returns the underlying sentinel error.
func (e *EscapeError) Unwrap() error {
	return e.Err
}

// Escape replaces every reserved substring in field with its marker token:
// carriage returns, line feeds, complete occurrences of the marker itself and,
// in tab mode, literal tabs. All other bytes pass through untouched, including
// the comma in CSV mode and the tab in CSV mode. A backslash run of length k
// keeps its k%3 trailing backslashes literal; each complete triple becomes the
// doubled marker.
func Escape(field string, mode Mode) string {
	if !strings.ContainsAny(field, reserved(mode)) {
		return field
	}

	var b strings.Builder
	b.Grow(len(field) + 8)
	for i := 0; i < len(field); {
		switch c := field[i]; {
		case c == '\\':
			run := 1
			for i+run < len(field) && field[i+run] == '\\' {
				run++
			}
			for j := 0; j < run/3; j++ {
				b.WriteString(Marker)
				b.WriteString(Marker)
			}
			for j := 0; j < run%3; j++ {
				b.WriteByte('\\')
			}
			i += run
		case c == '\r':
			b.WriteString(Marker)
			b.WriteByte('r')
			i++
		case c == '\n':
			b.WriteString(Marker)
			b.WriteByte('n')
			i++
		case c == '\t' && mode == ModeTab:
			b.WriteString(Marker)
			b.WriteByte('t')
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// reserved returns the bytes whose presence forces the slow path. A field with
// only single or doubled backslashes takes the slow path too but comes out
// unchanged.
func reserved(mode Mode) string {
	if mode == ModeTab {
		return "\\\r\n\t"
	}
	return "\\\r\n"
}

// Unescape reverses Escape exactly. It scans left to right; a maximal run of R
// backslashes decodes by run length: R%6 of 0, 1 or 2 is pure literal data,
// while 3, 4 or 5 means the final three backslashes are a marker whose
// designator follows (r, n, or t in tab mode). Any other designator, including
// t in CSV mode, or a field ending right after a marker, is a malformed
// escape reported with the marker's offset.
func Unescape(field string, mode Mode) (string, error) {
	if !strings.Contains(field, "\\") {
		return field, nil
	}

	var b strings.Builder
	b.Grow(len(field))
	for i := 0; i < len(field); {
		c := field[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}

		run := 1
		for i+run < len(field) && field[i+run] == '\\' {
			run++
		}
		lit := run
		marked := run%6 >= 3
		if marked {
			lit = run - 3
		}
		for j := 0; j < lit/6; j++ {
			b.WriteString(Marker)
		}
		for j := 0; j < lit%6; j++ {
			b.WriteByte('\\')
		}
		i += run
		if !marked {
			continue
		}

		if i >= len(field) {
			return "", &EscapeError{Offset: i - 3, Err: ErrTruncatedEscape}
		}
		switch field[i] {
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 't':
			if mode != ModeTab {
				return "", &EscapeError{Offset: i - 3, Designator: 't', Err: ErrUnknownDesignator}
			}
			b.WriteByte('\t')
		default:
			return "", &EscapeError{Offset: i - 3, Designator: field[i], Err: ErrUnknownDesignator}
		}
		i++
	}
	return b.String(), nil
}
