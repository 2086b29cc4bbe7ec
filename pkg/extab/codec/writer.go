package codec

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits rows as delimited lines. Fields are escaped before joining, so
// callers pass raw cell text. The output is UTF-8 with no byte order mark and
// a terminator after every row, the final one included.
//
// Errors stick: after a write fails, subsequent calls are no-ops and Error
// reports the first failure.
type Writer struct {
	// UseCRLF terminates rows with \r\n instead of \n when set before the
	// first WriteRow.
	UseCRLF bool

	mode Mode
	w    *bufio.Writer
	err  error
}

// NewWriter returns a Writer emitting rows to w in the given mode.
func NewWriter(w io.Writer, mode Mode) *Writer {
	return &Writer{mode: mode, w: bufio.NewWriter(w)}
}

// WriteRow escapes the fields, joins them with the mode's delimiter and writes
// the line with its terminator.
func (w *Writer) WriteRow(fields []string) error {
	if w.err != nil {
		return w.err
	}
	for i, f := range fields {
		if i > 0 {
			if w.err = w.w.WriteByte(w.mode.Delimiter()); w.err != nil {
				return w.err
			}
		}
		if _, w.err = w.w.WriteString(Escape(f, w.mode)); w.err != nil {
			return w.err
		}
	}
	if w.UseCRLF {
		_, w.err = w.w.WriteString("\r\n")
	} else {
		w.err = w.w.WriteByte('\n')
	}
	return w.err
}

// WriteAll writes every row and flushes.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Error returns the first error seen by a previous WriteRow or Flush.
func (w *Writer) Error() error {
	return w.err
}

// SerializeRow escapes the fields and joins them with the mode's delimiter,
// without a line terminator. It is the pure form of WriteRow for callers that
// manage their own framing.
func SerializeRow(fields []string, mode Mode) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f, mode)
	}
	return strings.Join(escaped, string(mode.Delimiter()))
}
