package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the input contains a byte sequence that is
// not valid UTF-8.
var ErrInvalidUTF8 = errors.New("extab: invalid UTF-8 byte sequence")

// ParseError locates a decode failure in the input stream. Line and Column
// are 1-based; Column counts bytes within the line, excluding any leading
// byte order mark.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the failure with its position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("extab: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the wrapped error, an *EscapeError or a sentinel.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader decodes delimited lines back into rows of raw field text. A UTF-8
// byte order mark at the start of the stream is skipped; anywhere else the
// same bytes are ordinary content. Both \n and \r\n terminators are accepted,
// and a final row without a terminator still counts. Invalid UTF-8 and
// malformed escapes stop the read with a *ParseError.
type Reader struct {
	mode    Mode
	r       *bufio.Reader
	line    int
	skipBOM bool
}

// NewReader returns a Reader decoding rows from r in the given mode.
func NewReader(r io.Reader, mode Mode) *Reader {
	return &Reader{mode: mode, r: bufio.NewReader(r), skipBOM: true}
}

// Read returns the next row. At the end of the stream it returns nil, io.EOF;
// a trailing terminator does not produce a final empty row.
func (r *Reader) Read() ([]string, error) {
	if r.skipBOM {
		r.skipBOM = false
		if b, _ := r.r.Peek(3); bytes.Equal(b, utf8BOM) {
			if _, err := r.r.Discard(3); err != nil {
				return nil, err
			}
		}
	}

	raw, err := r.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if raw == "" {
		return nil, io.EOF
	}
	r.line++

	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	if i := invalidByteIndex(line); i >= 0 {
		return nil, &ParseError{Line: r.line, Column: i + 1, Err: ErrInvalidUTF8}
	}

	fields := strings.Split(line, string(r.mode.Delimiter()))
	offset := 0
	for i, f := range fields {
		decoded, err := Unescape(f, r.mode)
		if err != nil {
			col := offset + 1
			var ee *EscapeError
			if errors.As(err, &ee) {
				col += ee.Offset
			}
			return nil, &ParseError{Line: r.line, Column: col, Err: err}
		}
		fields[i] = decoded
		offset += len(f) + 1
	}
	return fields, nil
}

// ReadAll reads rows until the end of the stream. A successful call returns
// err == nil, not io.EOF.
func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// invalidByteIndex returns the index of the first byte where UTF-8 decoding
// fails, or -1 when s is valid. An encoded U+FFFD in the input is valid
// content, not a failure.
func invalidByteIndex(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
