// Package models defines the grid data structures shared by the codec and the
// workbook bridge.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which variant a Cell holds.
type Kind int

const (
	// KindEmpty is a blank cell.
	KindEmpty Kind = iota
	// KindText is free-form text.
	KindText
	// KindNumber is an arbitrary-precision decimal number.
	KindNumber
	// KindDate is a calendar date with no time-of-day component.
	KindDate
	// KindBool is a boolean.
	KindBool
	// KindError is a spreadsheet error code such as "#DIV/0!".
	KindError
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "bool"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Standard spreadsheet error codes.
const (
	ErrCodeDiv0  = "#DIV/0!"
	ErrCodeNA    = "#N/A"
	ErrCodeName  = "#NAME?"
	ErrCodeNull  = "#NULL!"
	ErrCodeNum   = "#NUM!"
	ErrCodeRef   = "#REF!"
	ErrCodeValue = "#VALUE!"
)

// Cell is a single typed spreadsheet value. Kind selects the variant; only the
// matching payload field is meaningful. Number keeps the full decimal digit
// sequence of the source value, so no precision is lost before formatting.
type Cell struct {
	Kind   Kind
	Text   string          // KindText
	Number decimal.Decimal // KindNumber
	Date   time.Time       // KindDate, normalized to midnight UTC
	Bool   bool            // KindBool
	Code   string          // KindError
}

// Empty returns a blank cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// NewText returns a text cell.
func NewText(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NewNumber returns a number cell holding d.
func NewNumber(d decimal.Decimal) Cell {
	return Cell{Kind: KindNumber, Number: d}
}

// NewNumberString parses s as a decimal number and returns a number cell.
// The stored value reproduces the digits of s exactly.
func NewNumberString(s string) (Cell, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Cell{}, err
	}
	return NewNumber(d), nil
}

// NewDate returns a date cell for the calendar date of t. Any time-of-day
// component of t is dropped.
func NewDate(t time.Time) Cell {
	y, m, d := t.Date()
	return Cell{Kind: KindDate, Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewBool returns a boolean cell.
func NewBool(b bool) Cell {
	return Cell{Kind: KindBool, Bool: b}
}

// NewError returns an error cell carrying the given spreadsheet error code.
func NewError(code string) Cell {
	return Cell{Kind: KindError, Code: code}
}

// IsEmpty reports whether the cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}
