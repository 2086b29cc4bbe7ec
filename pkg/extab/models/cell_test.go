package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestConstructorKinds(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		kind Kind
	}{
		{"empty", Empty(), KindEmpty},
		{"text", NewText("x"), KindText},
		{"number", NewNumber(decimal.New(1, 0)), KindNumber},
		{"date", NewDate(time.Now()), KindDate},
		{"bool", NewBool(true), KindBool},
		{"error", NewError(ErrCodeValue), KindError},
	}

	for _, tt := range tests {
		if tt.cell.Kind != tt.kind {
			t.Errorf("%s: Kind = %v, expected %v", tt.name, tt.cell.Kind, tt.kind)
		}
	}
}

func TestNewNumberString(t *testing.T) {
	cell, err := NewNumberString("123456789012345678901234567890.5")
	if err != nil {
		t.Fatalf("NewNumberString failed: %v", err)
	}
	if cell.Kind != KindNumber {
		t.Errorf("Kind = %v, expected KindNumber", cell.Kind)
	}
	if got := cell.Number.String(); got != "123456789012345678901234567890.5" {
		t.Errorf("Number = %s, lost precision", got)
	}

	if _, err := NewNumberString("not a number"); err == nil {
		t.Errorf("Expected error for non-numeric input")
	}
}

func TestNewDateDropsTime(t *testing.T) {
	cell := NewDate(time.Date(2024, 3, 7, 15, 30, 45, 123, time.UTC))
	want := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	if !cell.Date.Equal(want) {
		t.Errorf("Date = %v, expected %v", cell.Date, want)
	}
}

func TestIsEmpty(t *testing.T) {
	if !Empty().IsEmpty() {
		t.Errorf("Empty() should be empty")
	}
	var zero Cell
	if !zero.IsEmpty() {
		t.Errorf("zero Cell should be empty")
	}
	if NewText("").IsEmpty() {
		t.Errorf("text cell should not be empty even with empty string")
	}
	if NewBool(false).IsEmpty() {
		t.Errorf("bool cell should not be empty")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmpty, "empty"},
		{KindText, "text"},
		{KindNumber, "number"},
		{KindDate, "date"},
		{KindBool, "bool"},
		{KindError, "error"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.want)
		}
	}
}
