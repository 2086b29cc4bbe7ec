package extab

import (
	"errors"

	"github.com/ukaji3/extab-go/pkg/extab/codec"
)

// ErrUnknownMode is returned by ModeFromString for an unrecognized mode name.
var ErrUnknownMode = errors.New("extab: unknown mode")

// Sentinels from the codec package, re-exported so callers can match decode
// failures with errors.Is without importing codec.
var (
	ErrInvalidUTF8       = codec.ErrInvalidUTF8
	ErrUnknownDesignator = codec.ErrUnknownDesignator
	ErrTruncatedEscape   = codec.ErrTruncatedEscape
)

// ParseError locates a decode failure by line and byte column.
type ParseError = codec.ParseError

// EscapeError reports a malformed escape sequence within a field.
type EscapeError = codec.EscapeError
