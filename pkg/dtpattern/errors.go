package dtpattern

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedQuote is returned when a quoted literal in a pattern is never closed.
	ErrUnterminatedQuote = errors.New("unterminated quoted literal")

	// ErrInvalidNumber is returned when a numeric field has no digits to read.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrOutOfRange is returned when a numeric field is outside its allowed interval.
	ErrOutOfRange = errors.New("number out of range")

	// ErrNoAlternative is returned when none of the names accepted by a field match.
	ErrNoAlternative = errors.New("no matching alternative")

	// ErrTextMismatch is returned when a literal text token does not match.
	ErrTextMismatch = errors.New("literal text mismatch")

	// ErrTrailingData is returned when characters remain after the last token.
	ErrTrailingData = errors.New("trailing data")
)

// CompileError reports a pattern that could not be tokenized.
type CompileError struct {
	Pattern string
	Offset  int // byte offset in Pattern where compilation stopped
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("dtpattern: cannot compile %q at offset %d: %v", e.Pattern, e.Offset, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// MismatchError reports a value that does not conform to a compiled pattern.
// Token is nil when every token matched but data was left over.
type MismatchError struct {
	Token     Token
	Remaining string
	Reason    string
	Err       error
}

func (e *MismatchError) Error() string {
	if e.Token == nil {
		return "dtpattern: " + e.Reason
	}
	return fmt.Sprintf("dtpattern: %s does not match %q: %s", e.Token, e.Remaining, e.Reason)
}

func (e *MismatchError) Unwrap() error { return e.Err }

// Code returns a short machine-readable identifier for err, suitable as a
// suffix for translation keys. It returns "" for nil and "unknown" for errors
// not produced by this package.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnterminatedQuote):
		return "unterminated_quote"
	case errors.Is(err, ErrInvalidNumber):
		return "invalid_number"
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrNoAlternative):
		return "no_alternative"
	case errors.Is(err, ErrTextMismatch):
		return "text_mismatch"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	default:
		return "unknown"
	}
}

// rejection is what a recognizer returns when it cannot consume the input.
type rejection struct {
	err    error
	reason string
}

func reject(err error, format string, args ...any) *rejection {
	return &rejection{err: err, reason: fmt.Sprintf(format, args...)}
}
