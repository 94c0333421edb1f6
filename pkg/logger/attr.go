package logger

import (
	"fmt"
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Pattern records a date/time format under the key "pattern".
func Pattern(format string) slog.Attr {
	return slog.String("pattern", format)
}

// Value records the checked value under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// Token records a compiled pattern token under the key "token".
// Nil tokens produce an empty Attr.
func Token(tok fmt.Stringer) slog.Attr {
	if tok == nil {
		return slog.Attr{}
	}
	return slog.String("token", tok.String())
}

// Remaining records the unconsumed part of a value under the key "remaining".
func Remaining(rest string) slog.Attr {
	return slog.String("remaining", rest)
}
