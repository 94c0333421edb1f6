package validator

import "errors"

var (
	// ErrEmptyFormat is returned by rules that need a date/time format but got none.
	ErrEmptyFormat = errors.New("date/time format is empty")

	// ErrValueRequired is returned when a required value is empty.
	ErrValueRequired = errors.New("value is required")

	// ErrTooLong is returned when a string exceeds its length limit.
	ErrTooLong = errors.New("value is too long")
)
