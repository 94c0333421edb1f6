package validator

import (
	"fmt"
	"unicode/utf8"
)

// KeyMaxLength is the translation key of MaxLenString failures.
const KeyMaxLength = "validation.max_length"

// MaxLenString validates that value has at most max characters.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() error {
			if n := utf8.RuneCountInString(value); n > max {
				return fmt.Errorf("%w: %d > %d", ErrTooLong, n, max)
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: KeyMaxLength,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
