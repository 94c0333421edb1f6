package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
)

// Translation keys produced by the date/time rules. Mismatches append the
// dtpattern error code, e.g. "validation.datetime.out_of_range".
const (
	KeyDateTimePrefix      = "validation.datetime."
	KeyDateTimeRequired    = "validation.datetime.required"
	KeyDateTimeEmptyFormat = "validation.datetime.empty_format"
)

// Validator checks a value against a date/time format. *dtpattern.Cache
// satisfies it.
type Validator interface {
	Validate(value, format string) error
}

type validatorFunc func(value, format string) error

func (f validatorFunc) Validate(value, format string) error { return f(value, format) }

// DateTimeFormat validates that value has the shape described by format.
// The value is checked when the rule is built; an empty value fails.
func DateTimeFormat(field, value, format string) Rule {
	return DateTimeFormatWith(validatorFunc(dtpattern.ValidateDateTime), field, value, format)
}

// DateTimeFormatWith is DateTimeFormat using v, typically a shared
// *dtpattern.Cache so hot formats are compiled once.
func DateTimeFormatWith(v Validator, field, value, format string) Rule {
	var err error
	switch {
	case format == "":
		err = ErrEmptyFormat
	case value == "":
		err = ErrValueRequired
	default:
		err = v.Validate(value, format)
	}
	return Rule{
		Check: func() error { return err },
		Error: dateTimeError(field, format, err),
	}
}

// OptionalDateTimeFormat is like DateTimeFormat but an empty value passes.
func OptionalDateTimeFormat(field, value, format string) Rule {
	if value == "" {
		return Rule{
			Check: func() error { return nil },
			Error: dateTimeError(field, format, nil),
		}
	}
	return DateTimeFormat(field, value, format)
}

func dateTimeError(field, format string, err error) ValidationError {
	verr := ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("must match date/time format %q", format),
		TranslationKey: KeyDateTimePrefix + "invalid",
		TranslationValues: map[string]any{
			"field":  field,
			"format": format,
		},
	}
	if err == nil {
		return verr
	}

	var (
		mm *dtpattern.MismatchError
		ce *dtpattern.CompileError
	)
	switch {
	case errors.Is(err, ErrEmptyFormat):
		verr.Message = "date/time format is empty"
		verr.TranslationKey = KeyDateTimeEmptyFormat
	case errors.Is(err, ErrValueRequired):
		verr.Message = "is required"
		verr.TranslationKey = KeyDateTimeRequired
	case errors.As(err, &mm):
		verr.Message = fmt.Sprintf("must match date/time format %q: %s", format, mm.Reason)
		verr.TranslationKey = KeyDateTimePrefix + dtpattern.Code(err)
		verr.TranslationValues["reason"] = mm.Reason
		verr.TranslationValues["remaining"] = mm.Remaining
		if mm.Token != nil {
			verr.TranslationValues["token"] = mm.Token.String()
		}
	case errors.As(err, &ce):
		verr.Message = fmt.Sprintf("date/time format %q is invalid: %v", format, ce.Err)
		verr.TranslationKey = KeyDateTimePrefix + dtpattern.Code(err)
		verr.TranslationValues["offset"] = ce.Offset
	}
	return verr
}
