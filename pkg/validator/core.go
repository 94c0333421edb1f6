package validator

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Cause is the error returned by the rule check, if any.
	Cause error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Cause }

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual failures so errors.Is and errors.As can
// reach the underlying causes.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule. Check returns nil when the rule
// holds and the reason it does not otherwise.
type Rule struct {
	Check func() error
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
// Every rule runs; failures are collected in order.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if err := rule.Check(); err != nil {
			verr := rule.Error
			verr.TranslationValues = maps.Clone(rule.Error.TranslationValues)
			verr.Cause = err
			errs.Add(verr)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
