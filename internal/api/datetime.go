package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
	"github.com/dmitrymomot/dtmatch/pkg/logger"
	"github.com/dmitrymomot/dtmatch/pkg/validator"
)

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Value  string `json:"value"`
	Format string `json:"format"`
}

// ValidateResult is returned when the value matches.
type ValidateResult struct {
	Valid bool `json:"valid"`
}

// CompileRequest is the body of POST /v1/compile.
type CompileRequest struct {
	Format string `json:"format"`
}

// CompileResult lists the tokens a format compiles to.
type CompileResult struct {
	Format string   `json:"format"`
	Tokens []string `json:"tokens"`
}

// Request size limits in characters.
const (
	MaxFormatLength = 256
	MaxValueLength  = 1024
)

func (a *API) validate(r *http.Request, req ValidateRequest) response {
	if err := validator.Apply(
		validator.MaxLenString("format", req.Format, MaxFormatLength),
		validator.MaxLenString("value", req.Value, MaxValueLength),
	); err != nil {
		return a.validationFailure(r, http.StatusBadRequest, err)
	}

	err := validator.Apply(validator.DateTimeFormatWith(a.patterns, "value", req.Value, req.Format))
	if err == nil {
		a.log.DebugContext(r.Context(), "value matched", logger.Pattern(req.Format), logger.Value(req.Value))
		return jsonData(ValidateResult{Valid: true})
	}

	status := http.StatusUnprocessableEntity
	var ce *dtpattern.CompileError
	if errors.As(err, &ce) || errors.Is(err, validator.ErrEmptyFormat) {
		status = http.StatusBadRequest
	}
	attrs := []any{logger.Pattern(req.Format), logger.Value(req.Value), logger.Error(err)}
	var mm *dtpattern.MismatchError
	if errors.As(err, &mm) {
		attrs = append(attrs, logger.Token(mm.Token), logger.Remaining(mm.Remaining))
	}
	a.log.DebugContext(r.Context(), "value rejected", attrs...)
	return a.validationFailure(r, status, err)
}

// validationFailure reports the first validation error of err.
func (a *API) validationFailure(r *http.Request, status int, err error) response {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		a.log.ErrorContext(r.Context(), "unexpected validation failure", logger.Error(err))
		return jsonError(http.StatusInternalServerError, &ErrorDetail{
			Code:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
	verr := verrs[0]
	return jsonError(status, &ErrorDetail{
		Code:    errorCode(verr),
		Message: a.localize(r, verr),
		Details: verr.TranslationValues,
	})
}

func (a *API) compile(r *http.Request, req CompileRequest) response {
	p, err := a.patterns.Pattern(req.Format)
	if err != nil {
		a.log.DebugContext(r.Context(), "format rejected", logger.Pattern(req.Format), logger.Error(err))
		var ce *dtpattern.CompileError
		details := map[string]any{"format": req.Format}
		if errors.As(err, &ce) {
			details["offset"] = ce.Offset
		}
		return jsonError(http.StatusBadRequest, &ErrorDetail{
			Code:    dtpattern.Code(err),
			Message: err.Error(),
			Details: details,
		})
	}

	tokens := p.Tokens()
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		names = append(names, tok.String())
	}
	return jsonData(CompileResult{Format: p.String(), Tokens: names})
}

// errorCode is the last segment of the translation key, e.g. "out_of_range".
func errorCode(verr validator.ValidationError) string {
	key := verr.TranslationKey
	return key[strings.LastIndexByte(key, '.')+1:]
}

func (a *API) localize(r *http.Request, verr validator.ValidationError) string {
	if a.translator == nil {
		return verr.Error()
	}
	lang := a.translator.Match(r.Header.Get("Accept-Language"))
	if !a.translator.HasTranslation(lang, verr.TranslationKey) {
		return verr.Error()
	}

	args := make([]string, 0, len(verr.TranslationValues)*2)
	for k, v := range verr.TranslationValues {
		args = append(args, k, fmt.Sprint(v))
	}
	return a.translator.T(lang, verr.TranslationKey, args...)
}
