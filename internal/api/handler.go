package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/dtmatch/pkg/logger"
)

// handlerFunc handles a decoded JSON request of type R.
type handlerFunc[R any] func(r *http.Request, req R) response

// wrap turns a typed handler into an http.HandlerFunc that binds the JSON
// body, runs h and renders its response.
func wrap[R any](a *API, h handlerFunc[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		if err := bindJSON(r, &req); err != nil {
			_ = a.bindError(r, err).render(w)
			return
		}

		if err := h(r, req).render(w); err != nil {
			a.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}

func (a *API) bindError(r *http.Request, err error) response {
	status := http.StatusBadRequest
	code := "invalid_json"
	if errors.Is(err, ErrUnsupportedMediaType) {
		status = http.StatusUnsupportedMediaType
		code = "unsupported_media_type"
	}
	a.log.DebugContext(r.Context(), "request rejected", logger.Error(err))
	return jsonError(status, &ErrorDetail{Code: code, Message: err.Error()})
}
