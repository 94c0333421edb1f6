package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
	"github.com/dmitrymomot/dtmatch/pkg/httpserver"
	"github.com/dmitrymomot/dtmatch/pkg/i18n"
	"github.com/dmitrymomot/dtmatch/pkg/logger"
)

// API serves the date/time validator over HTTP.
type API struct {
	patterns   *dtpattern.Cache
	translator *i18n.Translator
	log        *slog.Logger
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger for access and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithTranslator localizes error messages by the request's Accept-Language.
// Without it messages are the untranslated validator messages.
func WithTranslator(t *i18n.Translator) Option {
	return func(a *API) { a.translator = t }
}

// New creates an API validating through patterns.
func New(patterns *dtpattern.Cache, opts ...Option) *API {
	a := &API{
		patterns: patterns,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("api"))
	return a
}

// Routes returns the router with all endpoints mounted:
//
//	GET  /health
//	POST /v1/validate
//	POST /v1/compile
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		RequestID,
		middleware.Recoverer,
		a.accessLog,
	)

	r.Get("/health", httpserver.HealthHandler(a.log, a.patternsReady))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/validate", wrap[ValidateRequest](a, a.validate))
		r.Post("/compile", wrap[CompileRequest](a, a.compile))
	})
	return r
}

func (a *API) patternsReady(context.Context) error {
	_, err := a.patterns.Pattern("yyyy-MM-dd")
	return err
}

func (a *API) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
