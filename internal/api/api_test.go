package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtmatch/internal/api"
	"github.com/dmitrymomot/dtmatch/pkg/dtpattern"
	"github.com/dmitrymomot/dtmatch/pkg/i18n"
	"github.com/dmitrymomot/dtmatch/pkg/logger"
)

func newRouter(t *testing.T, opts ...api.Option) http.Handler {
	t.Helper()
	cache, err := dtpattern.NewCache(16)
	require.NoError(t, err)
	tr, err := i18n.NewTranslator(context.Background(), i18n.BuiltinAdapter())
	require.NoError(t, err)
	return api.New(cache, append([]api.Option{api.WithTranslator(tr)}, opts...)...).Routes()
}

func post(t *testing.T, h http.Handler, path string, body any, header map[string]string) (*httptest.ResponseRecorder, api.Envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env api.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestValidate(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("match", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "2001-W27-3", Format: "YYYY-'W'ww-u"}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, env.Error)
		assert.Equal(t, map[string]any{"valid": true}, env.Data)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "2001-W57-3", Format: "YYYY-'W'ww-u"}, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "out_of_range", env.Error.Code)
		assert.Equal(t, "value does not match YYYY-'W'ww-u: invalid week in year 57", env.Error.Message)
		assert.Equal(t, "WeekInYear", env.Error.Details["token"])
		assert.Equal(t, "57-3", env.Error.Details["remaining"])
		assert.Equal(t, "invalid week in year 57", env.Error.Details["reason"])
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "100", Format: "MM"}, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "trailing_data", env.Error.Code)
		assert.Equal(t, "0", env.Error.Details["remaining"])
		assert.NotContains(t, env.Error.Details, "token")
	})

	t.Run("localized", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "", Format: "yyyy"},
			map[string]string{"Accept-Language": "de-DE,de;q=0.9,en;q=0.5"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "required", env.Error.Code)
		assert.Equal(t, "value ist erforderlich", env.Error.Message)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "2001", Format: "yyyy 'at"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unterminated_quote", env.Error.Code)
		assert.EqualValues(t, 5, env.Error.Details["offset"])
	})

	t.Run("empty format", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "2001", Format: ""}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "empty_format", env.Error.Code)
	})

	t.Run("whitespace format", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: " ", Format: " "}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, env.Error)
	})
}

func TestValidate_LogsMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newRouter(t, api.WithLogger(logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithFormat(logger.FormatJSON),
	)))

	rec, _ := post(t, h, "/v1/validate", api.ValidateRequest{Value: "2001-W57-3", Format: "YYYY-'W'ww-u"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	logs := buf.String()
	assert.Contains(t, logs, `"msg":"value rejected"`)
	assert.Contains(t, logs, `"token":"WeekInYear"`)
	assert.Contains(t, logs, `"remaining":"57-3"`)
}

func TestValidate_WithoutTranslator(t *testing.T) {
	t.Parallel()

	cache, err := dtpattern.NewCache(0)
	require.NoError(t, err)
	h := api.New(cache).Routes()

	_, env := post(t, h, "/v1/validate", api.ValidateRequest{Value: "13", Format: "MM"}, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, `value: must match date/time format "MM": invalid month 13`, env.Error.Message)
}

func TestCompile(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	t.Run("tokens", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/compile", api.CompileRequest{Format: "yyyy-MM-dd'T'HH"}, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{
			"format": "yyyy-MM-dd'T'HH",
			"tokens": []any{"Year", `Text("-")`, "Month", `Text("-")`, "DayInMonth", `Text("T")`, "HourOfDay"},
		}, env.Data)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		rec, env := post(t, h, "/v1/compile", api.CompileRequest{Format: "'abc"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unterminated_quote", env.Error.Code)
		assert.EqualValues(t, 0, env.Error.Details["offset"])
	})
}

func TestBinding(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		code        string
	}{
		{name: "wrong media type", contentType: "text/plain", body: `{}`, status: http.StatusUnsupportedMediaType, code: "unsupported_media_type"},
		{name: "empty body", contentType: "application/json", body: ``, status: http.StatusBadRequest, code: "invalid_json"},
		{name: "unknown field", contentType: "application/json", body: `{"value":"1","pattern":"y"}`, status: http.StatusBadRequest, code: "invalid_json"},
		{name: "trailing data", contentType: "application/json; charset=utf-8", body: `{"value":"1","format":"y"} {}`, status: http.StatusBadRequest, code: "invalid_json"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			var env api.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := api.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = api.RequestIDFromContext(r.Context())
	}))

	t.Run("reuses valid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(api.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", rec.Header().Get(api.RequestIDHeader))
	})

	t.Run("replaces invalid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(api.RequestIDHeader, "bad id!")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.NotEqual(t, "bad id!", seen)
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rec.Header().Get(api.RequestIDHeader))
	})

	t.Run("extractor", func(t *testing.T) {
		_, ok := api.RequestIDExtractor(context.Background())
		assert.False(t, ok)

		var reqCtx context.Context
		withCtx := api.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqCtx = r.Context()
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(api.RequestIDHeader, "req-42")
		withCtx.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, reqCtx)
		attr, ok := api.RequestIDExtractor(reqCtx)
		require.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "req-42", attr.Value.String())
	})
}

func TestValidate_Limits(t *testing.T) {
	t.Parallel()
	h := newRouter(t)

	rec, env := post(t, h, "/v1/validate", api.ValidateRequest{
		Value:  "2001",
		Format: strings.Repeat("y", api.MaxFormatLength+1),
	}, map[string]string{"Accept-Language": "en"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "max_length", env.Error.Code)
	assert.Equal(t, "format must be at most 256 characters long", env.Error.Message)
}
