package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dtmatch/pkg/httpserver"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func TestServe_ContextCancel(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	srv := httpserver.New(httpserver.WithShutdownTimeout(200 * time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, okHandler()) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "serve did not return")
	}
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown is a no-op")
}

func TestServe_ManualShutdown(t *testing.T) {
	t.Parallel()

	listening := make(chan net.Addr, 1)
	srv := httpserver.New(
		httpserver.WithShutdownTimeout(200*time.Millisecond),
		httpserver.WithOnListen(func(addr net.Addr) { listening <- addr }),
	)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background(), listen(t), okHandler()) }()

	<-listening
	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "serve did not return")
	}
}

func TestServe_AlreadyRunning(t *testing.T) {
	t.Parallel()

	listening := make(chan net.Addr, 1)
	srv := httpserver.New(httpserver.WithOnListen(func(addr net.Addr) { listening <- addr }))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listen(t), nil) }()
	<-listening

	err := srv.Serve(ctx, listen(t), nil)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	require.NoError(t, <-done)
}

func TestRun_InvalidAddr(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("256.0.0.1:bad"))
	err := srv.Run(context.Background(), okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestShutdown_NotStarted(t *testing.T) {
	t.Parallel()
	assert.NoError(t, httpserver.New().Shutdown(context.Background()))
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithOnListen(nil) })
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	assert.Empty(t, httpserver.Config{}.Options())

	cfg := httpserver.Config{
		Addr:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}
	assert.Len(t, cfg.Options(), 5)
	assert.NotNil(t, httpserver.NewFromConfig(cfg))
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []httpserver.Check
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: "ALIVE"},
		{
			name:   "ready",
			checks: []httpserver.Check{func(context.Context) error { return nil }},
			status: http.StatusOK,
			body:   "READY",
		},
		{
			name: "not ready",
			checks: []httpserver.Check{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("cache unavailable") },
			},
			status: http.StatusServiceUnavailable,
			body:   "NOT_READY",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
