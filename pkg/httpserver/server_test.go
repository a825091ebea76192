package httpserver_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchkit/punchkit/pkg/httpserver"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	t.Run("serves until the context is cancelled", func(t *testing.T) {
		t.Parallel()
		addr := freeAddr(t)
		srv := httpserver.New(httpserver.WithAddr(addr))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
		}()

		var resp *http.Response
		var err error
		require.Eventually(t, func() bool {
			resp, err = http.Get(fmt.Sprintf("http://%s/", addr))
			return err == nil
		}, 2*time.Second, 20*time.Millisecond)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()
		select {
		case runErr := <-done:
			assert.NoError(t, runErr)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop after context cancellation")
		}
	})

	t.Run("listener failure surfaces as a start error", func(t *testing.T) {
		t.Parallel()
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		t.Cleanup(func() { _ = l.Close() })

		srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
		runErr := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, runErr, httpserver.ErrStart)
	})

	t.Run("shutdown before run is a no-op", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New()
		assert.NoError(t, srv.Shutdown(context.Background()))
	})
}

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("liveness without checks", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		httpserver.HealthCheckHandler(ctx, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ALIVE", w.Body.String())
	})

	t.Run("ready when all checks pass", func(t *testing.T) {
		t.Parallel()
		ok := func(context.Context) error { return nil }

		w := httptest.NewRecorder()
		httpserver.HealthCheckHandler(ctx, nil, ok, ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
	})

	t.Run("not ready when a check fails", func(t *testing.T) {
		t.Parallel()
		failing := func(context.Context) error { return context.DeadlineExceeded }

		w := httptest.NewRecorder()
		handler := httpserver.HealthCheckHandler(ctx, discardLogger(), failing)
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "NOT_READY", w.Body.String())
	})
}
