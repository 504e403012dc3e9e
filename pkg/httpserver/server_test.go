package httpserver_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "unable to get free port")
	addr := l.Addr().String()
	require.NoError(t, l.Close(), "close listener")
	return addr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

func waitStarted(t *testing.T, srv *httpserver.Server) {
	t.Helper()
	select {
	case <-srv.Started():
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not start")
	}
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(freeAddr(t)), httpserver.WithShutdownTimeout(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitStarted(t, srv)

	resp, err := http.Get("http://" + srv.Addr().String())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(freeAddr(t)))

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), okHandler()) }()
	waitStarted(t, srv)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestStartError(t *testing.T) {
	t.Parallel()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
	err = srv.Run(context.Background(), okHandler())
	require.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(freeAddr(t)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitStarted(t, srv)

	err := srv.Run(ctx, okHandler())
	require.ErrorIs(t, err, httpserver.ErrStart)

	cancel()
	require.NoError(t, <-done)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Nil(t, srv.Addr())
}

func TestOptionsPanic(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	srv := httpserver.NewFromConfig(httpserver.Config{Addr: freeAddr(t), ShutdownTimeout: 50 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitStarted(t, srv)

	cancel()
	require.NoError(t, <-done)
}
