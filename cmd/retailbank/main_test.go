package main

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func randomPort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err, "failed to get random port to start server")
	defer listener.Close() //nolint:errcheck

	return listener.Addr().(*net.TCPAddr).Port
}

func Test_run(t *testing.T) {
	listenAddr := fmt.Sprintf("localhost:%d", randomPort(t))

	t.Run("stop with signal", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond) // Half Second
		t.Cleanup(cancel)

		err := run(ctx, func(string) string { return "" }, func() (string, error) { return t.TempDir(), nil }, []string{
			"--address", listenAddr,
			"--log-level", "debug",
			"--seed-demo",
		})

		require.NoError(t, err, "on correct stop should not return error")
	})

	t.Run("stop with srv error", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond) // Half Second
		t.Cleanup(cancel)

		// Try to run with broken log level. Must fail
		err := run(ctx, func(string) string { return "" }, func() (string, error) { return t.TempDir(), nil }, []string{
			"--address", listenAddr,
			"--log-level", "loudest",
		})

		require.Error(t, err, "on incorrect start should return error")
	})
}
