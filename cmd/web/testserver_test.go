package main

import (
	"context"
	"github.com/jamesungureanu/LifeTune/internal/e2etest"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testConfig() config {
	return config{
		Addr:            "localhost:0",
		SQLiteURL:       ":memory:",
		PostgresURL:     "",
		PprofAddr:       "",
		RevealDelay:     0,
		IdleGameTimeout: time.Hour,
		SessionLifetime: time.Hour,
		LogLevel:        slog.LevelDebug,
	}
}

// startTestServer runs the application on a free port until the test finishes.
func startTestServer(t *testing.T, cfg config) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, io.Discard, func(ctx context.Context, logger *slog.Logger) error {
		return run(ctx, logger, cfg)
	})
	require.NoError(t, err)
	return server
}
