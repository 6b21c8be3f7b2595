package main

import (
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("LIFETUNE_ADDR", "localhost:0")
	t.Setenv("LIFETUNE_REVEAL_DELAY", "0s")
	t.Setenv("LIFETUNE_IDLE_GAME_TIMEOUT", "30m")
	t.Setenv("LIFETUNE_LOG_LEVEL", "DEBUG")

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "localhost:0", cfg.Addr)
	require.Equal(t, time.Duration(0), cfg.RevealDelay)
	require.Equal(t, 30*time.Minute, cfg.IdleGameTimeout)
	require.Equal(t, 12*time.Hour, cfg.SessionLifetime)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Equal(t, "./lifetune.sqlite3", cfg.SQLiteURL)
	require.Empty(t, cfg.PostgresURL)
}

func TestLoadConfig_invalid(t *testing.T) {
	t.Setenv("LIFETUNE_REVEAL_DELAY", "soon")

	_, err := loadConfig()
	require.Error(t, err)
}
