package main

import (
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/kelseyhightower/envconfig"
	"log/slog"
	"time"
)

// config is read from LIFETUNE_ prefixed environment variables.
type config struct {
	// Addr is the address the HTTP server listens on. Port 0 picks a free port.
	Addr string `default:"localhost:4000" envconfig:"ADDR"`
	// SQLiteURL is the database file. ":memory:" keeps everything in memory.
	SQLiteURL string `default:"./lifetune.sqlite3" envconfig:"SQLITE_URL"`
	// PostgresURL switches the game session store to PostgreSQL when set. HTTP sessions stay in SQLite.
	PostgresURL string `envconfig:"POSTGRES_URL"`
	// PprofAddr enables the pprof listener when set.
	PprofAddr string `envconfig:"PPROF_ADDR"`
	// RevealDelay holds back the final standings after liquidation.
	RevealDelay     time.Duration `default:"2s"  envconfig:"REVEAL_DELAY"`
	IdleGameTimeout time.Duration `default:"2h"  envconfig:"IDLE_GAME_TIMEOUT"`
	SessionLifetime time.Duration `default:"12h" envconfig:"SESSION_LIFETIME"`
	LogLevel        slog.Level    `default:"INFO" envconfig:"LOG_LEVEL"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process("lifetune", &cfg); err != nil {
		return config{}, errors.Wrap(err, "process environment")
	}
	return cfg, nil
}
