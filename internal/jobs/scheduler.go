// Package jobs runs the periodic maintenance of the game server.
package jobs

import (
	"context"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/robfig/cron/v3"
	"log/slog"
	"time"
)

// Optimizer runs periodic database maintenance.
type Optimizer interface {
	Optimize(ctx context.Context) error
}

// Pruner drops abandoned tables.
type Pruner interface {
	Prune(maxIdle time.Duration) int
}

type Config struct {
	// OptimizeSpec is the cron schedule of the database optimisation.
	OptimizeSpec string
	// PruneSpec is the cron schedule of idle table pruning.
	PruneSpec string
	// IdleTimeout is how long a table may go without input before it is pruned.
	IdleTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		OptimizeSpec: "@hourly",
		PruneSpec:    "@every 10m",
		IdleTimeout:  2 * time.Hour, //nolint:mnd // an unattended game is abandoned after two hours
	}
}

// Scheduler runs the maintenance jobs on cron schedules.
type Scheduler struct {
	cron      *cron.Cron
	logger    *slog.Logger
	optimizer Optimizer
	pruner    Pruner
	cfg       Config
}

func NewScheduler(logger *slog.Logger, optimizer Optimizer, pruner Pruner, cfg Config) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		logger:    logger.With(slog.String("source", "jobs")),
		optimizer: optimizer,
		pruner:    pruner,
		cfg:       cfg,
	}
}

// Start registers the jobs and starts the scheduler. The jobs run with ctx until Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.OptimizeSpec, func() { s.optimize(ctx) }); err != nil {
		return errors.Wrap(err, "schedule optimize", slog.String("spec", s.cfg.OptimizeSpec))
	}
	if _, err := s.cron.AddFunc(s.cfg.PruneSpec, func() { s.prune(ctx) }); err != nil {
		return errors.Wrap(err, "schedule prune", slog.String("spec", s.cfg.PruneSpec))
	}
	s.cron.Start()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	return nil
}

func (s *Scheduler) optimize(ctx context.Context) {
	if err := s.optimizer.Optimize(ctx); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "optimize database", errors.SlogError(err))
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "optimized database")
}

func (s *Scheduler) prune(ctx context.Context) {
	if n := s.pruner.Prune(s.cfg.IdleTimeout); n > 0 {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "pruned idle tables", slog.Int("tables", n))
	}
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, "scheduler stopped")
}
