package jobs

import (
	"context"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

type countingOptimizer struct {
	calls atomic.Int32
	err   error
}

func (o *countingOptimizer) Optimize(context.Context) error {
	o.calls.Add(1)
	return o.err
}

type countingPruner struct {
	calls   atomic.Int32
	maxIdle atomic.Int64
}

func (p *countingPruner) Prune(maxIdle time.Duration) int {
	p.calls.Add(1)
	p.maxIdle.Store(int64(maxIdle))
	return 1
}

func TestScheduler(t *testing.T) {
	optimizer := &countingOptimizer{err: errors.New("disk I/O error")}
	pruner := &countingPruner{}
	cfg := Config{OptimizeSpec: "@every 1s", PruneSpec: "@every 1s", IdleTimeout: time.Minute}
	s := NewScheduler(testhelpers.NewTestLogger(t), optimizer, pruner, cfg)

	require.NoError(t, s.Start(context.Background()))
	require.Eventually(t, func() bool {
		return optimizer.calls.Load() > 0 && pruner.calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)
	s.Stop()

	require.Equal(t, int64(time.Minute), pruner.maxIdle.Load())
}

func TestScheduler_invalidSpec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PruneSpec = "every now and then"
	s := NewScheduler(testhelpers.NewTestLogger(t), &countingOptimizer{}, &countingPruner{}, cfg)
	require.Error(t, s.Start(context.Background()))
}
