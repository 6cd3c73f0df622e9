package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Runner is the batch job the scheduler triggers periodically.
type Runner interface {
	Run(ctx context.Context) error
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error { return f(ctx) }

// Scheduler fires the match generation batch on a fixed interval. Ticks
// that arrive while a run is still executing are dropped.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	log      *zap.Logger
	running  atomic.Bool
}

func New(runner Runner, interval time.Duration, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		runner:   runner,
		interval: interval,
		log:      log,
	}
}

// Start runs the scheduling loop until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.trigger(ctx)
		}
	}
}

func (s *Scheduler) trigger(ctx context.Context) {
	if s.running.Swap(true) {
		s.log.Warn("previous run still executing, skipping tick")
		return
	}
	defer s.running.Store(false)

	if err := s.runner.Run(ctx); err != nil {
		s.log.Error("scheduled generation run failed", zap.Error(err))
	}
}
