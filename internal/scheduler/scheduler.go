// Package scheduler triggers bot runs on an internal cron schedule.
// Deployments that rely on an external scheduler hitting the task
// endpoint leave this disabled.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"rainbot/internal/logging"
)

// RunFunc executes one bot run
type RunFunc func(ctx context.Context) error

// Scheduler wraps a cron runner around the bot
type Scheduler struct {
	cron *cron.Cron
	spec string
}

// New creates a scheduler for the given cron spec
func New(spec string, run RunFunc) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if err := run(context.Background()); err != nil {
			logging.Error("Scheduled tweet run failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}

	return &Scheduler{cron: c, spec: spec}, nil
}

// Start begins triggering runs
func (s *Scheduler) Start() {
	logging.Info("Internal scheduler started with spec %q", s.spec)
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logging.Info("Internal scheduler stopped")
}
