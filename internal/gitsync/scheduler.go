package gitsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs a syncer periodically (serve mode).
type Scheduler struct {
	scheduler gocron.Scheduler
	syncer    *Syncer
	onUpdate  func(Outcome)
}

// NewScheduler creates a scheduler around syncer. onUpdate, if non-nil, is
// invoked after every successful sync that changed the working copy.
func NewScheduler(syncer *Syncer, onUpdate func(Outcome)) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s, syncer: syncer, onUpdate: onUpdate}, nil
}

// Start schedules the periodic sync and begins running it.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.run, ctx),
		gocron.WithName("content-sync"),
	)
	if err != nil {
		return fmt.Errorf("schedule content sync: %w", err)
	}

	s.scheduler.Start()
	slog.Info("content sync scheduled", "interval", interval.String())
	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) run(ctx context.Context) {
	outcome, err := s.syncer.Sync(ctx)
	if err != nil {
		slog.Error("scheduled content sync failed", "error", err)
		return
	}
	if outcome != OutcomeUpToDate && s.onUpdate != nil {
		s.onUpdate(outcome)
	}
}
