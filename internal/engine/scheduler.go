package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs catalog evaluation on a fixed interval.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that evaluates the catalog every
// interval.
func NewScheduler(
	eng *Engine,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+interval.String(),
		s.runEvaluation,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled evaluations.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runEvaluation() {
	ctx := context.Background()
	s.log.Info("scheduled evaluation starting")
	sent, err := s.engine.EvaluateAll(ctx)
	if err != nil {
		s.log.Error("scheduled evaluation failed", "error", err)
		return
	}
	s.log.Info("scheduled evaluation finished", "alerts_sent", sent)
}
