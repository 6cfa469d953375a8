package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mkhandekar/restock-tracker/internal/store"
)

// jobNameReconcile is the job_runs name for the periodic reconcile pass.
const jobNameReconcile = "reconcile"

// Scheduler runs reconciliation passes on a fixed interval and records
// each run in the job_runs table.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that reconciles every interval.
func NewScheduler(
	eng *Engine,
	s store.Store,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:   c,
		engine: eng,
		store:  s,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+interval.String(),
		sched.runReconcile,
	); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running scheduled tasks.
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

func (s *Scheduler) runReconcile() {
	ctx := context.Background()
	s.log.Info("scheduled reconcile starting")

	runID, err := s.store.InsertJobRun(ctx, jobNameReconcile)
	if err != nil {
		// Bookkeeping failure should not block the pass itself.
		s.log.Error("recording job run failed", "error", err)
	}

	result, err := s.engine.Reconcile(ctx)

	status := "success"
	errText := ""
	rows := 0

	switch {
	case errors.Is(err, ErrPassInProgress):
		// A manually triggered pass is still running; skip this tick.
		status = "skipped"
		s.log.Warn("scheduled reconcile skipped, pass in progress")
	case err != nil:
		status = "error"
		errText = err.Error()
		s.log.Error("scheduled reconcile failed", "error", err)
	default:
		rows = result.Updated + result.Added
	}

	if runID == "" {
		return
	}
	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Error("completing job run failed", "run_id", runID, "error", err)
	}
}
