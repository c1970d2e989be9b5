// Package scheduler runs recurring maintenance: a nightly reindex of the
// denormalized leaderboard columns.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/worker"
)

// Scheduler manages scheduled maintenance tasks.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pool      *worker.Pool
	reindexAt string
	log       *logger.Logger
}

// New creates a scheduler that submits maintenance jobs to the given pool.
// reindexAt is a local "HH:MM" time of day.
func New(pool *worker.Pool, reindexAt string) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		pool:      pool,
		reindexAt: reindexAt,
		log:       logger.Default().WithPrefix("scheduler"),
	}
}

// Start registers the jobs and begins running them in the background.
func (s *Scheduler) Start(reindexJob worker.Job) error {
	_, err := s.scheduler.Every(1).Day().At(s.reindexAt).Do(func() {
		if !s.pool.TrySubmit(reindexJob) {
			s.log.Warn("maintenance queue full, skipping scheduled %s", reindexJob.Name())
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Info("scheduled %s daily at %s", reindexJob.Name(), s.reindexAt)
	return nil
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("scheduler stopped")
}
