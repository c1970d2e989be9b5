package worker

import (
	"context"

	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/repository"
)

// ReindexJob rebuilds the denormalized leaderboard columns from the stored
// progress documents.
type ReindexJob struct {
	ProgressRepo repository.ProgressRepository
}

func (j *ReindexJob) Name() string { return "reindex_progress" }

func (j *ReindexJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	n, err := j.ProgressRepo.Reindex(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info("repaired %d stale progress records", n)
	} else {
		log.Debug("progress records already in sync")
	}
	return nil
}
