package services

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/cogniflow/cogniflow/internal/errors"
	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/progress"
	"github.com/cogniflow/cogniflow/internal/repository"
)

// ProgressService handles gamification business logic
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) (*models.UserProgress, error)
	RecordActivity(ctx context.Context, userID string, in progress.ActivityInput) (*models.UserProgress, progress.Outcome, error)
	RecordCheckin(ctx context.Context, userID string) (models.CheckinRecord, bool, error)
	RecordGoalProgress(ctx context.Context, userID string, kind models.GoalKind, amount int) (*models.UserProgress, error)
	SpendCoins(ctx context.Context, userID string, amount int, reason string) (*models.UserProgress, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	Reindex(ctx context.Context) (int, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository

	// now is swapped in tests to pin calendar-day logic.
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewProgressService creates a new ProgressService
func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return NewProgressServiceWithClock(progressRepo, time.Now)
}

// NewProgressServiceWithClock creates a ProgressService with a fixed clock
// source, so calendar-day behavior can be driven in tests.
func NewProgressServiceWithClock(progressRepo repository.ProgressRepository, now func() time.Time) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		now:          now,
		locks:        make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing mutations for one user. Concurrent
// requests for different users proceed in parallel.
func (s *progressService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// withRecord runs fn against the user's record under its lock and persists the
// result. fn sees a freshly loaded record, so updates are read-modify-write
// atomic per user.
func (s *progressService) withRecord(ctx context.Context, userID string, fn func(rec *models.UserProgress) error) (*models.UserProgress, error) {
	if userID == "" {
		return nil, errors.NewValidationError("userId", "cannot be empty")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("progress record", userID)
		}
		return nil, errors.NewPersistenceError("read", err)
	}

	if err := fn(rec); err != nil {
		return nil, err
	}

	if err := s.progressRepo.Put(ctx, rec); err != nil {
		return nil, errors.NewPersistenceError("write", err)
	}
	return rec, nil
}

func (s *progressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting progress: user_id=%s", userID)

	if userID == "" {
		return nil, errors.NewValidationError("userId", "cannot be empty")
	}

	rec, err := s.progressRepo.Get(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("progress record", userID)
		}
		log.Error("failed to get progress: %v", err)
		return nil, errors.NewPersistenceError("read", err)
	}
	return rec, nil
}

func (s *progressService) RecordActivity(ctx context.Context, userID string, in progress.ActivityInput) (*models.UserProgress, progress.Outcome, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording activity: user_id=%s type=%s", userID, in.Type)

	if err := validateActivity(in); err != nil {
		return nil, progress.Outcome{}, err
	}

	var out progress.Outcome
	rec, err := s.withRecord(ctx, userID, func(rec *models.UserProgress) error {
		out = progress.ApplyActivity(rec, in, s.now())
		return nil
	})
	if err != nil {
		return nil, progress.Outcome{}, err
	}

	log.Info("activity recorded: user_id=%s type=%s xp=%d coins=%d", userID, in.Type, out.XPEarned, out.CoinsEarned)
	return rec, out, nil
}

func validateActivity(in progress.ActivityInput) error {
	switch in.Type {
	case models.ActivityQuiz:
		if in.Score < 0 {
			return errors.NewValidationError("score", "cannot be negative")
		}
		if in.TotalQuestions < 0 {
			return errors.NewValidationError("totalQuestions", "cannot be negative")
		}
	case models.ActivityFlashcards:
		if in.CardsStudied < 0 {
			return errors.NewValidationError("cardsStudied", "cannot be negative")
		}
		if in.KnownCards < 0 {
			return errors.NewValidationError("knownCards", "cannot be negative")
		}
		if in.KnownCards > in.CardsStudied {
			return errors.NewValidationError("knownCards", "cannot exceed cardsStudied")
		}
	case models.ActivityGame:
		if in.Score < 0 {
			return errors.NewValidationError("score", "cannot be negative")
		}
	default:
		return errors.NewValidationError("type", "must be quiz, flashcards or game")
	}
	if in.TimeSpent < 0 {
		return errors.NewValidationError("timeSpent", "cannot be negative")
	}
	return nil
}

func (s *progressService) RecordCheckin(ctx context.Context, userID string) (models.CheckinRecord, bool, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording check-in: user_id=%s", userID)

	var (
		checkin models.CheckinRecord
		created bool
	)
	_, err := s.withRecord(ctx, userID, func(rec *models.UserProgress) error {
		checkin, created = progress.ApplyCheckin(rec, s.now())
		return nil
	})
	if err != nil {
		return models.CheckinRecord{}, false, err
	}

	if created {
		log.Info("check-in recorded: user_id=%s xp=%d", userID, checkin.XPEarned)
	} else {
		log.Debug("check-in already recorded today: user_id=%s", userID)
	}
	return checkin, created, nil
}

func (s *progressService) RecordGoalProgress(ctx context.Context, userID string, kind models.GoalKind, amount int) (*models.UserProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording goal progress: user_id=%s kind=%s amount=%d", userID, kind, amount)

	switch kind {
	case models.GoalQuizzes, models.GoalFlashcards, models.GoalGames, models.GoalStudyTime, models.GoalXPTarget:
	default:
		return nil, errors.NewValidationError("goal", "unknown goal kind")
	}
	if amount <= 0 {
		return nil, errors.NewValidationError("amount", "must be positive")
	}

	return s.withRecord(ctx, userID, func(rec *models.UserProgress) error {
		progress.ApplyGoalProgress(rec, kind, amount, s.now())
		return nil
	})
}

func (s *progressService) SpendCoins(ctx context.Context, userID string, amount int, reason string) (*models.UserProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("spending coins: user_id=%s amount=%d", userID, amount)

	if reason == "" {
		reason = "Purchase"
	}

	return s.withRecord(ctx, userID, func(rec *models.UserProgress) error {
		err := progress.ApplySpend(rec, amount, reason, s.now())
		if stderrors.Is(err, progress.ErrInvalidAmount) {
			return errors.NewValidationError("amount", "must be positive")
		}
		if stderrors.Is(err, progress.ErrInsufficientCoins) {
			return errors.NewValidationError("amount", "exceeds coin balance")
		}
		return err
	})
}

func (s *progressService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting leaderboard: limit=%d", limit)

	entries, err := s.progressRepo.Leaderboard(ctx, limit)
	if err != nil {
		log.Error("failed to get leaderboard: %v", err)
		return nil, errors.NewPersistenceError("read", err)
	}
	return entries, nil
}

func (s *progressService) Reindex(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("reindexing progress records")

	n, err := s.progressRepo.Reindex(ctx)
	if err != nil {
		log.Error("failed to reindex: %v", err)
		return 0, errors.NewPersistenceError("reindex", err)
	}
	return n, nil
}
