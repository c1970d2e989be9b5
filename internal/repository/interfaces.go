package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cogniflow/cogniflow/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository handles account data access
type UserRepository interface {
	Insert(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateLastActive(ctx context.Context, id string, t time.Time) error
}

// ProgressRepository handles progress record data access
type ProgressRepository interface {
	Get(ctx context.Context, userID string) (*models.UserProgress, error)
	Put(ctx context.Context, rec *models.UserProgress) error
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	Reindex(ctx context.Context) (int, error)
}
