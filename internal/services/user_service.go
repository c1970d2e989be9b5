package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cogniflow/cogniflow/internal/errors"
	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/progress"
	"github.com/cogniflow/cogniflow/internal/repository"
)

// RegisterInput carries a new account request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Standard string
	Grade    string
}

// UserService handles account business logic
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

type userService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	now          func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository) UserService {
	return NewUserServiceWithClock(userRepo, progressRepo, time.Now)
}

// NewUserServiceWithClock creates a UserService with a fixed clock source.
func NewUserServiceWithClock(userRepo repository.UserRepository, progressRepo repository.ProgressRepository, now func() time.Time) UserService {
	return &userService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		now:          now,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("registering user: email=%s", in.Email)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, errors.NewValidationError("email", "must be a valid email address")
	}
	if in.Password == "" {
		return nil, errors.NewValidationError("password", "cannot be empty")
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, errors.NewConflictError("email already registered")
	} else if !stderrors.Is(err, repository.ErrNotFound) {
		log.Error("failed to check existing email: %v", err)
		return nil, errors.NewPersistenceError("read", err)
	}

	now := s.now()
	user := models.User{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Password:   in.Password,
		Standard:   in.Standard,
		Grade:      in.Grade,
		JoinDate:   now,
		LastActive: now,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		log.Error("failed to insert user: %v", err)
		return nil, errors.NewPersistenceError("write", err)
	}

	// Every account starts with a zeroed progress record so reads never need
	// a missing-record fallback.
	if err := s.progressRepo.Put(ctx, progress.NewRecord(user.ID, now)); err != nil {
		log.Error("failed to create progress record for %s: %v", user.ID, err)
		return nil, errors.NewPersistenceError("write", err)
	}

	log.Info("user registered: id=%s email=%s", user.ID, user.Email)
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	log.Debug("authenticating user: email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		log.Error("failed to look up user: %v", err)
		return nil, errors.NewPersistenceError("read", err)
	}

	if user.Password != password {
		log.Debug("password mismatch: email=%s", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := s.userRepo.UpdateLastActive(ctx, user.ID, s.now()); err != nil {
		log.Error("failed to update last active for %s: %v", user.ID, err)
	}

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting user: id=%s", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewNotFoundError("user", id)
		}
		log.Error("failed to get user: %v", err)
		return nil, errors.NewPersistenceError("read", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing users: standard=%s", filter.Standard)

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return nil, errors.NewPersistenceError("read", err)
	}
	return users, nil
}
