package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, u models.User) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("inserting user: id=%s email=%s", u.ID, u.Email)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, password, standard, grade, join_date, last_active)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, u.ID, u.Name, u.Email, u.Password, u.Standard, u.Grade, u.JoinDate, u.LastActive)
	if err != nil {
		log.Error("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepository) getBy(ctx context.Context, column, value string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: %s=%s", column, value)

	query, args, err := sqlBuilder.Select(
		"id", "name", "email", "password", "standard", "grade", "join_date", "last_active",
	).From("users").Where(squirrel.Eq{column: value}).ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Standard, &u.Grade, &u.JoinDate, &u.LastActive)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found: %s=%s", column, value)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("listing users: standard=%s", filter.Standard)

	query := sqlBuilder.Select(
		"id", "name", "email", "password", "standard", "grade", "join_date", "last_active",
	).From("users")

	if filter.Standard != "" {
		query = query.Where(squirrel.Eq{"standard": filter.Standard})
	}
	query = query.OrderBy("join_date ASC", "rowid ASC")

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Standard, &u.Grade, &u.JoinDate, &u.LastActive); err != nil {
			log.Error("failed to scan user row: %v", err)
			return nil, err
		}
		users = append(users, u)
	}

	log.Debug("found %d users", len(users))
	return users, rows.Err()
}

func (r *userRepository) UpdateLastActive(ctx context.Context, id string, t time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("updating last active: user_id=%s", id)

	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_active = ? WHERE id = ?`, t, id)
	if err != nil {
		log.Error("failed to update last active: %v", err)
	}
	return err
}
