package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/cogniflow/cogniflow/internal/logger"
	"github.com/cogniflow/cogniflow/internal/models"
	"github.com/cogniflow/cogniflow/internal/progress"
	"github.com/cogniflow/cogniflow/internal/repository"
)

// progressRepository stores each progress record as a JSON document plus
// denormalized xp, level and current_streak columns for leaderboard queries.
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress record: user_id=%s", userID)

	var data []byte
	err := r.db.QueryRowContext(ctx, `
SELECT data
FROM progress_records
WHERE user_id = ?
`, userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("progress record not found: user_id=%s", userID)
		return nil, repository.ErrNotFound
	}
	if err != nil {
		log.Error("failed to get progress record: %v", err)
		return nil, err
	}

	var rec models.UserProgress
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Error("failed to decode progress record for %s: %v", userID, err)
		return nil, err
	}
	return &rec, nil
}

func (r *progressRepository) Put(ctx context.Context, rec *models.UserProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("storing progress record: user_id=%s xp=%d", rec.UserID, rec.XP)

	data, err := json.Marshal(rec)
	if err != nil {
		log.Error("failed to encode progress record for %s: %v", rec.UserID, err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO progress_records (user_id, data, xp, level, current_streak, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    data = excluded.data,
    xp = excluded.xp,
    level = excluded.level,
    current_streak = excluded.current_streak,
    updated_at = excluded.updated_at
`, rec.UserID, data, rec.XP, rec.Level, rec.Streak.CurrentStreak, rec.UpdatedAt)
	if err != nil {
		log.Error("failed to store progress record: %v", err)
		return err
	}
	return nil
}

func (r *progressRepository) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("querying leaderboard: limit=%d", limit)

	if limit <= 0 {
		limit = 10
	}

	// rowid keeps equal-XP users in insertion order so ranks are stable.
	query := sqlBuilder.Select(
		"p.user_id", "u.name", "u.standard", "p.xp", "p.level", "p.current_streak",
	).From("progress_records p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.xp DESC", "p.rowid ASC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Standard, &e.XP, &e.Level, &e.CurrentStreak); err != nil {
			log.Error("failed to scan leaderboard row: %v", err)
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}

	log.Debug("leaderboard has %d entries", len(entries))
	return entries, rows.Err()
}

// Reindex rebuilds the denormalized columns from the JSON documents and
// returns how many rows were out of sync.
func (r *progressRepository) Reindex(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("reindexing progress records")

	type row struct {
		userID        string
		xp            int
		level         int
		currentStreak int
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT user_id, data, xp, level, current_streak
FROM progress_records
`)
	if err != nil {
		log.Error("failed to read progress records: %v", err)
		return 0, err
	}

	var stale []row
	for rows.Next() {
		var (
			userID string
			data   []byte
			stored row
		)
		if err := rows.Scan(&userID, &data, &stored.xp, &stored.level, &stored.currentStreak); err != nil {
			rows.Close()
			log.Error("failed to scan progress row: %v", err)
			return 0, err
		}

		var rec models.UserProgress
		if err := json.Unmarshal(data, &rec); err != nil {
			rows.Close()
			log.Error("failed to decode progress record for %s: %v", userID, err)
			return 0, err
		}

		want := row{
			userID:        userID,
			xp:            rec.XP,
			level:         progress.ComputeLevel(rec.XP),
			currentStreak: rec.Streak.CurrentStreak,
		}
		if want.xp != stored.xp || want.level != stored.level || want.currentStreak != stored.currentStreak {
			stale = append(stale, want)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	if len(stale) == 0 {
		log.Debug("all progress records in sync")
		return 0, nil
	}

	err = tx(ctx, r.db, func(tx *sql.Tx) error {
		for _, s := range stale {
			if _, err := tx.ExecContext(ctx, `
UPDATE progress_records
SET xp = ?, level = ?, current_streak = ?, updated_at = ?
WHERE user_id = ?
`, s.xp, s.level, s.currentStreak, time.Now().UTC(), s.userID); err != nil {
				log.Error("failed to reindex record for %s: %v", s.userID, err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("reindexed %d stale progress records", len(stale))
	return len(stale), nil
}
