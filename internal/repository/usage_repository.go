package repository

import (
	"context"
	"fmt"
	"time"

	"inkwell/backend/internal/snowflake"
)

type UsageRepository interface {
	Record(ctx context.Context, userID int64, kind string, at time.Time) error
	// Reserve records one event only while fewer than limit events exist since
	// since, in a single statement. ok is false when the limit is reached.
	// A limit <= 0 always records.
	Reserve(ctx context.Context, userID int64, kind string, at, since time.Time, limit int) (id int64, ok bool, err error)
	Delete(ctx context.Context, id int64) error
	CountSince(ctx context.Context, userID int64, kind string, since time.Time) (int, error)
}

type usageRepository struct {
	db dbtx
}

func NewUsageRepository(db dbtx) UsageRepository {
	return &usageRepository{db: db}
}

func (r *usageRepository) Record(ctx context.Context, userID int64, kind string, at time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO usage_events (id, user_id, kind, created_at) VALUES (?, ?, ?, ?)`,
		snowflake.NextID(), userID, kind, formatTime(at),
	)
	if err != nil {
		return fmt.Errorf("record usage: %w", err)
	}
	return nil
}

func (r *usageRepository) Reserve(ctx context.Context, userID int64, kind string, at, since time.Time, limit int) (int64, bool, error) {
	id := snowflake.NextID()
	if limit <= 0 {
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO usage_events (id, user_id, kind, created_at) VALUES (?, ?, ?, ?)`,
			id, userID, kind, formatTime(at),
		)
		if err != nil {
			return 0, false, fmt.Errorf("reserve usage: %w", err)
		}
		return id, true, nil
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO usage_events (id, user_id, kind, created_at)
		SELECT ?, ?, ?, ?
		WHERE (
			SELECT COUNT(*) FROM usage_events
			WHERE user_id = ? AND kind = ? AND created_at >= ?
		) < ?
	`, id, userID, kind, formatTime(at), userID, kind, formatTime(since), limit)
	if err != nil {
		return 0, false, fmt.Errorf("reserve usage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("reserve usage: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return id, true, nil
}

func (r *usageRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM usage_events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete usage: %w", err)
	}
	return nil
}

func (r *usageRepository) CountSince(ctx context.Context, userID int64, kind string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM usage_events WHERE user_id = ? AND kind = ? AND created_at >= ?`,
		userID, kind, formatTime(since),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count usage: %w", err)
	}
	return count, nil
}
