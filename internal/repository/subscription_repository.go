package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/snowflake"
)

type SubscriptionRepository interface {
	// GetByUserID returns nil when the user has no subscription record.
	GetByUserID(ctx context.Context, userID int64) (*model.Subscription, error)
	GetByCustomerID(ctx context.Context, customerID string) (*model.Subscription, error)
	// Upsert creates or replaces the single subscription of sub.UserID.
	Upsert(ctx context.Context, sub model.Subscription) (model.Subscription, error)
}

type subscriptionRepository struct {
	db dbtx
}

func NewSubscriptionRepository(db dbtx) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

const subscriptionColumns = `id, user_id, plan_id, status, billing_interval, customer_id, external_id, current_period_end, cancel_at_period_end, created_at, updated_at`

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*model.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = ?`, userID)
	return r.scanOptional(row)
}

func (r *subscriptionRepository) GetByCustomerID(ctx context.Context, customerID string) (*model.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE customer_id = ?`, customerID)
	return r.scanOptional(row)
}

func (r *subscriptionRepository) scanOptional(row *sql.Row) (*model.Subscription, error) {
	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &sub, nil
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	now := time.Now().UTC()
	if sub.BillingInterval == "" {
		sub.BillingInterval = model.IntervalMonth
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO subscriptions (id, user_id, plan_id, status, billing_interval, customer_id, external_id, current_period_end, cancel_at_period_end, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   plan_id = excluded.plan_id,
		   status = excluded.status,
		   billing_interval = excluded.billing_interval,
		   customer_id = COALESCE(excluded.customer_id, subscriptions.customer_id),
		   external_id = COALESCE(excluded.external_id, subscriptions.external_id),
		   current_period_end = excluded.current_period_end,
		   cancel_at_period_end = excluded.cancel_at_period_end,
		   updated_at = excluded.updated_at`,
		snowflake.NextID(),
		sub.UserID,
		sub.PlanID,
		sub.Status,
		sub.BillingInterval,
		nullableString(sub.CustomerID),
		nullableString(sub.ExternalID),
		nullableTime(sub.CurrentPeriodEnd),
		boolToInt(sub.CancelAtPeriodEnd),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("upsert subscription: %w", err)
	}

	saved, err := r.GetByUserID(ctx, sub.UserID)
	if err != nil {
		return model.Subscription{}, err
	}
	if saved == nil {
		return model.Subscription{}, fmt.Errorf("upsert subscription: %w", sql.ErrNoRows)
	}
	return *saved, nil
}

func scanSubscription(row rowScanner) (model.Subscription, error) {
	var sub model.Subscription
	var customerID, externalID, periodEnd sql.NullString
	var cancel int
	var createdAt, updatedAt string
	if err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.PlanID,
		&sub.Status,
		&sub.BillingInterval,
		&customerID,
		&externalID,
		&periodEnd,
		&cancel,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.Subscription{}, err
	}
	sub.CustomerID = stringPtr(customerID)
	sub.ExternalID = stringPtr(externalID)
	sub.CurrentPeriodEnd = parseTimePtr(periodEnd)
	sub.CancelAtPeriodEnd = cancel == 1
	sub.CreatedAt, _ = parseTime(createdAt)
	sub.UpdatedAt, _ = parseTime(updatedAt)
	return sub, nil
}
