package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_Upsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSubscriptionRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})

	none, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, none)

	customer := "cus_123"
	end := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	sub, err := repo.Upsert(ctx, model.Subscription{
		UserID:           user.ID,
		PlanID:           "pro",
		Status:           model.SubscriptionActive,
		CustomerID:       &customer,
		CurrentPeriodEnd: &end,
	})
	require.NoError(t, err)
	require.Equal(t, model.IntervalMonth, sub.BillingInterval)
	require.True(t, sub.Entitled())

	// Missing customer id keeps the stored one.
	updated, err := repo.Upsert(ctx, model.Subscription{
		UserID:            user.ID,
		PlanID:            "pro",
		Status:            model.SubscriptionCanceled,
		BillingInterval:   model.IntervalYear,
		CancelAtPeriodEnd: true,
	})
	require.NoError(t, err)
	require.Equal(t, sub.ID, updated.ID)
	require.Equal(t, customer, *updated.CustomerID)
	require.True(t, updated.CancelAtPeriodEnd)
	require.False(t, updated.Entitled())

	byCustomer, err := repo.GetByCustomerID(ctx, customer)
	require.NoError(t, err)
	require.NotNil(t, byCustomer)
	require.Equal(t, user.ID, byCustomer.UserID)
}

func TestUsageRepository_CountSince(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUsageRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})

	monthStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, user.ID, model.UsageArticle, monthStart.Add(-time.Hour)))
	require.NoError(t, repo.Record(ctx, user.ID, model.UsageArticle, monthStart))
	require.NoError(t, repo.Record(ctx, user.ID, model.UsageArticle, monthStart.Add(500*time.Millisecond)))
	require.NoError(t, repo.Record(ctx, user.ID, model.UsageKeywordResearch, monthStart.Add(time.Hour)))

	count, err := repo.CountSince(ctx, user.ID, model.UsageArticle, monthStart)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestUsageRepository_ReserveStopsAtLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUsageRepository(db)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, model.User{})

	monthStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	now := monthStart.Add(24 * time.Hour)
	require.NoError(t, repo.Record(ctx, user.ID, model.UsageArticle, monthStart.Add(-time.Hour)))

	first, ok, err := repo.Reserve(ctx, user.ID, model.UsageArticle, now, monthStart, 2)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = repo.Reserve(ctx, user.ID, model.UsageArticle, now, monthStart, 2)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = repo.Reserve(ctx, user.ID, model.UsageArticle, now, monthStart, 2)
	require.NoError(t, err)
	require.False(t, ok)

	// A refunded reservation frees its slot.
	require.NoError(t, repo.Delete(ctx, first))
	_, ok, err = repo.Reserve(ctx, user.ID, model.UsageArticle, now, monthStart, 2)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = repo.Reserve(ctx, user.ID, model.UsageArticle, now, monthStart, 0)
	require.NoError(t, err)
	require.True(t, ok)

	count, err := repo.CountSince(ctx, user.ID, model.UsageArticle, monthStart)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestContactRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	ip := "10.0.0.1"
	msg, err := repo.Create(ctx, model.ContactMessage{Name: "Ann", Email: "ann@example.com", Message: "Hi", RemoteIP: &ip})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.ContactMessage{Name: "Ben", Email: "ben@example.com", Message: "Yo"})
	require.NoError(t, err)

	require.NoError(t, repo.MarkHandled(ctx, msg.ID, true))
	require.ErrorIs(t, repo.MarkHandled(ctx, 1, true), sql.ErrNoRows)

	handled := false
	open, err := repo.List(ctx, repository.ContactListFilter{Handled: &handled})
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, "Ben", open[0].Name)

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.True(t, got.Handled)
	require.Equal(t, ip, *got.RemoteIP)
}
