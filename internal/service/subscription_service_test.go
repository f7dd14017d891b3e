package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
	"inkwell/backend/internal/repository/testutil"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

const testWebhookSecret = "whsec_test"

type subscriptionFixture struct {
	svc     service.SubscriptionService
	subs    repository.SubscriptionRepository
	usage   repository.UsageRepository
	gateway *svcmock.MockBillingGateway
	user    model.User
}

func newSubscriptionFixture(t *testing.T) subscriptionFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	catalog, err := billing.LoadCatalog("")
	require.NoError(t, err)
	gateway := svcmock.NewMockBillingGateway(gomock.NewController(t))
	subs := repository.NewSubscriptionRepository(db)
	usage := repository.NewUsageRepository(db)
	return subscriptionFixture{
		svc:     service.NewSubscriptionService(subs, usage, repository.NewUserRepository(db), catalog, gateway, testWebhookSecret, "https://app.example.com"),
		subs:    subs,
		usage:   usage,
		gateway: gateway,
		user:    testutil.SeedUser(t, db, model.User{Email: "payer@example.com"}),
	}
}

func signedEvent(t *testing.T, ev billing.Event) ([]byte, string) {
	t.Helper()
	payload, err := json.Marshal(ev)
	require.NoError(t, err)
	return payload, billing.Sign(payload, testWebhookSecret, time.Now())
}

func TestSubscriptionService_DefaultsToFree(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	view, err := f.svc.GetSubscription(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, model.FreePlanID, view.Plan.ID)
	require.Equal(t, model.SubscriptionActive, view.Subscription.Status)
	require.Equal(t, service.Usage{Used: 0, Limit: 5}, view.Usage[model.UsageKeywordResearch])
	require.Equal(t, 1, view.PeriodStart.Day())

	require.NotEmpty(t, f.svc.ListPlans(ctx))
}

func TestSubscriptionService_Quota(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	first, err := f.svc.ReserveUsage(ctx, f.user.ID, model.UsageArticle)
	require.NoError(t, err)
	_, err = f.svc.ReserveUsage(ctx, f.user.ID, model.UsageArticle)
	require.NoError(t, err)

	_, err = f.svc.ReserveUsage(ctx, f.user.ID, model.UsageArticle)
	require.ErrorIs(t, err, service.ErrQuotaExceeded)
	var qe *service.QuotaError
	require.True(t, errors.As(err, &qe))
	require.Equal(t, 2, qe.Limit)
	require.Equal(t, 2, qe.Used)

	// A refunded reservation frees its slot.
	require.NoError(t, f.svc.ReleaseUsage(ctx, first))
	_, err = f.svc.ReserveUsage(ctx, f.user.ID, model.UsageArticle)
	require.NoError(t, err)

	// Usage from last month does not count.
	require.NoError(t, f.usage.Record(ctx, f.user.ID, model.UsageKeywordResearch, time.Now().UTC().AddDate(0, -1, -1)))
	view, err := f.svc.GetSubscription(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, view.Usage[model.UsageKeywordResearch].Used)
	require.Equal(t, 2, view.Usage[model.UsageArticle].Used)

	// The business plan is unlimited.
	_, err = f.svc.SetPlan(ctx, f.user.ID, "business", "")
	require.NoError(t, err)
	_, err = f.svc.ReserveUsage(ctx, f.user.ID, model.UsageArticle)
	require.NoError(t, err)
}

func TestSubscriptionService_ReserveUsage_Concurrent(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	const attempts = 10
	var (
		mu       sync.Mutex
		granted  int
		rejected int
	)
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			_, err := f.svc.ReserveUsage(ctx, f.user.ID, model.UsageKeywordResearch)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				granted++
			case errors.Is(err, service.ErrQuotaExceeded):
				rejected++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, 5, granted)
	require.Equal(t, attempts-5, rejected)
	used, err := f.usage.CountSince(ctx, f.user.ID, model.UsageKeywordResearch, time.Now().UTC().AddDate(0, -1, 0))
	require.NoError(t, err)
	require.Equal(t, 5, used)
}

func TestSubscriptionService_SetPlan(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	sub, err := f.svc.SetPlan(ctx, f.user.ID, "pro", model.SubscriptionActive)
	require.NoError(t, err)
	require.Equal(t, "pro", sub.PlanID)

	view, err := f.svc.GetSubscription(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, "pro", view.Plan.ID)
	require.Equal(t, 100, view.Usage[model.UsageKeywordResearch].Limit)

	// A past-due subscription keeps its record but only grants the free plan.
	_, err = f.svc.SetPlan(ctx, f.user.ID, "pro", model.SubscriptionPastDue)
	require.NoError(t, err)
	view, err = f.svc.GetSubscription(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, "pro", view.Subscription.PlanID)
	require.Equal(t, model.FreePlanID, view.Plan.ID)

	_, err = f.svc.SetPlan(ctx, f.user.ID, "platinum", "")
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.SetPlan(ctx, f.user.ID, "pro", "paused")
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.SetPlan(ctx, 999, "pro", "")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubscriptionService_CreateCheckout(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	f.gateway.EXPECT().
		CreateCheckoutSession(gomock.Any(), billing.CheckoutRequest{
			UserID:     strconv.FormatInt(f.user.ID, 10),
			Email:      "payer@example.com",
			PlanID:     "pro",
			Interval:   model.IntervalYear,
			SuccessURL: "https://app.example.com/account/billing?checkout=success",
			CancelURL:  "https://app.example.com/pricing?checkout=cancelled",
		}).
		Return("https://pay.example.com/s/1", nil)

	url, err := f.svc.CreateCheckout(ctx, f.user, "pro", model.IntervalYear)
	require.NoError(t, err)
	require.Equal(t, "https://pay.example.com/s/1", url)

	_, err = f.svc.CreateCheckout(ctx, f.user, model.FreePlanID, "")
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = f.svc.CreateCheckout(ctx, f.user, "pro", "weekly")
	require.ErrorIs(t, err, service.ErrInvalid)

	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return("", &billing.GatewayError{StatusCode: 500})
	_, err = f.svc.CreateCheckout(ctx, f.user, "pro", "")
	require.ErrorIs(t, err, service.ErrUpstream)
}

func TestSubscriptionService_BillingEvents(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	payload, sig := signedEvent(t, billing.Event{
		ID:   "evt_1",
		Type: billing.EventCheckoutCompleted,
		Data: billing.EventData{
			UserID:           strconv.FormatInt(f.user.ID, 10),
			CustomerID:       "cus_1",
			SubscriptionID:   "sub_1",
			PlanID:           "pro",
			Status:           model.SubscriptionActive,
			Interval:         model.IntervalMonth,
			CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour).Unix(),
		},
	})
	require.NoError(t, f.svc.HandleBillingEvent(ctx, payload, sig))

	sub, err := f.subs.GetByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	require.Equal(t, "pro", sub.PlanID)
	require.Equal(t, "cus_1", *sub.CustomerID)
	require.NotNil(t, sub.CurrentPeriodEnd)

	// Later events may only carry the customer id.
	payload, sig = signedEvent(t, billing.Event{
		ID:   "evt_2",
		Type: billing.EventSubscriptionDeleted,
		Data: billing.EventData{CustomerID: "cus_1"},
	})
	require.NoError(t, f.svc.HandleBillingEvent(ctx, payload, sig))

	sub, err = f.subs.GetByUserID(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, model.SubscriptionCanceled, sub.Status)
	require.Equal(t, "pro", sub.PlanID)

	view, err := f.svc.GetSubscription(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, model.FreePlanID, view.Plan.ID)

	f.gateway.EXPECT().
		CreatePortalSession(gomock.Any(), billing.PortalRequest{CustomerID: "cus_1", ReturnURL: "https://app.example.com/account/billing"}).
		Return("https://pay.example.com/portal", nil)
	url, err := f.svc.CreatePortalSession(ctx, f.user.ID)
	require.NoError(t, err)
	require.Equal(t, "https://pay.example.com/portal", url)
}

func TestSubscriptionService_BillingEvents_Rejected(t *testing.T) {
	f := newSubscriptionFixture(t)
	ctx := context.Background()

	payload, sig := signedEvent(t, billing.Event{
		ID:   "evt_1",
		Type: billing.EventSubscriptionUpdated,
		Data: billing.EventData{UserID: strconv.FormatInt(f.user.ID, 10), PlanID: "pro"},
	})

	err := f.svc.HandleBillingEvent(ctx, payload, "t=1,v1=deadbeef")
	require.ErrorIs(t, err, service.ErrUnauthorized)
	err = f.svc.HandleBillingEvent(ctx, payload, "")
	require.ErrorIs(t, err, service.ErrUnauthorized)

	unknownPlan, unknownSig := signedEvent(t, billing.Event{
		ID:   "evt_2",
		Type: billing.EventSubscriptionUpdated,
		Data: billing.EventData{UserID: strconv.FormatInt(f.user.ID, 10), PlanID: "platinum"},
	})
	err = f.svc.HandleBillingEvent(ctx, unknownPlan, unknownSig)
	require.ErrorIs(t, err, service.ErrInvalid)

	ignored, ignoredSig := signedEvent(t, billing.Event{ID: "evt_3", Type: "invoice.paid"})
	require.NoError(t, f.svc.HandleBillingEvent(ctx, ignored, ignoredSig))

	_, err = f.svc.CreatePortalSession(ctx, f.user.ID)
	require.ErrorIs(t, err, service.ErrInvalid)

	require.NoError(t, f.svc.HandleBillingEvent(ctx, payload, sig))
}
