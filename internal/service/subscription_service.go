package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/logger"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/repository"
)

// BillingGateway creates hosted billing sessions. *billing.Client implements it.
type BillingGateway interface {
	CreateCheckoutSession(ctx context.Context, req billing.CheckoutRequest) (string, error)
	CreatePortalSession(ctx context.Context, req billing.PortalRequest) (string, error)
}

// Usage is the current month's consumption of one quota.
type Usage struct {
	Used  int `json:"used"`
	Limit int `json:"limit"` // 0 means unlimited
}

// SubscriptionView is a user's subscription together with the plan it grants.
type SubscriptionView struct {
	Subscription model.Subscription
	Plan         model.Plan
	Usage        map[string]Usage
	PeriodStart  time.Time
}

type SubscriptionService interface {
	ListPlans(ctx context.Context) []model.Plan
	// GetSubscription returns the user's subscription. Users without a
	// record are on the free plan.
	GetSubscription(ctx context.Context, userID int64) (SubscriptionView, error)
	CreateCheckout(ctx context.Context, user model.User, planID, interval string) (string, error)
	CreatePortalSession(ctx context.Context, userID int64) (string, error)
	// HandleBillingEvent verifies and applies a signed gateway event.
	HandleBillingEvent(ctx context.Context, payload []byte, signature string) error
	QuotaService
	// SetPlan assigns a plan directly, bypassing the gateway.
	SetPlan(ctx context.Context, userID int64, planID, status string) (model.Subscription, error)
}

type subscriptionService struct {
	subs          repository.SubscriptionRepository
	usage         repository.UsageRepository
	users         repository.UserRepository
	catalog       *billing.Catalog
	gateway       BillingGateway
	webhookSecret string
	appURL        string
	now           func() time.Time
}

func NewSubscriptionService(
	subs repository.SubscriptionRepository,
	usage repository.UsageRepository,
	users repository.UserRepository,
	catalog *billing.Catalog,
	gateway BillingGateway,
	webhookSecret, appURL string,
) SubscriptionService {
	return &subscriptionService{
		subs:          subs,
		usage:         usage,
		users:         users,
		catalog:       catalog,
		gateway:       gateway,
		webhookSecret: webhookSecret,
		appURL:        appURL,
		now:           time.Now,
	}
}

func (s *subscriptionService) ListPlans(context.Context) []model.Plan {
	return s.catalog.Plans()
}

// monthStart is the beginning of the current quota period.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (s *subscriptionService) current(ctx context.Context, userID int64) (model.Subscription, model.Plan, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return model.Subscription{}, model.Plan{}, fmt.Errorf("get subscription: %w", err)
	}
	if sub == nil {
		return model.Subscription{
			UserID:          userID,
			PlanID:          model.FreePlanID,
			Status:          model.SubscriptionActive,
			BillingInterval: model.IntervalMonth,
		}, s.catalog.Free(), nil
	}

	plan, ok := s.catalog.Get(sub.PlanID)
	if !ok || !sub.Entitled() {
		plan = s.catalog.Free()
	}
	return *sub, plan, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, userID int64) (SubscriptionView, error) {
	sub, plan, err := s.current(ctx, userID)
	if err != nil {
		return SubscriptionView{}, err
	}
	start := monthStart(s.now())
	view := SubscriptionView{
		Subscription: sub,
		Plan:         plan,
		Usage:        make(map[string]Usage, 2),
		PeriodStart:  start,
	}
	for _, kind := range []string{model.UsageKeywordResearch, model.UsageArticle} {
		used, err := s.usage.CountSince(ctx, userID, kind, start)
		if err != nil {
			return SubscriptionView{}, fmt.Errorf("count usage: %w", err)
		}
		view.Usage[kind] = Usage{Used: used, Limit: plan.Limits.Limit(kind)}
	}
	return view, nil
}

func (s *subscriptionService) ReserveUsage(ctx context.Context, userID int64, kind string) (int64, error) {
	_, plan, err := s.current(ctx, userID)
	if err != nil {
		return 0, err
	}
	limit := plan.Limits.Limit(kind)
	now := s.now().UTC()
	start := monthStart(now)

	id, ok, err := s.usage.Reserve(ctx, userID, kind, now, start, limit)
	if err != nil {
		return 0, fmt.Errorf("reserve usage: %w", err)
	}
	if !ok {
		used, err := s.usage.CountSince(ctx, userID, kind, start)
		if err != nil {
			return 0, fmt.Errorf("count usage: %w", err)
		}
		logger.Info("quota exhausted", "module", "service", "action", "reserve", "resource", "usage", "result", "rejected", "user_id", userID, "kind", kind, "limit", limit)
		return 0, &QuotaError{Kind: kind, Limit: limit, Used: used}
	}
	return id, nil
}

func (s *subscriptionService) ReleaseUsage(ctx context.Context, usageID int64) error {
	if err := s.usage.Delete(ctx, usageID); err != nil {
		return fmt.Errorf("release usage: %w", err)
	}
	return nil
}

func (s *subscriptionService) CreateCheckout(ctx context.Context, user model.User, planID, interval string) (string, error) {
	plan, ok := s.catalog.Get(planID)
	if !ok {
		return "", invalidf("unknown plan %q", planID)
	}
	if plan.ID == model.FreePlanID {
		return "", invalidf("the free plan needs no checkout")
	}
	if interval == "" {
		interval = model.IntervalMonth
	}
	if !model.IsValidInterval(interval) {
		return "", invalidf("unknown billing interval %q", interval)
	}

	req := billing.CheckoutRequest{
		UserID:     strconv.FormatInt(user.ID, 10),
		Email:      user.Email,
		PlanID:     plan.ID,
		Interval:   interval,
		SuccessURL: s.appURL + "/account/billing?checkout=success",
		CancelURL:  s.appURL + "/pricing?checkout=cancelled",
	}
	if sub, err := s.subs.GetByUserID(ctx, user.ID); err != nil {
		return "", fmt.Errorf("get subscription: %w", err)
	} else if sub != nil && sub.CustomerID != nil {
		req.CustomerID = *sub.CustomerID
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		logger.Warn("checkout session failed", "module", "service", "action", "create", "resource", "billing", "result", "failed", "user_id", user.ID, "plan", plan.ID, "error", err)
		return "", &UpstreamError{Backend: "billing", Err: err}
	}
	logger.Info("checkout session created", "module", "service", "action", "create", "resource", "billing", "result", "ok", "user_id", user.ID, "plan", plan.ID, "interval", interval)
	return url, nil
}

func (s *subscriptionService) CreatePortalSession(ctx context.Context, userID int64) (string, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get subscription: %w", err)
	}
	if sub == nil || sub.CustomerID == nil || *sub.CustomerID == "" {
		return "", invalidf("no billing account yet")
	}
	url, err := s.gateway.CreatePortalSession(ctx, billing.PortalRequest{
		CustomerID: *sub.CustomerID,
		ReturnURL:  s.appURL + "/account/billing",
	})
	if err != nil {
		logger.Warn("portal session failed", "module", "service", "action", "create", "resource", "billing", "result", "failed", "user_id", userID, "error", err)
		return "", &UpstreamError{Backend: "billing", Err: err}
	}
	return url, nil
}

func (s *subscriptionService) HandleBillingEvent(ctx context.Context, payload []byte, signature string) error {
	if s.webhookSecret == "" {
		return fmt.Errorf("%w: billing webhook secret not configured", ErrForbidden)
	}
	ev, err := billing.ParseEvent(payload, signature, s.webhookSecret, s.now())
	if err != nil {
		if errors.Is(err, billing.ErrBadSignature) || errors.Is(err, billing.ErrMissingSignature) || errors.Is(err, billing.ErrStaleSignature) {
			logger.Warn("billing event rejected", "module", "service", "action", "verify", "resource", "billing", "result", "failed", "error", err)
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	switch ev.Type {
	case billing.EventCheckoutCompleted, billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
	default:
		logger.Debug("billing event ignored", "module", "service", "action", "verify", "resource", "billing", "result", "skipped", "event_id", ev.ID, "type", ev.Type)
		return nil
	}

	userID, err := s.resolveEventUser(ctx, ev.Data)
	if err != nil {
		return err
	}
	existing, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get subscription: %w", err)
	}

	sub := model.Subscription{UserID: userID, PlanID: ev.Data.PlanID, Status: ev.Data.Status, BillingInterval: ev.Data.Interval}
	if existing != nil {
		if sub.PlanID == "" {
			sub.PlanID = existing.PlanID
		}
		if sub.BillingInterval == "" {
			sub.BillingInterval = existing.BillingInterval
		}
	}
	if ev.Type == billing.EventSubscriptionDeleted {
		sub.Status = model.SubscriptionCanceled
	}
	if sub.Status == "" {
		sub.Status = model.SubscriptionActive
	}
	if !model.IsValidSubscriptionStatus(sub.Status) {
		return invalidf("unknown subscription status %q", sub.Status)
	}
	if _, ok := s.catalog.Get(sub.PlanID); !ok {
		return invalidf("unknown plan %q", sub.PlanID)
	}
	if sub.BillingInterval != "" && !model.IsValidInterval(sub.BillingInterval) {
		return invalidf("unknown billing interval %q", sub.BillingInterval)
	}
	if ev.Data.CustomerID != "" {
		sub.CustomerID = &ev.Data.CustomerID
	}
	if ev.Data.SubscriptionID != "" {
		sub.ExternalID = &ev.Data.SubscriptionID
	}
	if ev.Data.CurrentPeriodEnd > 0 {
		end := time.Unix(ev.Data.CurrentPeriodEnd, 0).UTC()
		sub.CurrentPeriodEnd = &end
	}
	sub.CancelAtPeriodEnd = ev.Data.CancelAtPeriodEnd

	if _, err := s.subs.Upsert(ctx, sub); err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	logger.Info("billing event applied", "module", "service", "action", "update", "resource", "subscription", "result", "ok", "event_id", ev.ID, "type", ev.Type, "user_id", userID, "plan", sub.PlanID, "status", sub.Status)
	return nil
}

func (s *subscriptionService) resolveEventUser(ctx context.Context, data billing.EventData) (int64, error) {
	if data.UserID != "" {
		id, err := strconv.ParseInt(data.UserID, 10, 64)
		if err != nil {
			return 0, invalidf("bad user id in event")
		}
		if _, err := s.users.GetByID(ctx, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, fmt.Errorf("%w: event user", ErrNotFound)
			}
			return 0, fmt.Errorf("get user: %w", err)
		}
		return id, nil
	}
	if data.CustomerID != "" {
		sub, err := s.subs.GetByCustomerID(ctx, data.CustomerID)
		if err != nil {
			return 0, fmt.Errorf("get subscription by customer: %w", err)
		}
		if sub != nil {
			return sub.UserID, nil
		}
	}
	return 0, fmt.Errorf("%w: event has no known user", ErrNotFound)
}

func (s *subscriptionService) SetPlan(ctx context.Context, userID int64, planID, status string) (model.Subscription, error) {
	if _, ok := s.catalog.Get(planID); !ok {
		return model.Subscription{}, invalidf("unknown plan %q", planID)
	}
	if status == "" {
		status = model.SubscriptionActive
	}
	if !model.IsValidSubscriptionStatus(status) {
		return model.Subscription{}, invalidf("unknown subscription status %q", status)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Subscription{}, ErrNotFound
		}
		return model.Subscription{}, fmt.Errorf("get user: %w", err)
	}

	sub := model.Subscription{UserID: userID, PlanID: planID, Status: status}
	if existing, err := s.subs.GetByUserID(ctx, userID); err != nil {
		return model.Subscription{}, fmt.Errorf("get subscription: %w", err)
	} else if existing != nil {
		sub.BillingInterval = existing.BillingInterval
		sub.CurrentPeriodEnd = existing.CurrentPeriodEnd
		sub.CancelAtPeriodEnd = existing.CancelAtPeriodEnd
	}

	saved, err := s.subs.Upsert(ctx, sub)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("save subscription: %w", err)
	}
	logger.Info("plan assigned", "module", "service", "action", "update", "resource", "subscription", "result", "ok", "user_id", userID, "plan", planID, "status", status)
	return saved, nil
}
