package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
)

const maxBillingEventBytes = 1 << 20

type SubscriptionHandler struct {
	service service.SubscriptionService
}

func NewSubscriptionHandler(service service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

type checkoutRequest struct {
	PlanID   string `json:"planId"`
	Interval string `json:"interval"`
}

type setPlanRequest struct {
	PlanID string `json:"planId"`
	Status string `json:"status"`
}

type redirectResponse struct {
	URL string `json:"url"`
}

type subscriptionResponse struct {
	PlanID            string                   `json:"planId"`
	Status            string                   `json:"status"`
	BillingInterval   string                   `json:"billingInterval,omitempty"`
	CurrentPeriodEnd  *string                  `json:"currentPeriodEnd,omitempty"`
	CancelAtPeriodEnd bool                     `json:"cancelAtPeriodEnd"`
	HasCustomer       bool                     `json:"hasCustomer"`
	Plan              *model.Plan              `json:"plan,omitempty"`
	Usage             map[string]service.Usage `json:"usage,omitempty"`
	PeriodStart       *string                  `json:"periodStart,omitempty"`
}

// RegisterPublicRoutes registers the plan catalog and the gateway webhook.
func (h *SubscriptionHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/plans", h.ListPlans)
	g.POST("/billing/webhook", h.Webhook)
}

func (h *SubscriptionHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/subscription", h.Get)
	g.POST("/subscription/checkout", h.Checkout)
	g.POST("/subscription/portal", h.Portal)
}

func (h *SubscriptionHandler) RegisterAdminRoutes(g *echo.Group) {
	g.PUT("/users/:id/subscription", h.SetPlan)
}

// @Summary List plans
// @Tags billing
// @Produce json
// @Success 200 {array} model.Plan
// @Router /plans [get]
func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListPlans(c.Request().Context()))
}

// Get returns the caller's plan with this month's usage.
// @Summary Current subscription
// @Description Get the caller's plan with this month's usage
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} subscriptionResponse
// @Router /subscription [get]
func (h *SubscriptionHandler) Get(c echo.Context) error {
	view, err := h.service.GetSubscription(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := toSubscriptionResponse(view.Subscription)
	resp.Plan = &view.Plan
	resp.Usage = view.Usage
	periodStart := formatTime(view.PeriodStart)
	resp.PeriodStart = &periodStart
	return c.JSON(http.StatusOK, resp)
}

// Checkout starts a gateway checkout session and returns its URL.
// @Summary Start checkout
// @Description Create a gateway checkout session
// @Tags billing
// @Accept json
// @Produce json
// @Param request body checkoutRequest true "Plan and interval"
// @Security BearerAuth
// @Success 200 {object} redirectResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /subscription/checkout [post]
func (h *SubscriptionHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	user, _ := CurrentUser(c)

	url, err := h.service.CreateCheckout(c.Request().Context(), user, req.PlanID, req.Interval)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, redirectResponse{URL: url})
}

// @Summary Billing portal
// @Description Create a gateway customer portal session
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} redirectResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /subscription/portal [post]
func (h *SubscriptionHandler) Portal(c echo.Context) error {
	url, err := h.service.CreatePortalSession(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, redirectResponse{URL: url})
}

// Webhook receives signed gateway events. The body must be read raw since
// the signature covers the exact bytes.
// @Summary Billing webhook
// @Description Receive a signed billing gateway event
// @Tags billing
// @Produce json
// @Param X-Billing-Signature header string true "Event signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /billing/webhook [post]
func (h *SubscriptionHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBillingEventBytes))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	signature := c.Request().Header.Get(billing.SignatureHeader)
	if err := h.service.HandleBillingEvent(c.Request().Context(), payload, signature); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// SetPlan assigns a plan to a user without going through the gateway.
// @Summary Assign a plan
// @Description Assign a plan to a user without the gateway
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body setPlanRequest true "Plan"
// @Security BearerAuth
// @Success 200 {object} subscriptionResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /admin/users/{id}/subscription [put]
func (h *SubscriptionHandler) SetPlan(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}
	var req setPlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	sub, err := h.service.SetPlan(c.Request().Context(), id, req.PlanID, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}

func toSubscriptionResponse(sub model.Subscription) subscriptionResponse {
	return subscriptionResponse{
		PlanID:            sub.PlanID,
		Status:            sub.Status,
		BillingInterval:   sub.BillingInterval,
		CurrentPeriodEnd:  formatOptionalTime(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		HasCustomer:       sub.CustomerID != nil,
	}
}
