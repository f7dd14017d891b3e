package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/handler"
	"inkwell/backend/internal/model"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSubscriptionServer(t *testing.T) (*echo.Echo, *svcmock.MockSubscriptionService) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockSubscriptionService(ctrl)
	h := handler.NewSubscriptionHandler(svc)
	e := newTestServer(func(g *echo.Group) {
		h.RegisterPublicRoutes(g)
		h.RegisterProtectedRoutes(g)
		h.RegisterAdminRoutes(g.Group("/admin"))
	})
	return e, svc
}

func TestSubscriptionHandlerGet(t *testing.T) {
	e, svc := newSubscriptionServer(t)
	svc.EXPECT().GetSubscription(gomock.Any(), testUser.ID).Return(service.SubscriptionView{
		Subscription: model.Subscription{UserID: testUser.ID, PlanID: model.FreePlanID, Status: model.SubscriptionActive},
		Plan:         model.Plan{ID: model.FreePlanID, Name: "Free", Limits: model.PlanLimits{KeywordResearches: 5, Articles: 2}},
		Usage:        map[string]service.Usage{model.UsageArticle: {Used: 1, Limit: 2}},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/subscription", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		PlanID      string                   `json:"planId"`
		HasCustomer bool                     `json:"hasCustomer"`
		Plan        model.Plan               `json:"plan"`
		Usage       map[string]service.Usage `json:"usage"`
	}
	decodeJSON(t, rec, &body)
	require.Equal(t, model.FreePlanID, body.PlanID)
	require.False(t, body.HasCustomer)
	require.Equal(t, 2, body.Plan.Limits.Articles)
	require.Equal(t, service.Usage{Used: 1, Limit: 2}, body.Usage[model.UsageArticle])
}

func TestSubscriptionHandlerCheckoutPassesUser(t *testing.T) {
	e, svc := newSubscriptionServer(t)
	svc.EXPECT().CreateCheckout(gomock.Any(), testUser, "pro", model.IntervalYear).Return("https://pay.example.com/s/1", nil)

	rec := doRequest(e, http.MethodPost, "/api/subscription/checkout", `{"planId":"pro","interval":"year"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"url":"https://pay.example.com/s/1"}`, rec.Body.String())
}

func TestSubscriptionHandlerWebhookRawBody(t *testing.T) {
	e, svc := newSubscriptionServer(t)
	payload := `{"type":"checkout.completed","data":{"userId":"42"}}`
	svc.EXPECT().HandleBillingEvent(gomock.Any(), []byte(payload), "t=1,v1=abc").Return(nil)
	svc.EXPECT().HandleBillingEvent(gomock.Any(), gomock.Any(), "").
		Return(fmt.Errorf("%w: invalid signature", service.ErrUnauthorized))

	req := httptest.NewRequest(http.MethodPost, "/api/billing/webhook", strings.NewReader(payload))
	req.Header.Set(billing.SignatureHeader, "t=1,v1=abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/api/billing/webhook", payload)
	requireError(t, rec, http.StatusUnauthorized, "invalid signature")
}

func TestSubscriptionHandlerAdminSetPlan(t *testing.T) {
	e, svc := newSubscriptionServer(t)
	svc.EXPECT().SetPlan(gomock.Any(), int64(9), "business", model.SubscriptionActive).
		Return(model.Subscription{UserID: 9, PlanID: "business", Status: model.SubscriptionActive}, nil)
	svc.EXPECT().SetPlan(gomock.Any(), int64(9), "gold", "").
		Return(model.Subscription{}, fmt.Errorf("%w: unknown plan %q", service.ErrInvalid, "gold"))

	rec := doRequest(e, http.MethodPut, "/api/admin/users/9/subscription", `{"planId":"business","status":"active"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPut, "/api/admin/users/9/subscription", `{"planId":"gold"}`)
	requireError(t, rec, http.StatusBadRequest, `unknown plan "gold"`)
}

func TestSubscriptionHandlerPortalWithoutCustomer(t *testing.T) {
	e, svc := newSubscriptionServer(t)
	svc.EXPECT().CreatePortalSession(gomock.Any(), testUser.ID).
		Return("", fmt.Errorf("%w: no billing account yet", service.ErrInvalid))

	rec := doRequest(e, http.MethodPost, "/api/subscription/portal", "")
	requireError(t, rec, http.StatusBadRequest, "no billing account yet")
}
