package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/billing"
	"inkwell/backend/internal/network"
)

func TestClient_CreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/create-checkout-session", r.URL.Path)
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		var req billing.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "pro", req.PlanID)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example/cs_1"})
	}))
	defer srv.Close()

	c := billing.NewClient(srv.URL+"/", "key", network.NewClientFactory(nil, ""))
	url, err := c.CreateCheckoutSession(context.Background(), billing.CheckoutRequest{PlanID: "pro", Interval: "month"})
	require.NoError(t, err)
	require.Equal(t, "https://pay.example/cs_1", url)
}

func TestClient_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no such customer"})
	}))
	defer srv.Close()

	c := billing.NewClient(srv.URL, "", network.NewClientFactory(nil, ""))
	_, err := c.CreatePortalSession(context.Background(), billing.PortalRequest{CustomerID: "cus_x"})
	var gwErr *billing.GatewayError
	require.ErrorAs(t, err, &gwErr)
	require.Equal(t, "no such customer", gwErr.Message)
}

func TestClient_NotConfigured(t *testing.T) {
	c := billing.NewClient("", "", network.NewClientFactory(nil, ""))
	_, err := c.CreatePortalSession(context.Background(), billing.PortalRequest{})
	require.ErrorIs(t, err, billing.ErrNotConfigured)
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"subscription.updated"}`)
	now := time.Unix(1_800_000_000, 0)
	header := billing.Sign(payload, "whsec", now)

	require.NoError(t, billing.VerifySignature(payload, header, "whsec", now.Add(time.Minute), billing.DefaultTolerance))
	require.ErrorIs(t, billing.VerifySignature(payload, header, "other", now, billing.DefaultTolerance), billing.ErrBadSignature)
	require.ErrorIs(t, billing.VerifySignature([]byte(`{}`), header, "whsec", now, billing.DefaultTolerance), billing.ErrBadSignature)
	require.ErrorIs(t, billing.VerifySignature(payload, header, "whsec", now.Add(time.Hour), billing.DefaultTolerance), billing.ErrStaleSignature)
	require.ErrorIs(t, billing.VerifySignature(payload, "", "whsec", now, 0), billing.ErrMissingSignature)

	// A rotated secret still verifies when any v1 matches.
	rotated := header + ",v1=deadbeef"
	require.NoError(t, billing.VerifySignature(payload, rotated, "whsec", now, 0))
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"subscription.updated","data":{"userId":"42","planId":"pro","status":"active","interval":"year","currentPeriodEnd":1800000000}}`)
	now := time.Now()
	ev, err := billing.ParseEvent(payload, billing.Sign(payload, "s", now), "s", now)
	require.NoError(t, err)
	require.Equal(t, billing.EventSubscriptionUpdated, ev.Type)
	require.Equal(t, "pro", ev.Data.PlanID)
	require.Equal(t, int64(1800000000), ev.Data.CurrentPeriodEnd)
}
