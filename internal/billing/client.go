// Package billing talks to the billing gateway edge functions that front the
// payment provider, and verifies the signed events it sends back.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inkwell/backend/internal/network"
)

var ErrNotConfigured = errors.New("billing gateway not configured")

// GatewayError is a non-2xx gateway response.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("billing gateway: status %d: %s", e.StatusCode, e.Message)
}

type CheckoutRequest struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	PlanID     string `json:"planId"`
	Interval   string `json:"interval"`
	CustomerID string `json:"customerId,omitempty"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

type PortalRequest struct {
	CustomerID string `json:"customerId"`
	ReturnURL  string `json:"returnUrl"`
}

type sessionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

type Client struct {
	baseURL string
	apiKey  string
	clients *network.ClientFactory
	timeout time.Duration
}

func NewClient(baseURL, apiKey string, clients *network.ClientFactory) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		clients: clients,
		timeout: 30 * time.Second,
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// CreateCheckoutSession returns the hosted checkout URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	return c.session(ctx, "/create-checkout-session", req)
}

// CreatePortalSession returns the hosted customer portal URL.
func (c *Client) CreatePortalSession(ctx context.Context, req PortalRequest) (string, error) {
	return c.session(ctx, "/create-portal-session", req)
}

func (c *Client) session(ctx context.Context, path string, body any) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.clients.NewHTTPClient(ctx, c.timeout).Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call billing gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read billing response: %w", err)
	}

	var out sessionResponse
	_ = json.Unmarshal(raw, &out)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Error
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return "", &GatewayError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out.URL == "" {
		return "", &GatewayError{StatusCode: resp.StatusCode, Message: "response has no url"}
	}
	return out.URL, nil
}
