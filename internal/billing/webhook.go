package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader carries "t=<unix>,v1=<hex hmac>" over "<t>.<body>".
const SignatureHeader = "X-Billing-Signature"

// DefaultTolerance bounds the accepted age of a signed event.
const DefaultTolerance = 5 * time.Minute

var (
	ErrMissingSignature = errors.New("missing signature")
	ErrBadSignature     = errors.New("signature mismatch")
	ErrStaleSignature   = errors.New("signature timestamp outside tolerance")
)

// Event types sent by the gateway.
const (
	EventSubscriptionCreated = "subscription.created"
	EventSubscriptionUpdated = "subscription.updated"
	EventSubscriptionDeleted = "subscription.deleted"
	EventCheckoutCompleted   = "checkout.completed"
)

type Event struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	UserID            string `json:"userId"`
	CustomerID        string `json:"customerId"`
	SubscriptionID    string `json:"subscriptionId"`
	PlanID            string `json:"planId"`
	Status            string `json:"status"`
	Interval          string `json:"interval"`
	CurrentPeriodEnd  int64  `json:"currentPeriodEnd"` // unix seconds
	CancelAtPeriodEnd bool   `json:"cancelAtPeriodEnd"`
}

// Sign produces a signature header value for payload at t.
func Sign(payload []byte, secret string, t time.Time) string {
	ts := strconv.FormatInt(t.Unix(), 10)
	return "t=" + ts + ",v1=" + computeMAC(ts, payload, secret)
}

func computeMAC(ts string, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks header against payload. Any v1 entry may match,
// which allows secret rotation on the gateway side.
func VerifySignature(payload []byte, header, secret string, now time.Time, tolerance time.Duration) error {
	if header == "" {
		return ErrMissingSignature
	}
	var ts string
	var sigs []string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts = v
		case "v1":
			sigs = append(sigs, v)
		}
	}
	if ts == "" || len(sigs) == 0 {
		return ErrMissingSignature
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp", ErrBadSignature)
	}
	if tolerance > 0 {
		age := now.Sub(time.Unix(unix, 0))
		if age > tolerance || age < -tolerance {
			return ErrStaleSignature
		}
	}

	expected := computeMAC(ts, payload, secret)
	for _, sig := range sigs {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrBadSignature
}

// ParseEvent verifies and decodes a gateway event.
func ParseEvent(payload []byte, header, secret string, now time.Time) (Event, error) {
	if err := VerifySignature(payload, header, secret, now, DefaultTolerance); err != nil {
		return Event{}, err
	}
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Type == "" {
		return Event{}, errors.New("event has no type")
	}
	return ev, nil
}
