package network

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsPublicAddr(t *testing.T) {
	cases := map[string]bool{
		"93.184.216.34":    true,
		"2606:4700::1111":  true,
		"127.0.0.1":        false,
		"10.1.2.3":         false,
		"172.16.0.9":       false,
		"192.168.1.1":      false,
		"169.254.169.254":  false,
		"100.64.0.1":       false,
		"0.0.0.0":          false,
		"::1":              false,
		"fe80::1":          false,
		"fd00::1":          false,
		"::ffff:127.0.0.1": false,
		"224.0.0.1":        false,
	}
	for raw, want := range cases {
		require.Equal(t, want, IsPublicAddr(netip.MustParseAddr(raw)), raw)
	}
}

func TestCheckHost(t *testing.T) {
	require.NoError(t, CheckHost("example.com"))
	require.NoError(t, CheckHost("93.184.216.34"))
	for _, host := range []string{"localhost", "LOCALHOST.", "api.localhost", "127.0.0.1", "[::1]", "169.254.169.254", ""} {
		require.ErrorIs(t, CheckHost(host), ErrBlockedAddress, host)
	}
}

func TestNewPublicHTTPClient_RefusesLoopback(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hit = true }))
	defer srv.Close()

	f := NewClientFactory(nil, "Inkwell/test")
	_, err := f.NewPublicHTTPClient(context.Background(), time.Second).Get(srv.URL)
	require.ErrorIs(t, err, ErrBlockedAddress)
	require.False(t, hit)

	// The unrestricted client still reaches it.
	resp, err := f.NewHTTPClient(context.Background(), time.Second).Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestNewPublicHTTPClient_RefusesRedirectToLoopback(t *testing.T) {
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer internal.Close()

	// A guarded transport that lets the first hop through must still stop
	// the redirect.
	first := true
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if first {
			first = false
			return &http.Response{
				StatusCode: http.StatusFound,
				Header:     http.Header{"Location": []string{internal.URL}},
				Body:       http.NoBody,
				Request:    req,
			}, nil
		}
		return newPublicTransport().RoundTrip(req)
	})}
	_, err := client.Get("http://public.example/")
	require.ErrorIs(t, err, ErrBlockedAddress)
}

func TestResolvingGuard(t *testing.T) {
	called := false
	guard := &resolvingGuard{
		base: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			called = true
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
		}),
		resolver: net.DefaultResolver,
	}

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:8080/admin", nil)
	require.NoError(t, err)
	_, err = guard.RoundTrip(req)
	require.ErrorIs(t, err, ErrBlockedAddress)

	req, err = http.NewRequest(http.MethodGet, "http://93.184.216.34/", nil)
	require.NoError(t, err)
	resp, err := guard.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.True(t, called)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
