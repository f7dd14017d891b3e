// Package network builds the outbound HTTP clients used for webhooks, billing,
// feed imports and reference fetching, routed through the configured proxy.
package network

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// ProxyProvider returns the outbound proxy URL, or "" for direct connections.
// Declared here so the service package can implement it without an import cycle.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

// ClientFactory creates HTTP clients that honour the proxy setting.
type ClientFactory struct {
	proxyProvider ProxyProvider
	userAgent     string
	testClient    *http.Client
}

// NewClientFactory creates a factory. A nil provider means no proxy.
func NewClientFactory(proxyProvider ProxyProvider, userAgent string) *ClientFactory {
	if proxyProvider == nil {
		proxyProvider = noProxy{}
	}
	return &ClientFactory{proxyProvider: proxyProvider, userAgent: userAgent}
}

// NewClientFactoryForTest returns a factory that always hands out client.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{proxyProvider: noProxy{}, testClient: client}
}

type noProxy struct{}

func (noProxy) GetProxyURL(context.Context) string { return "" }

// NewHTTPClient returns a client with the given timeout and the current proxy.
func (f *ClientFactory) NewHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testClient != nil {
		return f.testClient
	}

	var transport http.RoundTripper = http.DefaultTransport
	if proxyURL := f.proxyProvider.GetProxyURL(ctx); proxyURL != "" {
		if t, err := newTransportWithProxy(proxyURL); err == nil {
			transport = t
		}
	}
	if f.userAgent != "" {
		transport = &userAgentTransport{base: transport, userAgent: f.userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// TestProxy checks that testURL is reachable through proxyURL without saving it.
func TestProxy(ctx context.Context, proxyURL, testURL string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	if proxyURL != "" {
		t, err := newTransportWithProxy(proxyURL)
		if err != nil {
			return err
		}
		client.Transport = t
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, testURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// newTransportWithProxy supports http, https and socks5 proxy URLs.
// SOCKS goes through golang.org/x/net/proxy.
func newTransportWithProxy(proxyURL string) (*http.Transport, error) {
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}

	switch {
	case strings.HasPrefix(parsed.Scheme, "socks"):
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{User: parsed.User.Username()}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}
		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 dialer: %w", err)
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			return &http.Transport{DialContext: cd.DialContext}, nil
		}
		return &http.Transport{
			DialContext: func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			},
		}, nil
	case parsed.Scheme == "http" || parsed.Scheme == "https":
		return &http.Transport{Proxy: http.ProxyURL(parsed)}, nil
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q", parsed.Scheme)
	}
}
