package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"syscall"
	"time"
)

// ErrBlockedAddress is returned when a user-supplied URL resolves to a
// loopback, private or otherwise non-public address.
var ErrBlockedAddress = errors.New("destination address is not public")

var blockedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("64:ff9b::/96"),
	netip.MustParsePrefix("64:ff9b:1::/48"),
	netip.MustParsePrefix("2002::/16"),
}

// IsPublicAddr reports whether addr is a routable public unicast address.
func IsPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsValid() || !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}
	for _, p := range blockedPrefixes {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}

// CheckHost rejects hostnames that are obviously local without resolving
// them: localhost names and literal non-public IPs. Names that resolve to
// private addresses are caught when the public client connects.
func CheckHost(host string) error {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return fmt.Errorf("%w: empty host", ErrBlockedAddress)
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	if addr, err := netip.ParseAddr(strings.Trim(host, "[]")); err == nil && !IsPublicAddr(addr) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	return nil
}

// publicOnlyControl runs after DNS resolution, so it sees the address that is
// actually dialled and also covers redirects and rebinding.
func publicOnlyControl(_, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	if !IsPublicAddr(ap.Addr()) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, ap.Addr())
	}
	return nil
}

func newPublicTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
		Control:   publicOnlyControl,
	}
	t.DialContext = dialer.DialContext
	return t
}

// resolvingGuard checks the request host before a proxied round trip, where
// the dialled address is the proxy rather than the destination.
type resolvingGuard struct {
	base     http.RoundTripper
	resolver *net.Resolver
}

func (g *resolvingGuard) RoundTrip(req *http.Request) (*http.Response, error) {
	host := req.URL.Hostname()
	if err := CheckHost(host); err != nil {
		return nil, err
	}
	if _, err := netip.ParseAddr(host); err != nil {
		addrs, err := g.resolver.LookupNetIP(req.Context(), "ip", host)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", host, err)
		}
		for _, addr := range addrs {
			if !IsPublicAddr(addr) {
				return nil, fmt.Errorf("%w: %s resolves to %s", ErrBlockedAddress, host, addr)
			}
		}
	}
	return g.base.RoundTrip(req)
}

// NewPublicHTTPClient is like NewHTTPClient but refuses to reach non-public
// addresses. Use it for every URL that comes from a user.
func (f *ClientFactory) NewPublicHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testClient != nil {
		return f.testClient
	}

	var transport http.RoundTripper = newPublicTransport()
	if proxyURL := f.proxyProvider.GetProxyURL(ctx); proxyURL != "" {
		if t, err := newTransportWithProxy(proxyURL); err == nil {
			transport = &resolvingGuard{base: t, resolver: net.DefaultResolver}
		}
	}
	if f.userAgent != "" {
		transport = &userAgentTransport{base: transport, userAgent: f.userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}
