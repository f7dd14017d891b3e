package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell/backend/internal/network"
	"inkwell/backend/internal/service"

	"github.com/stretchr/testify/require"
)

const testArticlePage = `<!doctype html>
<html><head><title>  Brewing Better Coffee  </title><script>track()</script></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Brewing Better Coffee</h1>
<p>Freshly ground beans make the biggest difference to the flavour of a cup. Grind just before brewing and keep the beans sealed away from light.</p>
<p>Water temperature matters as well. Aim for water just off the boil so the grounds extract evenly without turning bitter or sour in the cup.</p>
<p>Finally, measure your coffee and water by weight. A ratio of about one to sixteen is a reliable starting point for most brewing methods.</p>
</article>
</body></html>`

func TestReadabilityService_Extract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testArticlePage))
	}))
	defer srv.Close()

	svc := service.NewReadabilityService(network.NewClientFactoryForTest(&http.Client{Timeout: 5 * time.Second}))
	ref, err := svc.Extract(context.Background(), srv.URL+"/coffee")
	require.NoError(t, err)
	require.Equal(t, srv.URL+"/coffee", ref.URL)
	require.Equal(t, "Brewing Better Coffee", ref.Title)
	require.Contains(t, ref.Excerpt, "Freshly ground beans")
	require.NotContains(t, ref.Excerpt, "track()")
}

func TestReadabilityService_RefusesPrivateAddress(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		_, _ = w.Write([]byte(testArticlePage))
	}))
	defer srv.Close()

	svc := service.NewReadabilityService(network.NewClientFactory(nil, "inkwell-test"))
	for _, u := range []string{srv.URL, "http://169.254.169.254/latest/meta-data/", "http://[::1]:9/"} {
		_, err := svc.Extract(context.Background(), u)
		require.ErrorIs(t, err, service.ErrInvalid, u)
	}
	require.False(t, hit)

	require.Empty(t, svc.ExtractAll(context.Background(), []string{srv.URL}))
}

func TestValidateReferenceURLs(t *testing.T) {
	urls, err := service.ValidateReferenceURLs([]string{" https://a.example/x ", "", "https://a.example/x", "http://b.example"})
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.example/x", "http://b.example"}, urls)

	_, err = service.ValidateReferenceURLs([]string{"ftp://a.example"})
	require.ErrorIs(t, err, service.ErrInvalid)

	many := make([]string, service.MaxReferenceURLs+1)
	for i := range many {
		many[i] = "https://a.example/" + strings.Repeat("p", i+1)
	}
	_, err = service.ValidateReferenceURLs(many)
	require.ErrorIs(t, err, service.ErrInvalid)
}
