package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roost/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAddress() entity.PostalAddress {
	return entity.PostalAddress{
		Street:     "1 Market St",
		City:       "San Francisco",
		State:      "CA",
		PostalCode: "94105",
		Country:    "USA",
	}
}

func googleServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func nominatimServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func newResolver(primary, fallback Provider, timeout time.Duration) *chainResolver {
	resolver := NewChainResolver([]Provider{primary, fallback}, timeout, discardLogger())

	return resolver.(*chainResolver)
}

func TestResolve_PrimaryProviderWins(t *testing.T) {
	google := googleServer(t, `{"status":"OK","results":[{"geometry":{"location":{"lat":37.7936,"lng":-122.3930}}}]}`)
	nominatim := nominatimServer(t, `[{"lat":"1","lon":"1"}]`)

	client := &http.Client{}
	resolver := newResolver(
		NewGoogleProvider(google.URL, "test-key", client),
		NewNominatimProvider(nominatim.URL, "roost-test", client),
		time.Second,
	)

	result := resolver.Resolve(context.Background(), testAddress())
	require.False(t, result.Failed)
	assert.Equal(t, "google", result.Provider)
	assert.InDelta(t, -122.3930, result.Point[0], 1e-9)
	assert.InDelta(t, 37.7936, result.Point[1], 1e-9)
}

func TestResolve_ZeroResultsFallsBack(t *testing.T) {
	google := googleServer(t, `{"status":"ZERO_RESULTS","results":[]}`)
	nominatim := nominatimServer(t, `[{"lat":"37.7936","lon":"-122.3930"}]`)

	client := &http.Client{}
	resolver := newResolver(
		NewGoogleProvider(google.URL, "test-key", client),
		NewNominatimProvider(nominatim.URL, "roost-test", client),
		time.Second,
	)

	result := resolver.Resolve(context.Background(), testAddress())
	require.False(t, result.Failed)
	assert.Equal(t, "nominatim", result.Provider)
	assert.InDelta(t, -122.3930, result.Point[0], 1e-9)
}

func TestResolve_PrimaryErrorFallsBack(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(google.Close)
	nominatim := nominatimServer(t, `[{"lat":"37.7936","lon":"-122.3930"}]`)

	client := &http.Client{}
	resolver := newResolver(
		NewGoogleProvider(google.URL, "test-key", client),
		NewNominatimProvider(nominatim.URL, "roost-test", client),
		time.Second,
	)

	result := resolver.Resolve(context.Background(), testAddress())
	require.False(t, result.Failed)
	assert.Equal(t, "nominatim", result.Provider)
}

func TestResolve_TimeoutCountsAsMiss(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
		io.WriteString(w, `{"status":"OK","results":[]}`)
	}))
	t.Cleanup(slow.Close)
	nominatim := nominatimServer(t, `[{"lat":"37.7936","lon":"-122.3930"}]`)

	client := &http.Client{}
	resolver := newResolver(
		NewGoogleProvider(slow.URL, "test-key", client),
		NewNominatimProvider(nominatim.URL, "roost-test", client),
		20*time.Millisecond,
	)

	result := resolver.Resolve(context.Background(), testAddress())
	require.False(t, result.Failed)
	assert.Equal(t, "nominatim", result.Provider)
}

func TestResolve_AllProvidersFailYieldsSentinel(t *testing.T) {
	google := googleServer(t, `{"status":"ZERO_RESULTS","results":[]}`)
	nominatim := nominatimServer(t, `[]`)

	client := &http.Client{}
	resolver := newResolver(
		NewGoogleProvider(google.URL, "test-key", client),
		NewNominatimProvider(nominatim.URL, "roost-test", client),
		time.Second,
	)

	result := resolver.Resolve(context.Background(), testAddress())
	assert.True(t, result.Failed)
	assert.Equal(t, 0.0, result.Point[0])
	assert.Equal(t, 0.0, result.Point[1])
	assert.Empty(t, result.Provider)
}
