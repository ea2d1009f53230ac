// Package geocoding resolves postal addresses to coordinates through an
// ordered chain of HTTP providers.
package geocoding

import (
	"context"
	"net/http"

	"roost/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Provider is one upstream geocoding service. found=false means the
// provider answered but had no match; err means the call itself failed.
// The chain treats both the same way: move on to the next provider.
type Provider interface {
	Name() string
	Geocode(ctx context.Context, address entity.PostalAddress) (point orb.Point, found bool, err error)
}

// httpDoer lets tests substitute the transport.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
