package geocoding

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"roost/config"
	"roost/internal/domain/entity"
	"roost/internal/domain/service"
)

// chainResolver tries each provider once, in order. There is no per-provider
// retry: the fallback provider is the retry. When every provider misses the
// resolver returns the sentinel result instead of an error, because
// geocoding failure degrades a listing's accuracy but must never block its
// creation.
type chainResolver struct {
	providers []Provider
	timeout   time.Duration
	logger    *slog.Logger
}

// NewResolver builds the configured Google-then-Nominatim chain.
func NewResolver(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	client := &http.Client{}

	return NewChainResolver(
		[]Provider{
			NewGoogleProvider(cfg.Geocoding.Google.BaseURL, cfg.Geocoding.Google.APIKey, client),
			NewNominatimProvider(cfg.Geocoding.Nominatim.BaseURL, cfg.Geocoding.Nominatim.UserAgent, client),
		},
		cfg.Geocoding.Timeout,
		logger,
	)
}

// NewChainResolver creates a resolver over an explicit provider list.
// Adding a third provider is appending to the list.
func NewChainResolver(providers []Provider, timeout time.Duration, logger *slog.Logger) service.Geocoder {
	return &chainResolver{
		providers: providers,
		timeout:   timeout,
		logger:    logger,
	}
}

// Resolve walks the chain. A timeout counts the same as a zero-result
// answer: skip to the next provider.
func (r *chainResolver) Resolve(ctx context.Context, address entity.PostalAddress) entity.GeocodeResult {
	for _, provider := range r.providers {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		point, found, err := provider.Geocode(callCtx, address)
		cancel()

		if err != nil {
			r.logger.WarnContext(ctx, "geocoding provider failed",
				slog.String("provider", provider.Name()),
				slog.String("error", err.Error()),
			)

			continue
		}
		if !found {
			r.logger.DebugContext(ctx, "geocoding provider had no match",
				slog.String("provider", provider.Name()),
			)

			continue
		}

		return entity.GeocodeResult{Point: point, Provider: provider.Name()}
	}

	r.logger.WarnContext(ctx, "geocoding degraded, using sentinel coordinates",
		slog.String("city", address.City),
		slog.String("country", address.Country),
	)

	return entity.FailedGeocodeResult()
}
