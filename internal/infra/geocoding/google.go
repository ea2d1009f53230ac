package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"roost/internal/domain/entity"
	"roost/internal/errors"

	"github.com/paulmach/orb"
)

// googleProvider calls the Google Geocoding API with a free-text address.
type googleProvider struct {
	baseURL string
	apiKey  string
	client  httpDoer
}

// NewGoogleProvider creates the primary geocoding provider.
func NewGoogleProvider(baseURL, apiKey string, client httpDoer) Provider {
	return &googleProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (p *googleProvider) Name() string {
	return "google"
}

type googleResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

func (p *googleProvider) Geocode(ctx context.Context, address entity.PostalAddress) (orb.Point, bool, error) {
	freeText := fmt.Sprintf("%s, %s, %s, %s, %s",
		address.Street, address.City, address.State, address.PostalCode, address.Country)

	query := url.Values{}
	query.Set("address", freeText)
	query.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/maps/api/geocode/json?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "build google geocode request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "call google geocode")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, false, errors.Errorf("google geocode returned status %d", resp.StatusCode)
	}

	var decoded googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return orb.Point{}, false, errors.Wrap(err, "decode google geocode response")
	}

	if len(decoded.Results) == 0 {
		return orb.Point{}, false, nil
	}

	loc := decoded.Results[0].Geometry.Location

	return orb.Point{loc.Lng, loc.Lat}, true, nil
}
