package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"roost/internal/domain/entity"
	"roost/internal/errors"

	"github.com/paulmach/orb"
)

// nominatimProvider calls the OpenStreetMap Nominatim search API with a
// structured address. Nominatim requires an identifying User-Agent.
type nominatimProvider struct {
	baseURL   string
	userAgent string
	client    httpDoer
}

// NewNominatimProvider creates the fallback geocoding provider.
func NewNominatimProvider(baseURL, userAgent string, client httpDoer) Provider {
	return &nominatimProvider{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

func (p *nominatimProvider) Name() string {
	return "nominatim"
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (p *nominatimProvider) Geocode(ctx context.Context, address entity.PostalAddress) (orb.Point, bool, error) {
	query := url.Values{}
	query.Set("street", address.Street)
	query.Set("city", address.City)
	query.Set("country", address.Country)
	query.Set("postalcode", address.PostalCode)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "build nominatim request")
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "call nominatim")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, false, errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, false, errors.Wrap(err, "decode nominatim response")
	}

	if len(results) == 0 {
		return orb.Point{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "parse nominatim latitude")
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, false, errors.Wrap(err, "parse nominatim longitude")
	}

	return orb.Point{lng, lat}, true, nil
}
