// Package geo resolves postal addresses to coordinates over a public
// zippopotam-style HTTP API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const defaultBaseURL = "https://api.zippopotam.us"

// postalCodeResponse mirrors the provider's JSON shape. Coordinates come
// back as strings.
type postalCodeResponse struct {
	Places []struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"places"`
}

// HTTPGeocoder implements ports.Geocoder against a postal-code lookup API.
//
// An unknown postal code resolves to an unresolved point with a nil error;
// the policy for unresolved addresses lives with the caller. Transport and
// decoding failures are real errors.
type HTTPGeocoder struct {
	baseURL string
	client  *http.Client
}

// Option configures an HTTPGeocoder.
type Option func(*HTTPGeocoder)

// WithBaseURL overrides the provider endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(g *HTTPGeocoder) {
		g.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *HTTPGeocoder) {
		g.client = client
	}
}

// NewHTTPGeocoder creates a geocoder against the public provider.
func NewHTTPGeocoder(opts ...Option) *HTTPGeocoder {
	g := &HTTPGeocoder{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolve looks up the centroid of a postal code area.
func (g *HTTPGeocoder) Resolve(ctx context.Context, country, postalCode string) (kernel.GeoPoint, error) {
	if country == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("country")
	}
	if postalCode == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("postalCode")
	}

	endpoint := fmt.Sprintf("%s/%s/%s", g.baseURL, url.PathEscape(country), url.PathEscape(postalCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return kernel.NewUnresolvedGeoPoint(), nil
	}
	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("unexpected geocode status: %d", resp.StatusCode)
	}

	var decoded postalCodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Places) == 0 {
		return kernel.NewUnresolvedGeoPoint(), nil
	}

	lat, err := strconv.ParseFloat(decoded.Places[0].Latitude, 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("parse latitude %q: %w", decoded.Places[0].Latitude, err)
	}

	lon, err := strconv.ParseFloat(decoded.Places[0].Longitude, 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("parse longitude %q: %w", decoded.Places[0].Longitude, err)
	}

	return kernel.NewGeoPoint(lat, lon)
}
