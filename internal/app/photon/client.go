// internal/app/photon/client.go

// Package photon wraps the Photon geocoding API (photon.komoot.io) used to
// verify that a school exists before it is registered.
//
// Every Search call hits the network: there is no caching and no retry.
// Hard failures (transport errors, non-2xx responses, timeouts) are wrapped
// in ErrLookupFailed so callers can tell a broken lookup service apart from
// a clean "no match" (an empty candidate list).
package photon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public Photon instance.
const DefaultBaseURL = "https://photon.komoot.io"

// DefaultTimeout bounds one lookup round-trip.
const DefaultTimeout = 10 * time.Second

// PlaceCandidate is one normalized result from a place search. Candidates
// are transient: they feed the registration workflow and the search proxy
// response, and are never persisted.
type PlaceCandidate struct {
	Name    string   `json:"name"`
	OSMID   *string  `json:"osm_id,omitempty"`
	Type    string   `json:"type,omitempty"`
	City    string   `json:"city,omitempty"`
	Country string   `json:"country,omitempty"`
	Address string   `json:"address,omitempty"`
	Lon     *float64 `json:"lon"`
	Lat     *float64 `json:"lat"`
}

// Client issues place searches against a Photon-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient constructs a Client for the given base URL (for example
// https://photon.komoot.io). A zero timeout gets DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// photonResponse mirrors the GeoJSON-style body Photon returns.
type photonResponse struct {
	Features []photonFeature `json:"features"`
}

type photonFeature struct {
	Properties struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		OSMID    *int64 `json:"osm_id"`
		Type     string `json:"type"`
		City     string `json:"city"`
		OSMValue string `json:"osm_value"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
}

// Search queries Photon for up to limit candidates matching the free-text
// query. The returned slice preserves the service's ranking; the first
// candidate is the best match.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]PlaceCandidate, error) {
	u, err := url.Parse(c.baseURL + "/api")
	if err != nil {
		return nil, fmt.Errorf("%w: bad base URL: %v", ErrLookupFailed, err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("photon request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("photon returned non-success status",
			zap.String("query", query),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrLookupFailed, err)
	}

	results := make([]PlaceCandidate, 0, len(body.Features))
	for _, f := range body.Features {
		results = append(results, candidateFromFeature(f))
	}
	return results, nil
}

// candidateFromFeature normalizes one Photon feature.
//
// Fallback order matches the platform's registration rules: a nameless
// feature falls back to its country, then to "Unknown". The OSM id stays
// absent when Photon has none; it is never stringified into a placeholder.
func candidateFromFeature(f photonFeature) PlaceCandidate {
	name := f.Properties.Name
	if name == "" {
		name = f.Properties.Country
	}
	if name == "" {
		name = "Unknown"
	}

	address := f.Properties.Name
	if address == "" {
		address = f.Properties.OSMValue
	}

	var osmID *string
	if f.Properties.OSMID != nil {
		s := strconv.FormatInt(*f.Properties.OSMID, 10)
		osmID = &s
	}

	var lon, lat *float64
	if len(f.Geometry.Coordinates) >= 2 {
		lon = &f.Geometry.Coordinates[0]
		lat = &f.Geometry.Coordinates[1]
	}

	return PlaceCandidate{
		Name:    name,
		OSMID:   osmID,
		Type:    f.Properties.Type,
		City:    f.Properties.City,
		Country: f.Properties.Country,
		Address: address,
		Lon:     lon,
		Lat:     lat,
	}
}
