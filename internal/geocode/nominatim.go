// Package geocode resolves free-form addresses to coordinates using a
// Nominatim-compatible geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/geo"
	"github.com/noshapp/nosh/internal/logging"
)

// DefaultMinInterval is the minimum gap between requests. Nominatim's
// usage policy allows at most one request per second.
const DefaultMinInterval = time.Second

// Options configures a Client.
type Options struct {
	// Endpoint is the Nominatim search endpoint.
	Endpoint string
	// UserAgent identifies the application; required by Nominatim.
	UserAgent string
	// Timeout bounds a single request.
	Timeout time.Duration
	// Region is appended to free-form queries, e.g. "New York".
	Region string
	// Cache is the optional on-disk cache. Nil disables caching.
	Cache *Cache
	// MinInterval overrides the request rate floor. Zero means
	// DefaultMinInterval.
	MinInterval time.Duration
}

// Client geocodes addresses against a Nominatim endpoint, throttled to the
// service's rate policy and backed by an optional disk cache.
type Client struct {
	endpoint    string
	userAgent   string
	region      string
	cache       *Cache
	minInterval time.Duration
	httpClient  *http.Client

	mu   sync.Mutex
	last time.Time
}

// NewClient creates a geocoding client.
func NewClient(opts Options) *Client {
	minInterval := opts.MinInterval
	if minInterval == 0 {
		minInterval = DefaultMinInterval
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		endpoint:    opts.Endpoint,
		userAgent:   opts.UserAgent,
		region:      opts.Region,
		cache:       opts.Cache,
		minInterval: minInterval,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// nominatimResult is one entry of a Nominatim jsonv2 response.
// Coordinates arrive as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-form query to a coordinate. The configured
// region is appended to the query. Results, including misses, are cached.
func (c *Client) Geocode(ctx context.Context, query string) (geo.Point, error) {
	full := query
	if c.region != "" {
		full = query + ", " + c.region
	}

	if c.cache != nil {
		if p, found, ok := c.cache.Get(full); ok {
			if !found {
				return geo.Point{}, errors.GeocodeNoResult(query)
			}
			logging.Debug("geocode cache hit", "query", query)
			return p, nil
		}
	}

	if err := c.throttle(ctx); err != nil {
		return geo.Point{}, err
	}

	p, found, err := c.fetch(ctx, full)
	if err != nil {
		return geo.Point{}, err
	}

	if c.cache != nil {
		if err := c.cache.Put(full, p, found); err != nil {
			logging.Warn("failed to write geocode cache", "query", query, "error", err)
		}
	}

	if !found {
		return geo.Point{}, errors.GeocodeNoResult(query)
	}
	return p, nil
}

// throttle blocks until the minimum interval since the previous request
// has passed, or the context is done.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	wait := c.minInterval - time.Since(c.last)
	c.last = time.Now().Add(max(wait, 0))
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fetch performs the HTTP lookup. found=false means the service answered
// but had no match.
func (c *Client) fetch(ctx context.Context, query string) (p geo.Point, found bool, err error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if stderrors.As(err, &netErr) && netErr.Timeout() {
			return geo.Point{}, false, errors.RequestTimeout(req.URL.Host, c.httpClient.Timeout)
		}
		return geo.Point{}, false, errors.GeocodeFailed(query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Point{}, false, errors.GeocodeFailed(query,
			fmt.Errorf("geocoder returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return geo.Point{}, false, errors.GeocodeFailed(query, err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return geo.Point{}, false, errors.GeocodeFailed(query, err)
	}
	if len(results) == 0 {
		return geo.Point{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Point{}, false, errors.GeocodeFailed(query, fmt.Errorf("bad latitude %q", results[0].Lat))
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Point{}, false, errors.GeocodeFailed(query, fmt.Errorf("bad longitude %q", results[0].Lon))
	}

	logging.Debug("geocoded", "query", query, "lat", lat, "lon", lon)
	return geo.Point{Lat: lat, Lon: lon}, true, nil
}
