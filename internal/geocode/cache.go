package geocode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/noshapp/nosh/internal/geo"
)

// Cache is an on-disk geocode cache. Entries are keyed by the hash of the
// normalized query; negative results are cached too, so a bad address is
// only ever sent to the geocoder once.
type Cache struct {
	dir string
}

// cacheEntry is the stored form of one lookup.
type cacheEntry struct {
	Query    string    `json:"query"`
	Found    bool      `json:"found"`
	Point    geo.Point `json:"point,omitempty"`
	CachedAt time.Time `json:"cached_at"`
}

// NewCache creates a cache rooted at dir, creating it if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create geocode cache directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// keyPath returns the cache file path for a query.
func (c *Cache) keyPath(query string) string {
	sum := xxhash.Sum64String(normalizeQuery(query))
	return filepath.Join(c.dir, fmt.Sprintf("%016x.json", sum))
}

// normalizeQuery canonicalizes a query for cache keying.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Get returns the cached point for a query. found reports whether the
// geocoder located the query; ok reports whether the cache had an entry.
func (c *Cache) Get(query string) (p geo.Point, found, ok bool) {
	data, err := os.ReadFile(c.keyPath(query))
	if err != nil {
		return geo.Point{}, false, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt entry: drop it and refetch.
		_ = os.Remove(c.keyPath(query))
		return geo.Point{}, false, false
	}
	return entry.Point, entry.Found, true
}

// Put stores a lookup result.
func (c *Cache) Put(query string, p geo.Point, found bool) error {
	entry := cacheEntry{
		Query:    normalizeQuery(query),
		Found:    found,
		Point:    p,
		CachedAt: time.Now(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := os.WriteFile(c.keyPath(query), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
