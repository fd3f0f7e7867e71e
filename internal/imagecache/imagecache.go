// Package imagecache downloads dish and restaurant photos once and keeps
// them on disk for later sessions.
package imagecache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/logging"
)

// Placeholder is returned when an image cannot be fetched.
const Placeholder = "https://placehold.co/900x600?text=No+Photo"

// DefaultTimeout bounds a single image download.
const DefaultTimeout = 6 * time.Second

// maxImageBytes caps a single download at 10 MB.
const maxImageBytes = 10 << 20

// unsplashParams normalizes Unsplash photo links to a consistent size.
const unsplashParams = "auto=format&fit=crop&w=900&q=80"

// Cache is a write-through disk cache for image files, keyed by URL.
type Cache struct {
	dir        string
	httpClient *http.Client
}

// New creates the cache directory if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.DataFileError(dir, err)
	}
	return &Cache{
		dir:        dir,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// NormalizeURL rewrites Unsplash links to request a fixed crop so cached
// files stay a manageable size. Other URLs pass through unchanged.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if !strings.HasSuffix(u.Host, "images.unsplash.com") {
		return raw
	}
	u.RawQuery = unsplashParams
	return u.String()
}

// keyPath maps a URL to its on-disk location, preserving the extension so
// terminal image protocols can sniff the format.
func (c *Cache) keyPath(rawURL string) string {
	ext := urlExt(rawURL)
	sum := xxhash.Sum64String(rawURL)
	return filepath.Join(c.dir, fmt.Sprintf("%016x%s", sum, ext))
}

func urlExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(u.Path))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	}
	return ".jpg"
}

// Path returns the local file for the given image URL, downloading it on
// first use. The URL is normalized before keying.
func (c *Cache) Path(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		rawURL = Placeholder
	}
	normalized := NormalizeURL(rawURL)
	local := c.keyPath(normalized)

	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := c.download(ctx, normalized, local); err != nil {
		return "", err
	}
	return local, nil
}

func (c *Cache) download(ctx context.Context, rawURL, local string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NetworkUnavailable(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NetworkUnavailable(rawURL,
			fmt.Errorf("image server returned status %d", resp.StatusCode))
	}

	tmp, err := os.CreateTemp(c.dir, "download-*")
	if err != nil {
		return errors.DataFileError(c.dir, err)
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, io.LimitReader(resp.Body, maxImageBytes))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.DataFileError(local, err)
	}

	if err := os.Rename(tmp.Name(), local); err != nil {
		return errors.DataFileError(local, err)
	}
	logging.Debug("cached image", "url", rawURL, "path", local)
	return nil
}
