// Package registry resolves manifest requirements against a package index.
//
// The only supported index is PyPI's JSON API. The client is read-only: it
// fetches released versions for a package and picks the highest one that
// satisfies a requirement's specifiers.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/manifest"
)

// DefaultBaseURL is the production PyPI JSON API endpoint.
const DefaultBaseURL = "https://pypi.org/pypi"

// DefaultTimeout bounds a single index request.
const DefaultTimeout = 10 * time.Second

// Client talks to a PyPI-compatible JSON index.
type Client struct {
	// BaseURL is the index endpoint, without a trailing slash.
	BaseURL string
	// HTTPClient is the client used for requests.
	HTTPClient *http.Client
	// UserAgent is sent with every request.
	UserAgent string
}

// NewClient creates a client for the production index.
func NewClient(userAgent string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  userAgent,
	}
}

// projectResponse is the subset of the PyPI JSON document we consume.
type projectResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"info"`
	Releases map[string][]releaseFile `json:"releases"`
}

type releaseFile struct {
	Yanked bool `json:"yanked"`
}

// Versions returns the released, non-yanked versions of the named package,
// sorted ascending. Versions the index lists without files are included.
func (c *Client) Versions(ctx context.Context, name string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/%s/json", c.BaseURL, url.PathEscape(manifest.Normalize(name)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NetworkUnavailable(req.URL.Host, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.New(errors.ErrNotFound, fmt.Sprintf("package %q not found in index", name))
	default:
		return nil, errors.RegistryStatusError(name, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read index response: %w", err)
	}

	var project projectResponse
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistry, fmt.Sprintf("invalid index response for %q", name))
	}

	versions := make([]string, 0, len(project.Releases))
	for version, files := range project.Releases {
		if allYanked(files) {
			continue
		}
		versions = append(versions, version)
	}

	sort.Slice(versions, func(i, j int) bool {
		vi, erri := semver.NewVersion(versions[i])
		vj, errj := semver.NewVersion(versions[j])
		// Unparseable versions sort after parseable ones, by string among
		// themselves, so mixed inputs still get a consistent ordering.
		if erri != nil || errj != nil {
			if (erri != nil) != (errj != nil) {
				return errj != nil
			}
			return versions[i] < versions[j]
		}
		if vi.Equal(vj) {
			return versions[i] < versions[j]
		}
		return vi.LessThan(vj)
	})

	return versions, nil
}

func allYanked(files []releaseFile) bool {
	if len(files) == 0 {
		return false
	}
	for _, f := range files {
		if !f.Yanked {
			return false
		}
	}
	return true
}

// Resolve returns the highest released version satisfying the requirement's
// specifiers. Versions the index lists but semver cannot parse are skipped.
func (c *Client) Resolve(ctx context.Context, req manifest.Requirement) (string, error) {
	versions, err := c.Versions(ctx, req.Name)
	if err != nil {
		return "", err
	}

	var bestVer *semver.Version
	best := ""
	for _, version := range versions {
		// Local version labels and other non-semver forms; skip them.
		v, err := semver.NewVersion(version)
		if err != nil {
			continue
		}
		ok, err := req.Matches(version)
		if err != nil || !ok {
			continue
		}
		if bestVer == nil || v.GreaterThan(bestVer) {
			bestVer = v
			best = version
		}
	}

	if best == "" {
		return "", errors.New(errors.ErrRegistry,
			fmt.Sprintf("no released version of %q satisfies %q", req.Name, req.String()))
	}
	return best, nil
}
