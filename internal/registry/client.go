package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ospolicy/licensegen/internal/cache"
	"github.com/ospolicy/licensegen/internal/model"
	"github.com/ospolicy/licensegen/internal/util"
	"github.com/ospolicy/licensegen/internal/worker"
)

// Client fetches the SPDX license registry: the license list snapshot and
// per-license detail documents. Fetches are cached, rate-limited per host,
// and checked against robots.txt. A missing or unfetchable license text is
// not an error; classification proceeds on the id alone.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      cache.Cache // nil disables caching
	limiter    *worker.Limiter
	robots     *util.RobotsChecker
	userAgent  string
	maxBytes   int64
}

// NewClient creates a registry client. Pass a nil store to disable caching.
func NewClient(cfg model.RegistryConfig, store cache.Cache, limiter *worker.Limiter, robots *util.RobotsChecker) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		store:     store,
		limiter:   limiter,
		robots:    robots,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}
}

// Snapshot downloads the license list. force bypasses the cache. A snapshot
// failure is fatal to the run; there is nothing to generate without it.
func (c *Client) Snapshot(ctx context.Context, force bool) (*model.RegistrySnapshot, error) {
	url := c.baseURL + "/licenses.json"

	if !force {
		if data, ok := c.cacheGet(url); ok {
			var snap model.RegistrySnapshot
			if err := json.Unmarshal(data, &snap); err == nil {
				return &snap, nil
			}
			// Corrupt cache entry: fall through to a fresh fetch
			c.cacheDelete(url)
		}
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch license list: %w", err)
	}

	var snap model.RegistrySnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("parse license list: %w", err)
	}

	c.cacheSet(url, body)

	return &snap, nil
}

// Text fetches the raw text for one license, degrading to "" on any failure.
// The details document's plain licenseText is preferred; licenseTextHtml is
// stripped to text when that is all the registry has.
func (c *Client) Text(ctx context.Context, lic model.RegistryLicense) string {
	url := c.detailsURL(lic)

	if data, ok := c.cacheGet(url); ok {
		return string(data)
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no text for %s: %v\n", lic.LicenseID, err)
		return ""
	}

	var details model.LicenseDetails
	if err := json.Unmarshal(body, &details); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no text for %s: parse details: %v\n", lic.LicenseID, err)
		return ""
	}

	text := details.LicenseText
	if text == "" && details.LicenseTextHTML != "" {
		text = StripHTML(details.LicenseTextHTML)
	}

	c.cacheSet(url, []byte(text))

	return text
}

// detailsURL resolves the per-license details endpoint. Registry entries
// carry relative detailsUrl values ("./MIT.json").
func (c *Client) detailsURL(lic model.RegistryLicense) string {
	u := lic.DetailsURL
	switch {
	case u == "":
		return fmt.Sprintf("%s/%s.json", c.baseURL, lic.LicenseID)
	case strings.HasPrefix(u, "./"):
		return c.baseURL + strings.TrimPrefix(u, ".")
	default:
		return u
	}
}

// fetch performs one polite GET: robots check, rate-limit wait, bounded read.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if c.robots != nil {
		allowed, crawlDelay, err := c.robots.CanFetch(ctx, url)
		if err == nil && !allowed {
			return nil, fmt.Errorf("disallowed by robots.txt")
		}
		if c.limiter != nil {
			if err := c.limiter.WaitWithDelay(ctx, url, crawlDelay); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
		}
	} else if c.limiter != nil {
		if err := c.limiter.Wait(ctx, url); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func (c *Client) cacheGet(url string) ([]byte, bool) {
	if c.store == nil {
		return nil, false
	}
	return c.store.Get(cache.Key(url))
}

func (c *Client) cacheSet(url string, data []byte) {
	if c.store == nil {
		return
	}
	_ = c.store.Set(cache.Key(url), data, 0)
}

func (c *Client) cacheDelete(url string) {
	if c.store == nil {
		return
	}
	_ = c.store.Delete(cache.Key(url))
}
