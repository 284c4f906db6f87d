package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/epntex/pkg/doc"
	"github.com/matzehuels/epntex/pkg/errors"
	"github.com/matzehuels/epntex/pkg/httputil"
	"github.com/matzehuels/epntex/pkg/observability"
)

const (
	httpTimeout     = 10 * time.Second
	defaultAttempts = 3
	defaultDelay    = time.Second
	userAgent       = "epntex"
	pageNamespace   = "page:"
)

// Options configures a Client.
type Options struct {
	// Cache stores fetched bodies. Nil disables caching.
	Cache *httputil.Cache
	// Refresh bypasses cached entries but still stores fresh bodies.
	Refresh bool
	// HTTPClient overrides the default client (10s timeout).
	HTTPClient *http.Client
	// Attempts and RetryDelay tune the backoff; zero means 3 attempts
	// starting at one second.
	Attempts   int
	RetryDelay time.Duration
	Logger     *log.Logger
}

// Client fetches pages over HTTP.
type Client struct {
	http     *http.Client
	cache    *httputil.Cache
	refresh  bool
	attempts int
	delay    time.Duration
	logger   *log.Logger
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		http:     opts.HTTPClient,
		refresh:  opts.Refresh,
		attempts: opts.Attempts,
		delay:    opts.RetryDelay,
		logger:   opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: httpTimeout}
	}
	if opts.Cache != nil {
		c.cache = opts.Cache.Namespace(pageNamespace)
	}
	if c.attempts <= 0 {
		c.attempts = defaultAttempts
	}
	if c.delay <= 0 {
		c.delay = defaultDelay
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// Page fetches rawURL and parses it.
func (c *Client) Page(ctx context.Context, rawURL string) (*doc.Document, error) {
	body, err := c.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return doc.ParseBytes(body)
}

// Fetch returns the body of rawURL, from the cache when a fresh entry exists.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := errors.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	var body string
	err := c.cached(ctx, rawURL, &body, func() error {
		text, err := c.getText(ctx, rawURL)
		if err != nil {
			return err
		}
		body = text
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (c *Client) cached(ctx context.Context, key string, v *string, fetch func() error) error {
	hooks := observability.Cache()
	if c.cache != nil && !c.refresh {
		ok, err := c.cache.Get(key, v)
		if ok {
			hooks.OnCacheHit(ctx, key)
			c.logger.Debug("cache hit", "url", key)
			return nil
		}
		if err != nil {
			c.logger.Debug("cache entry unusable", "url", key, "error", err)
		}
		hooks.OnCacheMiss(ctx, key)
	}

	if err := httputil.Retry(ctx, c.attempts, c.delay, fetch); err != nil {
		return err
	}

	if c.cache != nil {
		n, err := c.cache.Set(key, *v)
		if err != nil {
			c.logger.Warn("cache write failed", "url", key, "error", err)
			return nil
		}
		hooks.OnCacheSet(ctx, key, n)
	}
	return nil
}

func (c *Client) getText(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", rawURL)
	}
	req.Header.Set("User-Agent", userAgent)

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	c.logger.Debug("fetching", "url", rawURL)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", redact(rawURL)))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode, rawURL); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read body of %s", redact(rawURL)))
	}
	c.logger.Debug("fetched", "url", rawURL, "bytes", len(data), "elapsed", time.Since(start).Round(time.Millisecond))
	return string(data), nil
}

func checkStatus(code int, rawURL string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "page not found: %s", redact(rawURL))
	case code >= 500:
		return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "GET %s: status %d", redact(rawURL), code))
	default:
		return errors.New(errors.ErrCodeNetwork, "GET %s: status %d", redact(rawURL), code)
	}
}

// redact drops credentials and query strings from URLs shown in errors.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
