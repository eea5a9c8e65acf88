// Package merge is a client for the Merge unified API.
//
// A Client carries configuration, credentials and the interceptor chain.
// Category packages (hris, ats, crm, filestorage, ticketing, accounting)
// build typed services on top of it; each call is implemented once with
// Execute and callers choose blocking or concurrent execution with Async,
// RetrieveMany and Pager.
package merge

import (
	_ "embed"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/merge-api/merge-go-client/config"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the client library version.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Client sends requests to the Merge API.
// It is safe for concurrent use once configured.
type Client struct {
	mu           sync.RWMutex
	cfg          config.Config
	httpClient   *http.Client
	logger       *slog.Logger
	interceptors []UnaryInterceptor
	userAgent    string
}

// NewClient validates cfg (filling its defaults) and returns a Client.
func NewClient(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = "merge-go-client/" + Version()
	}
	return &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		userAgent:  ua,
	}, nil
}

// WithHTTPClient sets the HTTP client used for round trips.
// It returns the client for chaining.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hc == nil {
		hc = http.DefaultClient
	}
	c.httpClient = hc
	return c
}

// WithLogger sets the logger Execute uses for decode failures and debug mode
// logs.
// If not set, slog.Default() will be used.
// It returns the client for chaining.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
	return c
}

// WithUnaryInterceptor adds an interceptor around every call.
// Interceptors run in the order they were added.
// It returns the client for chaining.
func (c *Client) WithUnaryInterceptor(i UnaryInterceptor) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interceptors = append(c.interceptors, i)
	return c
}

// WithUserAgent overrides the User-Agent header.
// It returns the client for chaining.
func (c *Client) WithUserAgent(ua string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userAgent = ua
	return c
}

// Config returns a copy of the client's validated configuration.
func (c *Client) Config() config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Logger returns the client's logger, or slog.Default() if none was set.
func (c *Client) Logger() *slog.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// snapshot is the per-call view of the client's settings.
type snapshot struct {
	baseURL      string
	apiKey       string
	accountToken string
	timeout      time.Duration
	debug        bool
	userAgent    string
	httpClient   *http.Client
	chain        UnaryInterceptor
}

func (c *Client) snapshot() snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot{
		baseURL:      c.cfg.BaseURL,
		apiKey:       c.cfg.APIKey,
		accountToken: c.cfg.AccountToken,
		timeout:      c.cfg.Timeout,
		debug:        c.cfg.Debug,
		userAgent:    c.userAgent,
		httpClient:   c.httpClient,
		chain:        chainInterceptors(c.interceptors),
	}
}
