package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 30 * time.Second

// Client fetches HTML pages.
type Client struct {
	// http is the underlying resty client. Retries are left at zero.
	http *resty.Client

	// logger receives one debug record per completed request.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*config)

type config struct {
	timeout    time.Duration
	userAgent  string
	headers    map[string]string
	logger     *slog.Logger
	httpClient *http.Client
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. Empty keeps the client default.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithHeaders adds extra request headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *config) {
		c.headers = headers
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHTTPClient makes the Client send requests through hc.
// Tests use it to route requests to an httptest server transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	cfg := &config{
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var rc *resty.Client
	if cfg.httpClient != nil {
		rc = resty.NewWithClient(cfg.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetTimeout(cfg.timeout)
	rc.SetRetryCount(0)
	rc.SetLogger(newRestyLogger(cfg.logger))
	rc.SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if cfg.userAgent != "" {
		rc.SetHeader("User-Agent", cfg.userAgent)
	}
	if len(cfg.headers) > 0 {
		rc.SetHeaders(cfg.headers)
	}

	c := &Client{http: rc, logger: cfg.logger}
	rc.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		c.logger.Debug("page fetched",
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"bytes", len(res.Body()),
			"elapsed", res.Time(),
		)
		return nil
	})

	return c
}

// Fetch GETs pageURL and parses the response into a document.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrTransport, pageURL, err)
	}

	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, pageURL, res.StatusCode())
	}

	body, err := charset.NewReader(bytes.NewReader(res.Body()), res.Header().Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, pageURL, err)
	}

	return doc, nil
}
