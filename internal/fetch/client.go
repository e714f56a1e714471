package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nao1215/f1scraper/internal/target"
)

// Defaults for Client.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxBodySize = 5 * 1024 * 1024
	DefaultUserAgent   = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

// Fetcher retrieves the body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, t target.PageTarget) (string, error)
}

// Client fetches pages with a resty client.
type Client struct {
	rc          *resty.Client
	maxBodySize int64
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout of a whole request, body read included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(d)
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.rc.SetHeader("User-Agent", ua)
	}
}

// WithMaxBodySize limits how many bytes of a response body are accepted.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		c.maxBodySize = n
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient returns a Client with the default timeout, body limit and
// User-Agent, adjusted by opts.
func NewClient(opts ...Option) *Client {
	rc := resty.New().
		SetRetryCount(0).
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", DefaultUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5")

	c := &Client{
		rc:          rc,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	rc.OnBeforeRequest(c.onBeforeRequest)
	return c
}

func (c *Client) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	c.logger.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
	return nil
}

// Fetch issues one GET request for t and returns the response body.
func (c *Client) Fetch(ctx context.Context, t target.PageTarget) (string, error) {
	start := time.Now()

	resp, err := c.rc.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Execute(t.Method(), t.URL())
	if err != nil {
		c.logger.DebugContext(ctx, "request failed", "url", t.URL(), "error", err)
		return "", &TransportError{Phase: PhaseConnect, URL: t.URL(), Err: err}
	}

	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		snippet, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		c.logger.DebugContext(ctx, "unexpected status",
			"url", t.URL(),
			"status", resp.StatusCode(),
			"body", string(snippet),
		)
		return "", &StatusError{URL: t.URL(), StatusCode: resp.StatusCode(), Body: string(snippet)}
	}

	data, err := io.ReadAll(io.LimitReader(body, c.maxBodySize+1))
	if err != nil {
		return "", &TransportError{Phase: PhaseReadBody, URL: t.URL(), Err: err}
	}
	if int64(len(data)) > c.maxBodySize {
		return "", &TransportError{
			Phase: PhaseReadBody,
			URL:   t.URL(),
			Err:   fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, c.maxBodySize),
		}
	}

	c.logger.DebugContext(ctx, "fetched page",
		"url", t.URL(),
		"status", resp.StatusCode(),
		"bytes", len(data),
		"elapsed", time.Since(start),
	)
	return string(data), nil
}
