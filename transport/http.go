// Package transport fetches raw response bodies for the emote decoders.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	emotes "github.com/reoring/emotes"
	"github.com/reoring/emotes/config"
)

// Getter performs a GET and returns the full response body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// GetterFunc adapts a function to Getter.
type GetterFunc func(ctx context.Context, url string) ([]byte, error)

// Get calls f(ctx, url).
func (f GetterFunc) Get(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: %s", e.URL, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

const errorBodyLimit = 512

// Option customizes an HTTP getter.
type Option func(*HTTP)

// WithClient replaces the underlying http.Client. Its Timeout is left as is.
func WithClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *HTTP) {
		if l != nil {
			h.logger = l
		}
	}
}

// HTTP is the default net/http backed Getter.
type HTTP struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// NewHTTP builds a getter from cfg. Zero values fall back to the defaults.
func NewHTTP(cfg config.HTTP, opts ...Option) *HTTP {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = config.DefaultUserAgent
	}
	h := &HTTP{
		client:    &http.Client{Timeout: timeout},
		userAgent: ua,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Get issues a GET to url. Request and network errors and non-2xx statuses
// are transport failures; failing to read the body is an I/O failure.
func (h *HTTP) Get(ctx context.Context, url string) ([]byte, error) {
	const op = "transport.Get"
	requestID := uuid.NewString()
	logger := h.logger.With("request_id", requestID, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, emotes.TransportFailure(op, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		logger.Debug("emote request failed", "error", err)
		return nil, emotes.TransportFailure(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		logger.Debug("emote request rejected", "status", resp.StatusCode)
		return nil, emotes.TransportFailure(op, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        url,
			Body:       strings.TrimSpace(string(snippet)),
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug("emote response read failed", "error", err)
		return nil, emotes.IOFailure(op, fmt.Errorf("read body: %w", err))
	}
	logger.Debug("emote request completed",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)
	return body, nil
}
