// Package feed fetches the APOD media feed.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	DefaultURL          = "https://cdn.jsdelivr.net/gh/GCA-Classroom/apod/data.json"
	DefaultMaxBodyBytes = 8 << 20
	userAgent           = "skyframe/1.0"
)

var errBodyTooLarge = errors.New("response body exceeds limit")

// Source yields one feed payload per call. The payload is well-formed JSON
// but its shape is not checked.
type Source interface {
	FetchItems(ctx context.Context) (json.RawMessage, error)
}

// NetworkError is a non-2xx response (StatusCode set) or a transport
// failure (StatusCode 0).
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network response was not ok: %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch media feed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the body was not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse media feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Client fetches the feed over HTTP, retrying transport failures and 5xx
// responses.
type Client struct {
	url          string
	http         *http.Client
	retryDelays  []time.Duration
	maxBodyBytes int64
}

func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:          url,
		http:         &http.Client{Timeout: timeout},
		retryDelays:  []time.Duration{1 * time.Second, 3 * time.Second},
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

func (c *Client) SetRetryDelays(delays []time.Duration) {
	c.retryDelays = delays
}

func (c *Client) SetMaxBodyBytes(n int64) {
	c.maxBodyBytes = n
}

func (c *Client) URL() string {
	return c.url
}

func (c *Client) FetchItems(ctx context.Context) (json.RawMessage, error) {
	maxAttempts := 1 + len(c.retryDelays)
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, err := c.fetch(ctx)
		if err == nil {
			slog.Info("feed: fetched media feed",
				"url", c.url,
				"size", humanize.Bytes(uint64(len(body))),
				"attempt", attempt,
			)
			return body, nil
		}

		lastErr = err
		if !retryable(err) || attempt == maxAttempts {
			break
		}

		slog.Warn("feed: fetch failed, retrying", "url", c.url, "attempt", attempt, "error", err)
		select {
		case <-time.After(c.retryDelays[attempt-1]):
		case <-ctx.Done():
			return nil, &NetworkError{Err: ctx.Err()}
		}
	}

	slog.Error("feed: failed to fetch media feed", "url", c.url, "error", lastErr)
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, &NetworkError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, &ParseError{Err: errBodyTooLarge}
	}
	if !json.Valid(body) {
		return nil, &ParseError{Err: errors.New("body is not valid JSON")}
	}
	return json.RawMessage(body), nil
}

func retryable(err error) bool {
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		return false
	}
	if errors.Is(netErr.Err, context.Canceled) || errors.Is(netErr.Err, context.DeadlineExceeded) {
		return false
	}
	return netErr.StatusCode == 0 || netErr.StatusCode >= 500
}
