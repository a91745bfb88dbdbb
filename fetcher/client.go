package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"lottosync/config"
)

var (
	// ErrBadStatus marks a response with a non-2xx status code
	ErrBadStatus = errors.New("unexpected response status")

	// ErrNotJSON marks a response body that does not open a JSON value,
	// typically an upstream HTML error page
	ErrNotJSON = errors.New("response body is not JSON")
)

// Client performs HTTP GETs against upstream sources with bounded retries,
// linear backoff and request pacing
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	backoffBase time.Duration
	userAgent   string
}

// NewClient creates a new fetch client from the fetch configuration.
// A non-positive attempt limit is treated as a single attempt.
func NewClient(cfg config.FetchConfig) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		maxAttempts: maxAttempts,
		backoffBase: cfg.BackoffBase,
		userAgent:   cfg.UserAgent,
	}
}

// Fetch GETs url and returns the response body. Transport errors, non-2xx
// statuses and non-JSON bodies are retried up to the configured attempt
// limit with a linearly growing delay between attempts; after the last
// attempt the most recent error is returned.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * c.backoffBase
			log.WithFields(log.Fields{
				"url":     url,
				"attempt": attempt,
				"delay":   delay,
			}).Debug("Waiting before retry")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		log.WithFields(log.Fields{
			"url":     url,
			"attempt": attempt,
			"error":   err,
		}).Warn("Fetch attempt failed")
	}

	return nil, fmt.Errorf("failed to fetch %s after %d attempts: %w", url, c.maxAttempts, lastErr)
}

// get performs a single GET attempt
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !looksLikeJSON(body) {
		return nil, ErrNotJSON
	}

	return body, nil
}

// looksLikeJSON reports whether the first non-whitespace byte of body opens a
// JSON object or array
func looksLikeJSON(body []byte) bool {
	for _, b := range body {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b == '{' || b == '['
	}
	return false
}
