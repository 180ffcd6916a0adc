// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP document fetcher used by the search
// pipeline.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// ErrUnexpectedStatus is returned when the server answers with a non-2xx code.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// MaxBodyBytes caps how much of a response body is read.
const MaxBodyBytes = 10 << 20

const defaultTimeout = 30 * time.Second

// Fetcher issues GET requests and returns the response body as text. It
// makes exactly one attempt per call.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	// Cookie, when set, is sent verbatim as the Cookie header.
	Cookie string
	Logger *zap.Logger
}

// NewFetcher builds a Fetcher from cfg. A nil logger discards logs.
func NewFetcher(cfg types.HTTPConfig, cookie string, logger *zap.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: cfg.UserAgent,
		Cookie:    cookie,
		Logger:    logger,
	}
}

// Fetch retrieves url. Transport failures and non-2xx responses are errors;
// the body of a failed response is drained and discarded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	if f.Cookie != "" {
		req.Header.Set("Cookie", f.Cookie)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting document: %w", err)
	}
	defer resp.Body.Close()

	f.logger().Debug("http response",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

func (f *Fetcher) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}
