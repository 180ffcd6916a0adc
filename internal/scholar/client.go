// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/L04DB4L4NC3R/gscholar/internal/metrics"
	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// Fetcher retrieves the body of url as text. Any transport or status failure
// is returned as an error; the Client does not retry.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchFunc adapts a plain function to Fetcher.
type FetchFunc func(ctx context.Context, url string) (string, error)

func (f FetchFunc) Fetch(ctx context.Context, url string) (string, error) { return f(ctx, url) }

// Client runs the build, fetch, extract pipeline. It holds no per-search
// state and is safe for concurrent use when its Fetcher is.
type Client struct {
	fetcher Fetcher
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewClient wires a fetcher. A nil logger discards logs; m may be nil.
func NewClient(fetcher Fetcher, logger *zap.Logger, m *metrics.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{fetcher: fetcher, logger: logger, metrics: m}
}

// Search builds the request URL for spec, fetches it and extracts the
// results. The first failing stage stops the run and is reported as a
// *SearchError; no partial results are returned.
func (c *Client) Search(ctx context.Context, spec QuerySpec) ([]types.ResultRecord, error) {
	start := time.Now()

	records, err := c.search(ctx, spec)
	if err != nil {
		stage := StageBuild
		var se *SearchError
		if errors.As(err, &se) {
			stage = se.Stage
		}
		c.logger.Warn("search failed", zap.String("stage", string(stage)), zap.Error(err))
		c.metrics.RecordSearch(string(stage), time.Since(start))
		return nil, err
	}

	c.metrics.RecordSearch(metrics.OutcomeOK, time.Since(start))
	return records, nil
}

func (c *Client) search(ctx context.Context, spec QuerySpec) ([]types.ResultRecord, error) {
	for _, w := range spec.Validate() {
		c.logger.Warn("query advisory", zap.String("query", spec.Query), zap.String("warning", w))
	}

	url, err := spec.Build()
	if err != nil {
		return nil, &SearchError{Stage: StageBuild, Err: err}
	}
	c.logger.Debug("built query", zap.String("url", url))

	if c.fetcher == nil {
		return nil, &SearchError{Stage: StageFetch, Err: fmt.Errorf("%w: no fetcher configured", ErrConnection)}
	}
	document, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, &SearchError{Stage: StageFetch, Err: fmt.Errorf("%w: %w", ErrConnection, err)}
	}
	c.logger.Debug("fetched document", zap.String("url", url), zap.Int("bytes", len(document)))

	records, skipped, err := extract(document)
	if err != nil {
		return nil, &SearchError{Stage: StageExtract, Err: err}
	}
	c.metrics.RecordExtraction(len(records), skipped)
	c.logger.Info("extracted results",
		zap.String("url", url),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)

	return records, nil
}
