// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

const defaultBatchConcurrency = 4

// BatchResult is the outcome of one spec in a batch.
type BatchResult struct {
	Spec    QuerySpec
	Records []types.ResultRecord
	Err     error
}

// SearchBatch runs each spec as an independent search with at most
// concurrency in flight. Results are returned in input order; a failed spec
// records its error and does not stop the others.
func SearchBatch(ctx context.Context, c *Client, specs []QuerySpec, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]BatchResult, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			records, err := c.Search(ctx, spec)
			results[i] = BatchResult{Spec: spec, Records: records, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Failed returns how many results carry an error.
func Failed(results []BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
