// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// parallel.go — chunked fan-out over the vertex range.

package metrics

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny graphs on the calling goroutine.
const minChunk = 256

// forEachChunk calls fn on disjoint [lo,hi) ranges covering [0,n), using at
// most workers goroutines. fn must only write to indices inside its range.
func forEachChunk(ctx context.Context, n, workers int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if workers <= 1 || n <= minChunk {
		fn(0, n)
		return nil
	}

	chunk := max((n+workers-1)/workers, minChunk)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}

	return eg.Wait()
}
