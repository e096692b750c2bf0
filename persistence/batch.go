// SPDX-License-Identifier: MIT

package persistence

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/stream"
)

// ComputeAll runs ComputeIntervals on every stream concurrently, at most
// GOMAXPROCS at a time. out[i] is the barcode of streams[i].
//
// The first failure cancels scheduling of the remaining streams and is
// returned wrapped with its stream position. Cancelling ctx has the same
// effect; reductions already running are never interrupted. Streams must not
// be mutated until ComputeAll returns.
func (e *Engine[U, F]) ComputeAll(ctx context.Context, streams []stream.Filtered[U], policy Policy) ([]*barcode.Collection[int], error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("ComputeAll: %v: %w", policy, ErrUnknownPolicy)
	}
	out := make([]*barcode.Collection[int], len(streams))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range streams {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := e.ComputeIntervals(s, policy)
			if err != nil {
				return fmt.Errorf("ComputeAll: stream %d: %w", i, err)
			}
			out[i] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ComputeAll: %w", err)
	}

	return out, nil
}
