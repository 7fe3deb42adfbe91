// SPDX-License-Identifier: MIT

package expander

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited throttles calls into a source that charges per request, such
// as a remote graph store. Every lookup consumes one token.
type RateLimited struct {
	src     Expander
	limiter *rate.Limiter
}

// NewRateLimited wraps src with a token bucket of the given rate and burst.
func NewRateLimited(src Expander, limit rate.Limit, burst int) (*RateLimited, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if burst < 1 {
		return nil, fmt.Errorf("expander: burst must be ≥ 1, got %d", burst)
	}

	return &RateLimited{src: src, limiter: rate.NewLimiter(limit, burst)}, nil
}

// Neighbors implements Expander. It blocks until a token is available or ctx
// is done.
func (r *RateLimited) Neighbors(ctx context.Context, id string) ([]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("expander: rate limit: %w", err)
	}
	return r.src.Neighbors(ctx, id)
}

// Degree implements Expander.
func (r *RateLimited) Degree(ctx context.Context, id string) (int, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("expander: rate limit: %w", err)
	}
	return r.src.Degree(ctx, id)
}

// NodeCount forwards to the wrapped source; -1 when it is not a Sizer.
func (r *RateLimited) NodeCount() int { return forwardSize(r.src) }
