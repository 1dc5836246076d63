package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter spaces out requests to the archive. The archive is a free public
// mirror, and a backfill fires several requests back to back, so requests
// are paced rather than sent as fast as retries allow.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing perSecond requests per second.
// A zero or negative rate disables limiting.
func New(perSecond float64) *Limiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Limiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the limiter permits the next request.
// It returns an error if the context is canceled before then.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed right now without waiting.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
