package fetcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultMaxRetries is the retry budget: additional attempts after the
// first, so the default allows up to 4 attempts in total.
const DefaultMaxRetries = 3

// Operation fetches one value. It is bound to its target day before being
// handed to the retrier, so every attempt repeats the exact same request.
type Operation func(ctx context.Context) (Outcome, error)

// RetryExhaustedError reports that every attempt failed transiently.
type RetryExhaustedError struct {
	Attempts int
	Last     error
}

// Error implements the error interface
func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("fetch failed after %d attempts: %v", e.Attempts, e.Last)
}

// Unwrap exposes the last transient failure to errors.Is and errors.As
func (e *RetryExhaustedError) Unwrap() error {
	return e.Last
}

// Retrier reruns an operation while it keeps failing transiently.
// Transient failures (server errors, network failures, timeouts) consume
// one unit of the budget each; anything else propagates immediately.
// A NoData outcome is a success and is never retried.
type Retrier struct {
	MaxRetries int
}

// Do invokes op until it succeeds, fails permanently, or exhausts the
// retry budget. Retries are immediate, with no inter-attempt delay.
func (r Retrier) Do(ctx context.Context, op Operation) (Outcome, error) {
	var lastTransient error
	for attempt := 0; attempt <= r.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}

		out, err := op(ctx)
		if err == nil {
			return out, nil
		}

		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) || !fetchErr.Retryable {
			return Outcome{}, err
		}

		lastTransient = err
		if attempt < r.MaxRetries {
			slog.Debug("retrying fetch after transient failure",
				"attempt", attempt+1,
				"max_retries", r.MaxRetries,
				"error", err.Error())
		}
	}

	return Outcome{}, &RetryExhaustedError{Attempts: r.MaxRetries + 1, Last: lastTransient}
}
