package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cbrfetcher/internal/fetcher"
	"cbrfetcher/internal/record"
)

// DailyRateClient fetches the archived rate for a single day.
type DailyRateClient interface {
	DailyRate(ctx context.Context, day time.Time) (fetcher.Outcome, error)
}

// Collector walks a date window in order and assembles validated records.
type Collector struct {
	client  DailyRateClient
	retrier fetcher.Retrier
	pair    string
	source  string
	now     func() time.Time
}

// New creates a Collector. now may be nil, in which case the wall clock is
// used to stamp RetrievedAt.
func New(client DailyRateClient, retrier fetcher.Retrier, pair, source string, now func() time.Time) *Collector {
	if now == nil {
		now = time.Now
	}
	return &Collector{
		client:  client,
		retrier: retrier,
		pair:    pair,
		source:  source,
		now:     now,
	}
}

// Collect fetches each date in increasing order through the retry policy
// and returns the surviving records, oldest first. Days the archive has no
// data for are skipped without error, so the result may be a strict subset
// of the requested window. RetrievedAt is captured once and shared by every
// record. Any retry-exhausted or permanent failure on any single date
// aborts the whole pass; no partial result is returned on a hard failure.
func (c *Collector) Collect(ctx context.Context, dates []time.Time) ([]record.RateRecord, error) {
	retrievedAt := c.now()
	records := make([]record.RateRecord, 0, len(dates))

	for _, day := range dates {
		out, err := c.retrier.Do(ctx, func(ctx context.Context) (fetcher.Outcome, error) {
			return c.client.DailyRate(ctx, day)
		})
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", day.Format("2006-01-02"), err)
		}

		if out.Missing {
			slog.Debug("no archive data for day", "date", day.Format("2006-01-02"))
			continue
		}

		if err := record.ValidateRate(out.Rate); err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", day.Format("2006-01-02"), err)
		}

		records = append(records, record.RateRecord{
			Date:        day,
			Pair:        c.pair,
			Rate:        out.Rate,
			Source:      c.source,
			RetrievedAt: retrievedAt,
		})
	}

	return records, nil
}
