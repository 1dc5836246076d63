package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"cbrfetcher/internal/cbr"
	"cbrfetcher/internal/collector"
	"cbrfetcher/internal/config"
	"cbrfetcher/internal/fetcher"
	"cbrfetcher/internal/persister"
	"cbrfetcher/internal/ratelimit"
)

// ErrNoData reports that no day in the requested window had archive data.
var ErrNoData = errors.New("no data fetched for the requested date range")

// Coordinator composes one end-to-end run: trailing window, fetch with
// retries, validation, and persistence.
type Coordinator struct {
	cfg *config.Config
	now func() time.Time
}

// New creates a Coordinator. now may be nil, in which case the wall clock
// drives the window, the RetrievedAt stamp, and the output filename.
func New(cfg *config.Config, now func() time.Time) *Coordinator {
	if now == nil {
		now = time.Now
	}
	return &Coordinator{cfg: cfg, now: now}
}

// Run fetches the trailing week and writes the parquet file, returning its
// path. The archive transport lives exactly as long as the run and is
// released on every exit path. The run either fully succeeds with a file of
// 1-7 rows or fully fails with no file written.
func (c *Coordinator) Run(ctx context.Context) (string, error) {
	dates := collector.DateRange(c.now())

	client := cbr.New(c.cfg.ArchiveBaseURL, c.cfg.CurrencyCode, c.cfg.RequestTimeout,
		ratelimit.New(c.cfg.RequestsPerSecond))
	defer client.Close()

	coll := collector.New(client, fetcher.Retrier{MaxRetries: c.cfg.MaxRetries},
		c.cfg.Pair, c.cfg.Source, c.now)

	records, err := coll.Collect(ctx, dates)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrNoData
	}

	path := filepath.Join(c.cfg.OutDir, persister.Filename(c.cfg.FilePrefix, c.now()))
	if err := persister.Write(records, path); err != nil {
		return "", err
	}

	slog.Info("saved rates",
		"path", path,
		"rows", len(records),
		"window_start", dates[0].Format("2006-01-02"),
		"window_end", dates[len(dates)-1].Format("2006-01-02"))

	return path, nil
}
