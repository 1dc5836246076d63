package cbr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"resty.dev/v3"

	"cbrfetcher/internal/fetcher"
	"cbrfetcher/internal/ratelimit"
)

const archivePath = "/archive/{year}/{month}/{day}/daily_json.js"

// archiveDocument is the daily archive payload. Only the quoted values are
// decoded; the archive carries more fields per currency.
type archiveDocument struct {
	Date   string           `json:"Date"`
	Valute map[string]quote `json:"Valute"`
}

type quote struct {
	CharCode string  `json:"CharCode"`
	Nominal  int     `json:"Nominal"`
	Value    float64 `json:"Value"`
}

// Client fetches one archived day's rate for a single currency code.
type Client struct {
	code    string
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// New creates an archive client. Retries belong to the caller's retry
// policy, not the transport. The underlying transport must be released
// with Close once the run is over.
func New(baseURL, code string, timeout time.Duration, limiter *ratelimit.Limiter) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{
		code:    code,
		client:  client,
		limiter: limiter,
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.client.Close()
}

// DailyRate issues one GET for the given day's archive document and
// extracts the quoted value for the client's currency code. A 404 or an
// absent currency entry means the archive has no data for that day and is
// reported as a NoData outcome, not an error. One network round trip per
// call, no caching.
func (c *Client) DailyRate(ctx context.Context, day time.Time) (fetcher.Outcome, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return fetcher.Outcome{}, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"year":  fmt.Sprintf("%04d", day.Year()),
			"month": fmt.Sprintf("%02d", int(day.Month())),
			"day":   fmt.Sprintf("%02d", day.Day()),
		}).
		Get(archivePath)
	if err != nil {
		return fetcher.Outcome{}, classifyTransportError(err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fetcher.NoData(), nil
	}
	if !resp.IsSuccess() {
		return fetcher.Outcome{}, fetcher.ClassifyHTTPError(resp.StatusCode())
	}

	// The archive serves JSON under a .js content type, so the body is
	// decoded by hand instead of through SetResult.
	var doc archiveDocument
	if err := json.Unmarshal(resp.Bytes(), &doc); err != nil {
		return fetcher.Outcome{}, fetcher.NewValidationError(
			fmt.Sprintf("undecodable archive document for %s: %v", day.Format("2006-01-02"), err))
	}

	q, ok := doc.Valute[c.code]
	if !ok {
		return fetcher.NoData(), nil
	}

	return fetcher.Found(q.Value), nil
}

// classifyTransportError maps a transport-level failure onto the fetch
// error taxonomy so the retry policy can branch on it.
func classifyTransportError(err error) *fetcher.FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return fetcher.NewTimeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fetcher.NewTimeoutError(err)
	}
	return fetcher.NewNetworkError(err)
}
