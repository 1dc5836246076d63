package testutil

import (
	"context"
	"time"

	"cbrfetcher/internal/fetcher"
)

// MockDailyRateClient is a mock implementation of the collector's
// DailyRateClient interface for testing
type MockDailyRateClient struct {
	DailyRateFunc func(ctx context.Context, day time.Time) (fetcher.Outcome, error)

	// Calls counts every DailyRate invocation, including retried ones
	Calls int
}

// DailyRate implements the DailyRateClient interface
func (m *MockDailyRateClient) DailyRate(ctx context.Context, day time.Time) (fetcher.Outcome, error) {
	m.Calls++
	if m.DailyRateFunc != nil {
		return m.DailyRateFunc(ctx, day)
	}
	return fetcher.NoData(), nil
}

// NewScriptedClient creates a mock client that replays the given outcomes
// in sequence, one per call. An entry with a non-nil error takes precedence
// over its outcome. Calls past the end of the script repeat the last entry.
func NewScriptedClient(script []ScriptedCall) *MockDailyRateClient {
	m := &MockDailyRateClient{}
	m.DailyRateFunc = func(ctx context.Context, day time.Time) (fetcher.Outcome, error) {
		i := m.Calls - 1
		if i >= len(script) {
			i = len(script) - 1
		}
		call := script[i]
		if call.Err != nil {
			return fetcher.Outcome{}, call.Err
		}
		return call.Outcome, nil
	}
	return m
}

// ScriptedCall is one entry of a scripted client's call sequence.
type ScriptedCall struct {
	Outcome fetcher.Outcome
	Err     error
}
