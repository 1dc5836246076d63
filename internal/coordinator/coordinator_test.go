package coordinator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cbrfetcher/internal/config"
	"cbrfetcher/internal/fetcher"
)

func testConfig(baseURL, outDir string) *config.Config {
	return &config.Config{
		ArchiveBaseURL:    baseURL,
		CurrencyCode:      "USD",
		Pair:              "USD/RUB",
		Source:            "CBR",
		FilePrefix:        "cbr_usdrub",
		OutDir:            outDir,
		RequestTimeout:    5 * time.Second,
		MaxRetries:        3,
		RequestsPerSecond: 0, // unlimited in tests
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 12, 24, 15, 4, 5, 0, time.UTC)
}

func TestRun_SavesFileWithExpectedName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Valute": {"USD": {"Value": 90.25}}}`))
	}))
	defer server.Close()

	outDir := t.TempDir()
	coord := New(testConfig(server.URL, outDir), fixedClock)

	path, err := coord.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	want := filepath.Join(outDir, "cbr_usdrub_2025-12-24_150405.parquet")
	if path != want {
		t.Errorf("Run() path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestRun_NoDataForWholeWindow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	outDir := t.TempDir()
	coord := New(testConfig(server.URL, outDir), fixedClock)

	_, err := coord.Run(context.Background())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Run() error = %v, want ErrNoData", err)
	}

	entries, readErr := os.ReadDir(outDir)
	if readErr != nil {
		t.Fatalf("reading output dir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("output dir has %d entries, want none on failure", len(entries))
	}
}

func TestRun_PermanentErrorWritesNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	outDir := t.TempDir()
	coord := New(testConfig(server.URL, outDir), fixedClock)

	_, err := coord.Run(context.Background())
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}

	var fetchErr *fetcher.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Run() error = %v, want a wrapped *FetchError", err)
	}

	entries, readErr := os.ReadDir(outDir)
	if readErr != nil {
		t.Fatalf("reading output dir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("output dir has %d entries, want none on failure", len(entries))
	}
}

func TestRun_RetryExhaustionFailsRun(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testConfig(server.URL, t.TempDir())
	cfg.MaxRetries = 1
	coord := New(cfg, fixedClock)

	_, err := coord.Run(context.Background())
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}

	var exhausted *fetcher.RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Run() error = %v, want *RetryExhaustedError", err)
	}
	// The first date burns its whole budget (2 attempts) and aborts the run
	if requests != 2 {
		t.Errorf("archive received %d requests, want 2", requests)
	}
}
