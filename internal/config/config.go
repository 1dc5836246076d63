package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"cbrfetcher/internal/fetcher"
)

// Config holds every process-wide default for a run: the archive endpoint,
// the fixed pair/source identifiers, and the fetch budgets. Values are
// injected into the coordinator rather than read from package globals so
// tests can override them without touching process state.
type Config struct {
	// Archive endpoint and the currency entry to extract from it
	ArchiveBaseURL string `mapstructure:"archive_base_url"`
	CurrencyCode   string `mapstructure:"currency_code"`

	// Fixed identifiers stamped into every record
	Pair   string `mapstructure:"pair"`
	Source string `mapstructure:"source"`

	// Output location and filename prefix
	FilePrefix string `mapstructure:"file_prefix"`
	OutDir     string `mapstructure:"out_dir"`

	// Fetch budgets
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// Load reads configuration from defaults, an optional config file, and
// environment variable overrides. Environment variables take precedence
// over config file values.
//
// Recognized environment variables:
//   - CBR_ARCHIVE_BASE_URL (defaults to the production archive)
//   - CBR_OUT_DIR (defaults to the current directory)
//   - CBR_REQUEST_TIMEOUT (Go duration string, defaults to 10s)
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.AutomaticEnv()

	// Defaults mirror the production archive and record identity
	v.SetDefault("archive_base_url", "https://www.cbr-xml-daily.ru")
	v.SetDefault("currency_code", "USD")
	v.SetDefault("pair", "USD/RUB")
	v.SetDefault("source", "CBR")
	v.SetDefault("file_prefix", "cbr_usdrub")
	v.SetDefault("out_dir", ".")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("max_retries", fetcher.DefaultMaxRetries)
	v.SetDefault("requests_per_second", 4.0)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.cbrfetcher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variable overrides
	v.BindEnv("archive_base_url", "CBR_ARCHIVE_BASE_URL")
	v.BindEnv("out_dir", "CBR_OUT_DIR")
	v.BindEnv("request_timeout", "CBR_REQUEST_TIMEOUT")

	// Unmarshal config into struct
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Reject values no run could work with
	var invalid []string
	if config.ArchiveBaseURL == "" {
		invalid = append(invalid, "archive_base_url")
	}
	if config.CurrencyCode == "" {
		invalid = append(invalid, "currency_code")
	}
	if config.RequestTimeout <= 0 {
		invalid = append(invalid, "request_timeout")
	}
	if config.MaxRetries < 0 {
		invalid = append(invalid, "max_retries")
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
	}

	return config, nil
}
