package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config captures process-level settings for the CLI and the conversion service.
type Config struct {
	LogLevel         slog.Level
	LogFormat        string
	BatchConcurrency int
	MaxBatchSize     int
	// MetricsFile, when set, receives the metrics registry in Prometheus
	// textfile format when the process exits.
	MetricsFile string
}

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Defaults applied when the matching environment variable is unset or invalid.
var (
	DefaultBatchConcurrency = 8
	DefaultMaxBatchSize     = 10000
)

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		LogLevel:         slog.LevelInfo,
		LogFormat:        LogFormatText,
		BatchConcurrency: DefaultBatchConcurrency,
		MaxBatchSize:     DefaultMaxBatchSize,
	}

	if lvl := strings.TrimSpace(os.Getenv("CCI_LOG_LEVEL")); lvl != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(lvl)); err == nil {
			cfg.LogLevel = parsed
		}
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("CCI_LOG_FORMAT"))) {
	case LogFormatJSON:
		cfg.LogFormat = LogFormatJSON
	case LogFormatText:
		cfg.LogFormat = LogFormatText
	}

	if n, ok := positiveInt(os.Getenv("CCI_BATCH_CONCURRENCY")); ok {
		cfg.BatchConcurrency = n
	}
	if n, ok := positiveInt(os.Getenv("CCI_MAX_BATCH_SIZE")); ok {
		cfg.MaxBatchSize = n
	}

	cfg.MetricsFile = strings.TrimSpace(os.Getenv("CCI_METRICS_FILE"))

	return cfg
}

func positiveInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
