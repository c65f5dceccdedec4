package logger

import (
	"io"
	"log/slog"

	"interbank/internal/platform/config"
)

// New returns a structured logger writing to w at the configured level and format.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// MaskAccount keeps the last four characters of an account number or CCI.
func MaskAccount(s string) string {
	const visible = 4
	if len(s) <= visible {
		return s
	}
	masked := make([]byte, len(s))
	for i := range masked[:len(s)-visible] {
		masked[i] = '*'
	}
	copy(masked[len(s)-visible:], s[len(s)-visible:])
	return string(masked)
}
