package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config selects the level and output format of the application logger.
type Config struct {
	Level  string `yaml:"level" json:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" json:"format" env:"LOG_FORMAT"`
}

// New builds a slog-backed Logger writing to w. Format "json" selects the
// JSON handler; anything else produces text.
func New(cfg Config, w io.Writer) *SlogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return NewSlogLogger(slog.New(h))
}

// NewNop returns a logger that discards everything.
func NewNop() *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
