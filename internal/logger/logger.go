package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// ParseLevel maps a config level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}

func NewFileLogger(path string, logLevel slog.Level) (*slog.Logger, error) {
	file, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		os.FileMode(0644),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(logLevel)

	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: levelVar,
	})), nil
}
