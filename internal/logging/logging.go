package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog default with a text handler writing to w
// (stderr when nil) and returns the logger. level is DEBUG, INFO, WARN or ERROR;
// anything else means INFO.
func Setup(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel переводит строковый уровень в slog.Level
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
