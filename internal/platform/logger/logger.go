package logger

import (
	"log/slog"
	"os"
)

// New returns a structured stdout logger shared across services.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
