package logger

import (
	"log/slog"
	"os"
)

// New builds the process logger: JSON to stdout, debug level in dev.
// Components receive it explicitly; there is no package-level state.
func New(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "dev" {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
