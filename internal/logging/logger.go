package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON logger on stdout as the slog default and returns
// its handler so it can be combined with other sinks later.
func Setup(appEnv string) slog.Handler {
	level := slog.LevelInfo
	if appEnv == "development" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return handler
}
