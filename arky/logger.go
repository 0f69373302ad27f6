package arky

import (
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog logger tagged with the SDK component
// name. Consumers that already run slog can pass their own logger via
// Config.Logger instead.
func NewLogger(component string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With("component", component)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
