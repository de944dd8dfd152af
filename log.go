package tifc

import (
	"log/slog"
	"os"
)

// logger traces decoder transitions and layout maths at Debug level.
// It discards by default so library users opt in explicitly; TIFC_DEBUG
// routes it to stderr for quick inspection.
var logger = slog.New(slog.DiscardHandler)

func init() {
	if os.Getenv("TIFC_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
}

// SetLogger replaces the package logger. Pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.DiscardHandler)
		return
	}
	logger = l
}
