package logging

import (
	"log/slog"
	"os"
)

// Init creates and sets the package-level default slog logger, a TextHandler
// on stderr. Debug mode lowers the level so per-field extraction trace is
// visible without touching the report on stdout.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
