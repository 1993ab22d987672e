package ember

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for runtime diagnostics.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the runtime.
// Call this from main() after parsing flags or loading config.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// logger is the package logger. Warnings cover degraded-but-continuing paths
// (scene exit failures, persistence fallbacks); nothing here is fatal.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
