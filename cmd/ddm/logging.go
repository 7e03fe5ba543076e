package main

import (
	"log/slog"
	"os"
	"strings"
)

var logger *slog.Logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// initLogging configures the global logger with a JSON handler at the
// requested level. Unknown levels fall back to warn.
func initLogging(logLevel string) error {
	level, ok := logLevelMap[strings.ToLower(logLevel)]
	if !ok {
		level = slog.LevelWarn
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	return nil
}
