package main

import (
	"io"
	"log/slog"
	"strings"
)

// setupLogging installs the default slog logger writing text records to w.
// verbose forces debug level; otherwise level is one of debug, info, warn, error.
func setupLogging(w io.Writer, level string, verbose bool) {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}
