package main

import (
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

func makeLogger(logLevel, format string, w io.Writer) (*slog.Logger, error) {
	var (
		level      slog.Level
		charmLevel charmlog.Level
	)
	switch logLevel {
	case "DEBUG":
		level, charmLevel = slog.LevelDebug, charmlog.DebugLevel
	case "INFO":
		level, charmLevel = slog.LevelInfo, charmlog.InfoLevel
	case "ERROR":
		level, charmLevel = slog.LevelError, charmlog.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level: %s", logLevel)
	}

	switch format {
	case "pretty":
		handler := charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmLevel,
		})
		return slog.New(handler), nil
	case "text":
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true, Level: level})
		return slog.New(handler), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}
