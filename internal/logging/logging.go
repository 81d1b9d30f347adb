// Package logging builds the process-wide slog logger. Logs go to stderr
// by default; when a log file is configured they go to a size-rotated file
// instead.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

func New(level slog.Level, logfile string) *slog.Logger {
	var w io.Writer = os.Stderr
	if logfile != "" {
		w = &lumberjack.Logger{
			Filename:   logfile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
