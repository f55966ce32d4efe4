package cmd

import (
	"io"
	"log/slog"
)

// NewLogger builds the root structured logger described by configs.
func NewLogger(configs Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: configs.LogLevel}
	if configs.LogFormat == LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
