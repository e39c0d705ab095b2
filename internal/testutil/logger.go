package testutil

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/anhminhnguyen3110/chatbot/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything written to it.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}

// MakeCaptureLogger returns a logger emitting JSON lines into the returned buffer.
func MakeCaptureLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))}, &buf
}
