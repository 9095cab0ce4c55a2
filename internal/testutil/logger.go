package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a debug-level logger writing to the returned buffer.
// The buffer is not synchronized; read it only after the code under test returns.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
