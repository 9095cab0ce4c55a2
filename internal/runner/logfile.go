package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// OpenLogOutput opens the log destination. The terminal belongs to the UI, so
// logs go to a file; "-" selects stderr and an empty path discards them.
func OpenLogOutput(path string) (io.Writer, func() error, error) {
	path = strings.TrimSpace(path)
	switch path {
	case "":
		return io.Discard, func() error { return nil }, nil
	case "-":
		return os.Stderr, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("runner: create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("runner: open log file: %w", err)
	}
	return f, f.Close, nil
}
