package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout matches the historical error-log entries, which carry
// microsecond precision.
const timestampLayout = "2006-01-02 15:04:05.000000"

// ErrorLine formats an error message the way run failures are recorded
// and reported: the same line goes to the error log and becomes the
// process's termination message.
func ErrorLine(now time.Time, msg string) string {
	return fmt.Sprintf("%s - Error message: %s", now.Format(timestampLayout), msg)
}

// ErrorLog is the append-only error sink for ingest runs: one line per
// entry, created on first use.
type ErrorLog struct {
	path string
}

// NewErrorLog returns an ErrorLog writing to path. Nothing is opened
// until the first Append.
func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{path: path}
}

// Append writes one entry line, creating the file and its directory if
// needed. The file is opened and closed per entry so a crash never loses
// buffered lines.
func (l *ErrorLog) Append(line string) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("write error log: %w", err)
	}
	return nil
}
