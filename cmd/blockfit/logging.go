package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs interactive sessions to ~/.blockfit/blockfit.log so the
// alternate screen stays clean. It falls back to discarding output.
func fileLogger() (*log.Logger, func()) {
	noop := func() {}
	home, err := os.UserHomeDir()
	if err != nil {
		return discardLogger(), noop
	}
	dir := filepath.Join(home, ".blockfit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discardLogger(), noop
	}
	f, err := os.OpenFile(filepath.Join(dir, "blockfit.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discardLogger(), noop
	}
	logger, err := newLogger(f, "blockfit")
	if err != nil {
		f.Close()
		return discardLogger(), noop
	}
	return logger, func() { f.Close() }
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
