package config

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// SetupLogging points the global logrus logger at the log file (the TUI owns
// the terminal, so nothing is written to stderr). The returned closer must be
// called on exit.
func SetupLogging(c *Config) (io.Closer, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(f)
	return f, nil
}
