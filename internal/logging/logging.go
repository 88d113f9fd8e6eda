// Package logging configures the process-wide logrus logger. Set up once at
// startup; every other package logs through the logrus package functions.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/config"
)

// Setup applies the logging section of the config. When file logging is
// enabled, a timestamp-named log file is created under the configured
// directory (resolved relative to the executable) and output goes to both
// stderr and the file. Returns the log file path, empty when logging only to
// stderr.
func Setup(cfg *config.Config) (string, error) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return "", fmt.Errorf("parsing log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	if !cfg.Logging.ToFile {
		logrus.SetOutput(os.Stderr)
		return "", nil
	}

	dir := config.ResolvePath(cfg.Logging.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, time.Now().Format("20060102150405")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening log file: %w", err)
	}

	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	return path, nil
}
