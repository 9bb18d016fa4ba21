package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. Stdout belongs to the UI, so without a
// log file everything is discarded.
func newLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logger.SetOutput(io.Discard)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logrus.WithError(err).WithField("log_file", cfg.LogFile).Warn("Cannot open log file, logging disabled")
		} else {
			logger.SetOutput(f)
		}
	}

	for _, w := range cfg.Warnings {
		logger.WithField("component", "config").Warn(w)
	}
	return logger
}
