package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type Config struct {
	MaxSquares int
	LogFile    string
	LogLevel   logrus.Level

	// Problems found while reading the file; logged once a logger exists.
	Warnings []string
}

func defaultConfig() *Config {
	return &Config{
		MaxSquares: 0,
		LogFile:    "",
		LogLevel:   logrus.InfoLevel,
	}
}

// configPath is $PIXELPAINT_CONFIG when set, otherwise ~/.pixelpaintrc.
func configPath() string {
	if p := os.Getenv("PIXELPAINT_CONFIG"); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".pixelpaintrc")
}

func loadConfig() *Config {
	path := configPath()
	if path == "" {
		return defaultConfig()
	}
	return loadConfigFrom(path)
}

// loadConfigFrom never fails: a missing file gives the defaults and bad lines
// are skipped.
func loadConfigFrom(path string) *Config {
	config := defaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			config.warn("%s:%d: expected key = value", path, lineNo)
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "max_squares", "maxsquares", "cap":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				config.warn("%s:%d: max_squares must be a non-negative integer, got %q", path, lineNo, value)
				continue
			}
			config.MaxSquares = n
		case "log_file", "logfile":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if value != "" && !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.LogFile = value
		case "log_level", "loglevel":
			level, err := logrus.ParseLevel(value)
			if err != nil {
				config.warn("%s:%d: %v", path, lineNo, err)
				continue
			}
			config.LogLevel = level
		}
	}
	if err := scanner.Err(); err != nil {
		config.warn("%s: %v", path, err)
	}

	return config
}

func (c *Config) warn(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
