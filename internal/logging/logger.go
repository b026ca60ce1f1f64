package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"todo-list/internal/config"
)

// DebugEnabled returns true if debug mode is enabled via the TODO_DEBUG
// environment variable. Any non-empty value other than a false boolean counts.
func DebugEnabled() bool {
	v := os.Getenv("TODO_DEBUG")
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}

// New builds a logger from the logging configuration, writing to stderr.
func New(cfg config.LoggingConfig) *log.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger that writes to out.
func NewWithWriter(cfg config.LoggingConfig, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if DebugEnabled() {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
