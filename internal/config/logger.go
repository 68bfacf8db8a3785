package config

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a structured logger writing to w.
//
// LOG_LEVEL selects the minimum level (debug, info, warn, error; default
// info). LOG_FORMAT selects text, json or logfmt output (default text).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Formatter:       formatterFor(GetEnv("LOG_FORMAT", "text")),
	})
	if err != nil {
		logger.Warn("unknown LOG_LEVEL, using info", "err", err)
	}
	return logger
}

func formatterFor(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
