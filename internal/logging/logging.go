// Package logging configures logrus for the server. Logs always go to
// stderr because stdout carries the stdio MCP stream.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures New.
type Options struct {
	Level string
	// File, when set, receives a copy of every log line.
	File string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger for opts and a closer for the log file. An unknown
// level falls back to info and is reported as a warning on the logger.
func New(opts Options) (*logrus.Logger, func() error, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	closer := func() error { return nil }

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304 - path is configured by the user
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(out, f)
		closer = f.Close
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, ok := ParseLevel(opts.Level)
	log.SetLevel(level)
	if !ok {
		log.Warnf("unknown log level %q, using info", opts.Level)
	}
	return log, closer, nil
}

// ParseLevel maps the configured level name to a logrus level. WARNING and
// CRITICAL are accepted as aliases. ok is false for unknown names.
func ParseLevel(s string) (logrus.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return logrus.InfoLevel, true
	case "trace":
		return logrus.TraceLevel, true
	case "debug":
		return logrus.DebugLevel, true
	case "warn", "warning":
		return logrus.WarnLevel, true
	case "error":
		return logrus.ErrorLevel, true
	case "critical", "fatal":
		return logrus.FatalLevel, true
	}
	return logrus.InfoLevel, false
}
