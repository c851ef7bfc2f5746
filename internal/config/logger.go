package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds a logger from the settings. With a file set, output is
// appended to it and the returned closer closes it; otherwise output goes
// to stderr and the closer does nothing.
func (l LogConfig) NewLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, nil, &ValidationError{
			Path:    "log.level",
			Message: "must be debug, info, warn, error or fatal",
			Value:   l.Level,
			Code:    ErrCodeInvalidEnum,
		}
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "undotree",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
