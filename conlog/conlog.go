// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog builds the structured logger and holds the console hook
// for messages meant for the user rather than the log.
package conlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var (
	p func(string, ...interface{}) = func(format string, v ...interface{}) {
		fmt.Fprintf(os.Stdout, format, v...)
	}
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "", "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level %q", level)
	}
}

// New returns a text logger writing to w.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
