// Package logging builds the zerolog logger. The terminal belongs to the UI, so
// logs only go to a file, and nowhere when no file is configured.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/datatug/twinpane/pkg/config"
	"github.com/rs/zerolog"
)

var osOpenFile = os.OpenFile

// New returns the logger and a func that closes the log file.
func New(cfg *config.Config) (zerolog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := osOpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewWithWriter(f, level), f.Close, nil
}

func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05",
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}
