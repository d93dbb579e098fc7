// Package logging builds the zerolog logger of the keypadchain tool: a
// human-readable console writer, optionally tee'd into a size-rotated JSON
// log file.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/keypadchain/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to console at cfg.Level and, when cfg.File
// is set, to a lumberjack-rotated file. The returned Closer releases the
// file and must be closed by the caller.
func New(cfg config.Log, console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: %w", err)
	}

	var (
		out    io.Writer = zerolog.ConsoleWriter{Out: console}
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = zerolog.MultiLevelWriter(out, file)
		closer = file
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}
