// Package tui owns terminal output: the Splog logger, lipgloss styles,
// interactive prompts, and the stack renderer.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler writes bare messages, no timestamps or level prefixes.
// Debug records are dropped unless debug mode is on.
type consoleHandler struct {
	writer io.Writer
	debug  bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debug
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(_ string) slog.Handler      { return h }

// Splog provides terminal output, optionally mirrored to a rotated log file
type Splog struct {
	writer    io.Writer
	console   *slog.Logger
	file      *slog.Logger
	logWriter io.WriteCloser
}

// NewSplog creates a console-only splog writing to stdout. Debug messages are
// shown when the DEBUG environment variable is set.
func NewSplog() *Splog {
	return NewSplogTo(os.Stdout)
}

// NewSplogTo creates a console-only splog writing to w. Used by tests.
func NewSplogTo(w io.Writer) *Splog {
	return &Splog{
		writer:  w,
		console: slog.New(&consoleHandler{writer: w, debug: os.Getenv("DEBUG") != ""}),
	}
}

// NewSplogWithFile creates a splog that also mirrors every message, debug
// included and timestamped, to a size-rotated log file. An empty path means
// console only.
func NewSplogWithFile(logFilePath string) (*Splog, error) {
	s := NewSplog()
	if logFilePath == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotated := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}
	s.logWriter = rotated
	s.file = slog.New(slog.NewTextHandler(rotated, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return s, nil
}

func (s *Splog) log(level slog.Level, msg string) {
	s.console.Log(context.Background(), level, msg)
	if s.file != nil {
		s.file.Log(context.Background(), level, msg)
	}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, fmt.Sprintf(format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, ColorWarn(fmt.Sprintf(format, args...)))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, ColorError(fmt.Sprintf(format, args...)))
}

// Debug writes a debug message, visible on the console only with DEBUG set
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Newline writes a blank line to the console
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
