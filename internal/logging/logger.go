// Package logging builds the process logger: one zap core writing human-readable
// lines to the console and another appending the same lines to a log file.
// The file is best-effort. When it cannot be opened the console core still works
// and the failure is reported through it.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"peoplereport/internal/config"
)

// Logger is a zap logger that owns the log file it writes to.
type Logger struct {
	*zap.Logger
	file *os.File
}

// New builds a Logger from cfg, writing console lines to console.
//
// A non-nil error means the log file could not be opened; the returned Logger is
// still usable and logs to the console only. Callers should not treat it as fatal.
func New(cfg config.LoggingConfig, console io.Writer) (*Logger, error) {
	level, levelErr := cfg.ZapLevel()
	if levelErr != nil {
		level = zapcore.DebugLevel
	}
	enc := newEncoder(cfg)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(console)), level),
	}

	var (
		file    *os.File
		fileErr error
	)
	if cfg.File != "" {
		file, fileErr = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if fileErr == nil {
			cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.AddSync(file), level))
		}
	}

	l := &Logger{
		Logger: zap.New(zapcore.NewTee(cores...), zap.AddCaller()),
		file:   file,
	}

	if levelErr != nil {
		l.Warn("Falling back to debug level", zap.Error(levelErr))
	}
	if fileErr != nil {
		l.Error("Logger setup failed", zap.String("file", cfg.File), zap.Error(fileErr))
		return l, fmt.Errorf("failed to open log file %s: %w", cfg.File, fileErr)
	}
	return l, nil
}

// newEncoder returns the line format shared by both cores.
func newEncoder(cfg config.LoggingConfig) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.IsJSON() {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// Close flushes buffered entries and closes the log file, if any.
func (l *Logger) Close() error {
	// Sync on a console fd commonly returns EINVAL; only the file matters here.
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Path returns the name of the open log file, or "" when logging to console only.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}
