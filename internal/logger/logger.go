// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	logLevel      = new(slog.LevelVar)
)

// Init configures the package logger. It may be called again to replace the
// configuration; output nil discards everything.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()
	logLevel.Set(cfg.level)

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)

	mu.Lock()
	defaultLogger = slog.New(handler)
	mu.Unlock()
}

// OpenOutput resolves a log file path. Empty or "-" selects stderr, whose
// closer is a no-op.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// current returns the configured logger, or a discarding one if Init was
// never called.
func current() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	}
	return defaultLogger
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...any) {
	l := current()
	// Check level early to avoid overhead of Callers and Sprintf if disabled
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...any) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Tagged logs records carrying a tag attribute that the filter can match.
type Tagged struct {
	tag string
}

// WithTag returns a logger whose records carry tag.
func WithTag(tag string) Tagged {
	return Tagged{tag: tag}
}

// Debugf logs a tagged debug message.
func (t Tagged) Debugf(format string, args ...any) {
	logAtLevel(slog.LevelDebug, t.tag, format, args...)
}

// Infof logs a tagged info message.
func (t Tagged) Infof(format string, args ...any) {
	logAtLevel(slog.LevelInfo, t.tag, format, args...)
}

// Warnf logs a tagged warning.
func (t Tagged) Warnf(format string, args ...any) {
	logAtLevel(slog.LevelWarn, t.tag, format, args...)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	return current()
}
