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
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
	mu            sync.RWMutex
)

// debugFilter prints the filtering handler's decisions to stderr.
var debugFilter bool

// SetDebugFilter toggles diagnostics for the filtering handler.
func SetDebugFilter(enabled bool) {
	debugFilter = enabled
}

// newTextHandler builds the base handler used by every logger.
func newTextHandler(output io.Writer, level slog.Leveler) slog.Handler {
	opts := slog.HandlerOptions{
		Level:     level,
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
	return slog.NewTextHandler(output, &opts)
}

// Init installs an unfiltered logger writing to output at level.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	lv := new(slog.LevelVar)
	lv.Set(level)
	install(slog.New(newTextHandler(output, lv)), lv)
}

// Setup installs a logger from cfg. The returned closer releases the log
// file, if one was opened; it is never nil.
func Setup(cfg Config) (io.Closer, error) {
	cfg.process()

	var output io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	switch cfg.LogFilePath {
	case "", "-":
	default:
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return closer, fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
		}
		output, closer = f, f
	}

	lv := new(slog.LevelVar)
	lv.Set(cfg.level.Level())
	install(slog.New(newFilteringHandler(newTextHandler(output, lv), &cfg)), lv)

	if lv.Level() <= slog.LevelInfo {
		r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
		r.AddAttrs(slog.String("level", lv.Level().String()))
		_ = Get().Handler().Handle(context.Background(), r)
	}
	return closer, nil
}

func install(l *slog.Logger, lv *slog.LevelVar) {
	ensureInitialized()
	mu.Lock()
	defaultLogger = l
	logLevel = lv
	mu.Unlock()
}

// ensureInitialized provides a discarding logger if nothing was installed.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	})
}

// SetLevel changes the level of the installed logger.
func SetLevel(level slog.Level) {
	ensureInitialized()
	mu.RLock()
	defer mu.RUnlock()
	logLevel.Set(level)
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
