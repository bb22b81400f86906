// Package logging provides the leveled file logger used across
// cmd/vtview, cmd/vtview-tcell and internal/ptyproc. A *Logger also
// satisfies internal/term.Logger, so Terminal.SetLogger can take one
// directly.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is an instance-scoped leveled logger writing to a single file.
// Unlike a package-global logger, each embedder (vtview, vtview-tcell,
// a future daemon) owns its own instance.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	enabled  bool
	filePath string
}

// NewFile opens (creating if needed) a dated log file under dir and
// returns a Logger writing to it at the given minimum level.
func NewFile(dir string, level Level) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, fmt.Sprintf("vtcore-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{writer: file, level: level, enabled: true, filePath: path}, nil
}

// NewWriter wraps an arbitrary io.Writer (e.g. os.Stderr, a test buffer)
// as a Logger, for callers that don't want file management.
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{writer: w, level: level, enabled: true}
}

func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.level {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	line := fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), fmt.Sprintf(format, args...))
	l.writer.Write([]byte(line))
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

// WithError logs an error at Error level alongside a context string, a
// no-op if err is nil.
func (l *Logger) WithError(err error, context string) {
	if err != nil {
		l.log(LevelError, "%s: %v", context, err)
	}
}

// Close closes the underlying file, if the writer came from NewFile.
func (l *Logger) Close() error {
	if closer, ok := l.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// LogPath returns the path passed to NewFile, or "" for NewWriter loggers.
func (l *Logger) LogPath() string {
	return l.filePath
}
