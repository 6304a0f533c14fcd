// Package logging provides file-based logging for mvnwrap.
// It outputs logs to both a global log file (<dir>/mvnwrap.log)
// and run-specific log files (<dir>/run-<id>.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/mvnwrap/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled entries to log files.
// Fields are ordered to minimize memory padding.
type Logger struct {
	globalFile *os.File
	runFiles   map[string]*os.File
	clock      domain.Clock
	logDir     string
	mu         sync.Mutex
	level      slog.Level
}

// New creates a new Logger that writes to logDir.
// If logDir is empty, logging is disabled (returns a no-op logger).
func New(logDir string, level slog.Level) *Logger {
	return &Logger{
		logDir:   logDir,
		level:    level,
		clock:    domain.RealClock{},
		runFiles: make(map[string]*os.File),
	}
}

// WithClock replaces the clock used for timestamps.
func (l *Logger) WithClock(clock domain.Clock) *Logger {
	l.clock = clock
	return l
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureLogsDir creates the logs directory if it doesn't exist.
func (l *Logger) ensureLogsDir() error {
	return os.MkdirAll(l.logDir, 0o750)
}

// ensureGlobalFile opens or returns the global log file.
func (l *Logger) ensureGlobalFile() (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.globalFile != nil {
		return l.globalFile, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.GlobalLogPath(l.logDir)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open global log file: %w", err)
	}
	l.globalFile = f
	return f, nil
}

// ensureRunFile opens or returns the run log file.
func (l *Logger) ensureRunFile(runID string) (*os.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if f, ok := l.runFiles[runID]; ok {
		return f, nil
	}

	if err := l.ensureLogsDir(); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	path := domain.RunLogPath(l.logDir, runID)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open run log file: %w", err)
	}
	l.runFiles[runID] = f
	return f, nil
}

// CloseRun closes the log file of a finished run.
func (l *Logger) CloseRun(runID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.runFiles[runID]
	if !ok {
		return nil
	}
	delete(l.runFiles, runID)
	return f.Close()
}

// Close closes all open log files.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lastErr error
	if l.globalFile != nil {
		if err := l.globalFile.Close(); err != nil {
			lastErr = err
		}
		l.globalFile = nil
	}
	for id, f := range l.runFiles {
		if err := f.Close(); err != nil {
			lastErr = err
		}
		delete(l.runFiles, id)
	}
	return lastErr
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [run-1a2b3c4d] [category] message
func formatLog(t time.Time, level slog.Level, runID, category, msg string) string {
	runStr := "global"
	if runID != "" {
		runStr = "run-" + domain.ShortRunID(runID)
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		runStr,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// log writes a log entry to appropriate files based on runID.
// If runID is empty, logs only to global log.
func (l *Logger) log(level slog.Level, runID, category, msg string) {
	if l.logDir == "" {
		return // Logging disabled
	}

	if level < l.level {
		return
	}

	entry := formatLog(l.clock.Now(), level, runID, category, msg)

	if gf, err := l.ensureGlobalFile(); err == nil {
		_, _ = io.WriteString(gf, entry)
	}

	if runID != "" {
		if rf, err := l.ensureRunFile(runID); err == nil {
			_, _ = io.WriteString(rf, entry)
		}
	}
}

// Info logs an info message.
func (l *Logger) Info(runID, category, msg string) {
	l.log(slog.LevelInfo, runID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(runID, category, msg string) {
	l.log(slog.LevelDebug, runID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(runID, category, msg string) {
	l.log(slog.LevelWarn, runID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(runID, category, msg string) {
	l.log(slog.LevelError, runID, category, msg)
}

// DefaultDir returns the default log directory under the XDG state home.
func DefaultDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, domain.AppDirName)
}
