package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger handles application logging. Entries go to a dated file once Init
// has been called, or to the writer given to SetOutput.
type Logger struct {
	sink *sink
	zl   zerolog.Logger
}

// sink is shared by a logger and every child derived from it, so swapping
// the destination affects all of them.
type sink struct {
	mu   sync.Mutex
	file *os.File
	out  io.Writer
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out == nil {
		return len(p), nil
	}
	return s.out.Write(p)
}

// NewLogger creates a new Logger instance. It discards output until Init or
// SetOutput is called.
func NewLogger() *Logger {
	s := &sink{}
	return &Logger{
		sink: s,
		zl:   zerolog.New(s).With().Timestamp().Logger(),
	}
}

// SetOutput directs entries to w. A previously opened log file is closed.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.file != nil {
		l.sink.file.Close()
		l.sink.file = nil
	}
	l.sink.out = w
}

// Init initializes the logging to a file in the specified directory
func (l *Logger) Init(logDir string) error {
	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("integrationdeck_%s_*.log", dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("integrationdeck_%s_%d.log", dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.sink.mu.Lock()
	if l.sink.file != nil {
		l.sink.file.Close()
	}
	l.sink.file = f
	l.sink.out = f
	l.sink.mu.Unlock()

	l.Log("Logging started")
	return nil
}

// WithComponent returns a child logger annotated with the given component
// name. The child shares its parent's destination.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		sink: l.sink,
		zl:   l.zl.With().Str("component", component).Logger(),
	}
}

// Log writes an informational message
func (l *Logger) Log(message string) {
	l.zl.Info().Msg(message)
}

// Logf writes a formatted informational message
func (l *Logger) Logf(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Debugf writes a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

// Errorf writes a formatted message with err attached
func (l *Logger) Errorf(err error, format string, args ...interface{}) {
	l.zl.Error().Err(err).Msgf(format, args...)
}

// Event exposes the underlying zerolog event for entries that need
// structured fields.
func (l *Logger) Event() *zerolog.Event {
	return l.zl.Info()
}

// Close closes the log file
func (l *Logger) Close() {
	l.sink.mu.Lock()
	f := l.sink.file
	l.sink.mu.Unlock()
	if f == nil {
		return
	}

	l.Log("Logging stopped")

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.file != nil {
		l.sink.file.Close()
		l.sink.file = nil
		l.sink.out = nil
	}
}
