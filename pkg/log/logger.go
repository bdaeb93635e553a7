package log

import (
	"fmt"
	"io"
	"os"
	stdlog "log"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Str builds a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Dur builds a duration field.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value.String()} }

// Err builds an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component tags log output with a subsystem name.
func Component(name string) Field { return Field{Key: "component", Value: name} }

// Entry represents a single log entry handed to a Formatter.
type Entry struct {
	Level     Level
	Message   string
	Fields    []Field
	Timestamp time.Time
}

// Formatter renders an Entry to bytes.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Logger is the concrete structured logger. It is safe for concurrent use.
type Logger struct {
	mu        *sync.Mutex
	level     Level
	fields    []Field
	formatter Formatter
	out       io.Writer
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(l *Logger) { l.level = level }
}

// WithFormatter sets the log formatter.
func WithFormatter(f Formatter) Option {
	return func(l *Logger) { l.formatter = f }
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// NewLogger creates a logger with the given options. Defaults: info level,
// text format, stderr output.
func NewLogger(options ...Option) *Logger {
	l := &Logger{
		mu:        &sync.Mutex{},
		level:     InfoLevel,
		formatter: &TextFormatter{},
		out:       os.Stderr,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Config is the file/env-facing logger configuration.
type Config struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// ApplyConfig builds a Logger from a Config. Unknown values fall back to
// info/text.
func ApplyConfig(cfg *Config) (*Logger, error) {
	level := InfoLevel
	if cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	var formatter Formatter
	switch cfg.Format {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}
	return NewLogger(WithLevel(level), WithFormatter(formatter)), nil
}

// With returns a child logger carrying additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	child := *l
	child.fields = append(append([]Field{}, l.fields...), fields...)
	return &child
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum log level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.log(InfoLevel, msg, fields) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.log(WarnLevel, msg, fields) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, fields)
	os.Exit(1)
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	l.mu.Lock()
	min := l.level
	l.mu.Unlock()
	if level < min {
		return
	}
	entry := &Entry{
		Level:     level,
		Message:   msg,
		Fields:    mergeFields(l.fields, fields),
		Timestamp: time.Now(),
	}
	b, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	l.mu.Lock()
	_, _ = l.out.Write(b)
	l.mu.Unlock()
}

// mergeFields overlays call-site fields on logger fields; later keys win.
func mergeFields(base, extra []Field) []Field {
	if len(base) == 0 {
		return extra
	}
	out := make([]Field, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(extra))
	for _, f := range extra {
		seen[f.Key] = struct{}{}
	}
	for _, f := range base {
		if _, dup := seen[f.Key]; !dup {
			out = append(out, f)
		}
	}
	return append(out, extra...)
}

// sortedCopy returns fields ordered by key for stable output.
func sortedCopy(fields []Field) []Field {
	out := append([]Field{}, fields...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// RedirectStdLog routes the standard library's default logger through l at
// info level. Pebble and net/http internals log via stdlib.
func RedirectStdLog(l *Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogWriter{logger: l})
}

type stdLogWriter struct{ logger *Logger }

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
