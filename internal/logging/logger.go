package logging

import (
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/leg100/imbinder/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, keeping log records in memory and publishing them as
// events.
type Logger struct {
	logger *slog.Logger
	writer *writer

	*pubsub.Broker[Message]
}

// NewLogger constructs Logger, a slog wrapper with additional functionality.
func NewLogger(opts Options) *Logger {
	broker := pubsub.NewBroker[Message]()
	writer := &writer{broker: broker}

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, writer)...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)

	return &Logger{
		logger: slog.New(handler),
		writer: writer,
		Broker: broker,
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// List lists the log messages received thus far.
func (l *Logger) List() []Message {
	return l.writer.list()
}

// writer is a slog TextHandler writer that both keeps the log records in
// memory and emits them as events.
type writer struct {
	messages []Message
	broker   *pubsub.Broker[Message]
	serial   uint
	mu       sync.Mutex
}

func (w *writer) list() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.messages)
}
