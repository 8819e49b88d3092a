// Package logging wraps the bolt logger used by the loader and the draw
// command.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	defaultLogger *bolt.Logger
	once          sync.Once
)

type Config struct {
	// Level is one of trace, debug, info, warn or error.
	Level string
	// Format is json or console.
	Format string
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}
	return bolt.New(handler).SetLevel(parseLevel(config.Level))
}

// Init sets up the default logger. Only the first call has an effect.
func Init(config Config) {
	once.Do(func() {
		defaultLogger = New(config)
	})
}

func Get() *bolt.Logger {
	if defaultLogger == nil {
		Init(DefaultConfig())
	}
	return defaultLogger
}

func SetLevel(level string) {
	Get().SetLevel(parseLevel(level))
}

type LogEvent struct {
	event *bolt.Event
}

func NewEvent(e *bolt.Event) *LogEvent {
	return &LogEvent{event: e}
}

func (l *LogEvent) Add(fs ...Field) *LogEvent {
	for _, f := range fs {
		l.event = f(l.event)
	}
	return l
}

func (l *LogEvent) Msg(msg string) {
	l.event.Msg(msg)
}

func Debug() *LogEvent {
	return NewEvent(Get().Debug())
}

func Info() *LogEvent {
	return NewEvent(Get().Info())
}

func Warn() *LogEvent {
	return NewEvent(Get().Warn())
}

func Error() *LogEvent {
	return NewEvent(Get().Error())
}
