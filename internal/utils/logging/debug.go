package logging

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

const successLevel = "success"

// E logs an error with the calling function, file and line.
func E(format string, args ...any) string {
	msg := sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()

	ev := logger.Error()
	withCaller(ev).Msg(msg)
	return msg
}

// S logs a success message.
func S(format string, args ...any) string {
	msg := sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()

	logger.Log().Str(zerolog.LevelFieldName, successLevel).Msg(msg)
	return msg
}

// I logs an info message.
func I(format string, args ...any) string {
	msg := sprintf(format, args...)

	mu.Lock()
	defer mu.Unlock()

	logger.Info().Msg(msg)
	return msg
}

// D logs a debug message if l is within the configured debug level.
func D(l int, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	if l > Level {
		return ""
	}
	msg := sprintf(format, args...)

	ev := logger.Debug().Int("debug_level", l)
	withCaller(ev).Msg(msg)
	return msg
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// withCaller tags the event with the caller of the public helper.
func withCaller(ev *zerolog.Event) *zerolog.Event {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return ev
	}
	return ev.
		Str("function", filepath.Base(runtime.FuncForPC(pc).Name())).
		Str("file", filepath.Base(file)).
		Int("line", line)
}
