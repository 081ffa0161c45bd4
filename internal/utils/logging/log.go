// Package logging holds the program logger and its leveled print helpers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
	"ytdl/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the debug level (0-5). D calls above it are dropped.
	// Guarded by mu; set it through Init.
	Level = -1 // Pre initialization

	logger  = zerolog.Nop()
	console io.Writer
	logFile *os.File
	mu      sync.Mutex
)

// Init points console output at w and sets the debug level.
//
// A nil writer silences the console.
func Init(w io.Writer, level int) {
	mu.Lock()
	defer mu.Unlock()

	Level = level
	if w == nil {
		console = nil
	} else {
		console = newConsoleWriter(w)
	}
	rebuild()
}

// SetupLogging creates and/or opens the log file in the target directory.
func SetupLogging(targetDir string) error {
	if err := os.MkdirAll(targetDir, consts.PermsLogDir); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", targetDir, err)
	}

	path := filepath.Join(targetDir, consts.LogFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	rebuild()

	logger.Info().Msgf("=========== %v ===========", time.Now().Format(time.RFC1123Z))
	return nil
}

// Close closes the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	rebuild()
	return err
}

// rebuild recreates the logger from the current sinks. Caller holds mu.
func rebuild() {
	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}
	if logFile != nil {
		writers = append(writers, logFile) // JSON lines, no color codes
	}

	switch len(writers) {
	case 0:
		logger = zerolog.Nop()
	case 1:
		logger = zerolog.New(writers[0]).With().Timestamp().Logger()
	default:
		logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	}
}

// newConsoleWriter renders levels with the colored tags used across the program.
func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: consts.TimeFormatStamp,
		FormatLevel: func(i any) string {
			switch i {
			case zerolog.LevelErrorValue:
				return consts.RedError
			case zerolog.LevelDebugValue:
				return consts.YellowDebug
			case successLevel:
				return consts.GreenSuccess
			default:
				return consts.BlueInfo
			}
		},
	}
}
