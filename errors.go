package ytdl

import (
	"errors"
	"fmt"
	"ytdl/internal/validation"
)

var (
	// ErrNotDirectory is wrapped by a DirectoryError when the job path exists but is not a directory.
	ErrNotDirectory = validation.ErrNotDirectory

	// ErrMalformedOutput is returned by Execute in strict decode mode when the
	// downloader writes bytes that are not valid UTF-8.
	ErrMalformedOutput = errors.New("downloader output is not valid UTF-8")

	// ErrEmptyFlag is returned by ParseArg for blank input.
	ErrEmptyFlag = errors.New("argument has no flag")
)

// DirectoryError reports that a job's download directory could not be prepared.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("download directory %q: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// LaunchError reports that the downloader process could not be started.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ToolError reports that the downloader ran and exited non-zero.
type ToolError struct {
	Binary   string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %s", e.Binary, e.ExitCode, e.Stderr)
}
