// Package validation handles validation of directories and user flag input.
package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"ytdl/internal/domain/consts"
	"ytdl/internal/utils/logging"
)

// ErrNotDirectory is returned when a path exists but is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// ValidateDirectory validates that the directory exists, else creates it if desired.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logging.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		// Exists, checked below
	case errors.Is(err, os.ErrNotExist) && createIfNotFound:
		logging.D(1, "Directory %q does not exist, creating it", dir)
		if err := os.MkdirAll(dir, consts.PermsDownloadDir); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
		if info, err = os.Stat(dir); err != nil {
			return nil, fmt.Errorf("failed to stat created directory %q: %w", dir, err)
		}
	default:
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", dir, ErrNotDirectory)
	}
	return info, nil
}

// CanonicalDirectory returns the absolute path of dir with symlinks resolved.
//
// The directory must already exist.
func CanonicalDirectory(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to make %q absolute: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", abs, err)
	}
	return resolved, nil
}
