package ytdl

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"ytdl/internal/domain/command"
)

// VersionPattern matches the date-style release numbers of youtube-dl and its forks.
var VersionPattern = regexp.MustCompile(`\d{4}\.\d{2}\.\d{2}`)

// Version runs the downloader with --version in the working directory and
// returns its trimmed output.
func Version(opts ...Option) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	job, err := New(wd, []Arg{NewArg(command.Version)}, "", opts...)
	if err != nil {
		return "", err
	}
	res, err := job.Execute()
	if err != nil {
		return "", err
	}
	if err := res.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Output()), nil
}
