package ytdl_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"ytdl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
)

// fakeDownloader writes an executable shell script standing in for the downloader.
func fakeDownloader(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake downloader scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-dl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// echoDownloader prints its working directory, LC_ALL, then each argument on its own line.
const echoDownloader = `printf '%s\n' "$(pwd -P)" "$LC_ALL" "$@"`

func TestExecute_Success(t *testing.T) {
	bin := fakeDownloader(t, echoDownloader)
	dir := canonicalTempDir(t)

	args := []ytdl.Arg{
		ytdl.NewArg("--quiet"),
		ytdl.NewArgWithValue("--output", "%(title)s - %(id)s.%(ext)s"),
	}
	job, err := ytdl.NewJob(dir, args, []string{"https://example.com/1", "https://example.com/2"}, ytdl.WithBinary(bin))
	require.NoError(t, err)

	res, err := job.Execute()
	require.NoError(t, err)
	require.Equal(t, ytdl.Success, res.Outcome())
	assert.True(t, res.Success())
	assert.NoError(t, res.Err())
	assert.Equal(t, 0, res.ExitCode())
	assert.Equal(t, dir, res.Directory())

	lines := strings.Split(strings.TrimSuffix(res.Output(), "\n"), "\n")
	assert.Equal(t, []string{
		dir,
		"en_US.UTF-8",
		"--quiet",
		"--output",
		"%(title)s - %(id)s.%(ext)s",
		"https://example.com/1",
		"https://example.com/2",
	}, lines)
}

func TestExecute_ToolFailureCapturesStderr(t *testing.T) {
	bin := fakeDownloader(t, `echo "this goes to stdout"
echo "ERROR: Unsupported URL" >&2
exit 3`)

	job, err := ytdl.New(t.TempDir(), nil, "not-a-url", ytdl.WithBinary(bin))
	require.NoError(t, err)

	res, err := job.Execute()
	require.NoError(t, err)
	assert.Equal(t, ytdl.ToolFailure, res.Outcome())
	assert.False(t, res.Success())
	assert.Equal(t, "ERROR: Unsupported URL\n", res.Output())
	assert.Equal(t, 3, res.ExitCode())

	var toolErr *ytdl.ToolError
	require.True(t, errors.As(res.Err(), &toolErr))
	assert.Equal(t, 3, toolErr.ExitCode)
	assert.Equal(t, "ERROR: Unsupported URL\n", toolErr.Stderr)
	assert.Contains(t, toolErr.Error(), "exited with status 3")
}

func TestExecute_MissingBinaryIsLaunchFailure(t *testing.T) {
	job, err := ytdl.New(t.TempDir(), []ytdl.Arg{ytdl.NewArg("--version")}, "",
		ytdl.WithBinary("ytdl-test-no-such-downloader"))
	require.NoError(t, err)

	res, err := job.Execute()
	require.NoError(t, err)
	assert.Equal(t, ytdl.LaunchFailure, res.Outcome())
	assert.Equal(t, -1, res.ExitCode())
	assert.Contains(t, res.Output(), "ytdl-test-no-such-downloader")

	var launchErr *ytdl.LaunchError
	require.True(t, errors.As(res.Err(), &launchErr))
	assert.Equal(t, "ytdl-test-no-such-downloader", launchErr.Binary)
	assert.ErrorIs(t, res.Err(), exec.ErrNotFound)
}

func TestExecute_NonExecutableIsLaunchFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute permission bits are not used on windows")
	}
	bin := filepath.Join(t.TempDir(), "not-executable")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\necho hi\n"), 0o644))

	job, err := ytdl.NewJob(t.TempDir(), nil, nil, ytdl.WithBinary(bin))
	require.NoError(t, err)

	res, err := job.Execute()
	require.NoError(t, err)
	assert.Equal(t, ytdl.LaunchFailure, res.Outcome())
	assert.NotEmpty(t, res.Output())
}

func TestExecute_RelativeBinaryFromCallerDirectory(t *testing.T) {
	bin := fakeDownloader(t, `echo ran`)
	t.Chdir(filepath.Dir(bin))

	dir := filepath.Join(canonicalTempDir(t), "dl")
	job, err := ytdl.NewJob(dir, nil, nil, ytdl.WithBinary("./"+filepath.Base(bin)))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(job.Binary()))
	assert.NotEqual(t, filepath.Dir(bin), job.Directory())

	res, err := job.Execute()
	require.NoError(t, err)
	require.Equal(t, ytdl.Success, res.Outcome(), res.Output())
	assert.Equal(t, "ran\n", res.Output())
}

func TestExecute_StrictDecodeRejectsInvalidUTF8(t *testing.T) {
	bin := fakeDownloader(t, `printf 'abc\377\376def'`)

	job, err := ytdl.NewJob(t.TempDir(), nil, nil, ytdl.WithBinary(bin))
	require.NoError(t, err)

	res, err := job.Execute()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ytdl.ErrMalformedOutput)
	assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "stdout")
}

func TestExecute_StrictDecodeChecksStderrOnFailure(t *testing.T) {
	bin := fakeDownloader(t, `printf 'bad\377' >&2
exit 1`)

	job, err := ytdl.NewJob(t.TempDir(), nil, nil, ytdl.WithBinary(bin))
	require.NoError(t, err)

	_, err = job.Execute()
	assert.ErrorIs(t, err, ytdl.ErrMalformedOutput)
	assert.Contains(t, err.Error(), "stderr")
}

func TestExecute_LossyDecodeReplacesInvalidUTF8(t *testing.T) {
	bin := fakeDownloader(t, `printf 'abc\377def'`)

	job, err := ytdl.NewJob(t.TempDir(), nil, nil,
		ytdl.WithBinary(bin),
		ytdl.WithDecodePolicy(ytdl.DecodeLossy))
	require.NoError(t, err)

	res, err := job.Execute()
	require.NoError(t, err)
	assert.Equal(t, ytdl.Success, res.Outcome())
	assert.Equal(t, "abc\uFFFDdef", res.Output())
}

func TestExecute_Locale(t *testing.T) {
	bin := fakeDownloader(t, `printf '%s' "$LC_ALL"`)
	t.Setenv("LC_ALL", "C")

	forced, err := ytdl.NewJob(t.TempDir(), nil, nil, ytdl.WithBinary(bin))
	require.NoError(t, err)
	res, err := forced.Execute()
	require.NoError(t, err)
	assert.Equal(t, "en_US.UTF-8", res.Output())

	custom, err := ytdl.NewJob(t.TempDir(), nil, nil, ytdl.WithBinary(bin), ytdl.WithLocale("C.UTF-8"))
	require.NoError(t, err)
	res, err = custom.Execute()
	require.NoError(t, err)
	assert.Equal(t, "C.UTF-8", res.Output())

	inherited, err := ytdl.NewJob(t.TempDir(), nil, nil, ytdl.WithBinary(bin), ytdl.WithLocale(""))
	require.NoError(t, err)
	res, err = inherited.Execute()
	require.NoError(t, err)
	assert.Equal(t, "C", res.Output())
}

func TestExecute_IndependentJobsConcurrently(t *testing.T) {
	bin := fakeDownloader(t, `pwd -P`)

	jobs := make([]*ytdl.Job, 4)
	for i := range jobs {
		job, err := ytdl.NewJob(filepath.Join(canonicalTempDir(t), "dl"), nil, nil, ytdl.WithBinary(bin))
		require.NoError(t, err)
		jobs[i] = job
	}

	results := make([]*ytdl.Result, len(jobs))
	var g errgroup.Group
	for i, job := range jobs {
		g.Go(func() error {
			res, err := job.Execute()
			results[i] = res
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i, res := range results {
		require.Equal(t, ytdl.Success, res.Outcome())
		assert.Equal(t, jobs[i].Directory(), strings.TrimSpace(res.Output()))
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", ytdl.Success.String())
	assert.Equal(t, "tool-failure", ytdl.ToolFailure.String())
	assert.Equal(t, "launch-failure", ytdl.LaunchFailure.String())
	assert.Equal(t, "unknown", ytdl.Outcome(42).String())
}
