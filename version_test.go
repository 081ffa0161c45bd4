package ytdl_test

import (
	"os/exec"
	"testing"
	"ytdl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_FakeDownloader(t *testing.T) {
	bin := fakeDownloader(t, `[ "$1" = "--version" ] || exit 2
echo 2024.08.06`)

	v, err := ytdl.Version(ytdl.WithBinary(bin))
	require.NoError(t, err)
	assert.Equal(t, "2024.08.06", v)
	assert.Regexp(t, ytdl.VersionPattern, v)
}

func TestVersion_LaunchFailure(t *testing.T) {
	_, err := ytdl.Version(ytdl.WithBinary("ytdl-test-no-such-downloader"))

	var launchErr *ytdl.LaunchError
	assert.ErrorAs(t, err, &launchErr)
}

// TestVersion_InstalledDownloader runs the real downloader, if one is installed.
func TestVersion_InstalledDownloader(t *testing.T) {
	if _, err := exec.LookPath(ytdl.DefaultBinary()); err != nil {
		t.Skipf("%s not installed", ytdl.DefaultBinary())
	}

	job, err := ytdl.New(t.TempDir(), []ytdl.Arg{ytdl.NewArg("--version")}, "")
	require.NoError(t, err)

	res, err := job.Execute()
	require.NoError(t, err)
	require.Equal(t, ytdl.Success, res.Outcome(), res.Output())
	assert.NotEmpty(t, res.Output())
	assert.Regexp(t, ytdl.VersionPattern, res.Output())
}
