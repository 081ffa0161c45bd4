package ytdl

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"ytdl/internal/domain/command"
	"ytdl/internal/utils/logging"
	"ytdl/internal/validation"

	"github.com/google/uuid"
)

// Job is one configured downloader invocation.
//
// A Job is immutable once built, so Execute may be called from several
// goroutines. Jobs sharing a directory are not coordinated.
type Job struct {
	id    string
	dir   string
	links []string
	args  []Arg
	cfg   config
}

// New builds a Job for a single link. An empty link runs the downloader with
// no positional target, e.g. for "--version".
func New(dir string, args []Arg, link string, opts ...Option) (*Job, error) {
	var links []string
	if link != "" {
		links = []string{link}
	}
	return NewJob(dir, args, links, opts...)
}

// NewJob builds a Job that downloads links into dir.
//
// The directory and any missing parents are created. The stored path is
// absolute with symlinks resolved. Failures are returned as a *DirectoryError.
// A binary given as a path rather than a bare name is made absolute.
func NewJob(dir string, args []Arg, links []string, opts ...Option) (*Job, error) {
	if _, err := validation.ValidateDirectory(dir, true); err != nil {
		return nil, &DirectoryError{Path: dir, Err: err}
	}
	canonical, err := validation.CanonicalDirectory(dir)
	if err != nil {
		return nil, &DirectoryError{Path: dir, Err: err}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// The process runs in the job directory, so a relative path to the
	// binary is pinned to the caller's working directory now.
	if cfg.binary != "" && filepath.Base(cfg.binary) != cfg.binary {
		bin, err := filepath.Abs(cfg.binary)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve downloader path %q: %w", cfg.binary, err)
		}
		cfg.binary = bin
	}

	j := &Job{
		id:    uuid.NewString(),
		dir:   canonical,
		links: slices.Clone(links),
		args:  slices.Clone(args),
		cfg:   cfg,
	}
	logging.D(2, "Created job %s in %q (%d args, %d links)", j.id, j.dir, len(j.args), len(j.links))
	return j, nil
}

// ID returns the identifier used to tag this job's log lines.
func (j *Job) ID() string { return j.id }

// Directory returns the absolute, canonical download directory.
func (j *Job) Directory() string { return j.dir }

// Binary returns the downloader this job runs.
func (j *Job) Binary() string { return j.cfg.binary }

// Links returns a copy of the links.
func (j *Job) Links() []string { return slices.Clone(j.links) }

// Args returns a copy of the arguments.
func (j *Job) Args() []Arg { return slices.Clone(j.args) }

// Command returns the full argv Execute runs: the binary, each argument's
// flag and value in order, then each link.
func (j *Job) Command() []string {
	return append([]string{j.cfg.binary}, j.argv()...)
}

// String renders the command line for display.
func (j *Job) String() string {
	return strings.Join(j.Command(), " ")
}

// Execute runs the downloader and blocks until it exits.
//
// The outcome of the run is reported in the Result, never as an error. The
// error is only set in strict decode mode when the captured output is not
// valid UTF-8, in which case it wraps ErrMalformedOutput.
//
// There is no timeout: a downloader that never exits blocks the caller.
func (j *Job) Execute() (*Result, error) {
	cmd := exec.Command(j.cfg.binary, j.argv()...) //nolint:gosec // caller supplied downloader arguments
	cmd.Dir = j.dir
	cmd.Env = j.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := &Result{
		dir:      j.dir,
		binary:   j.cfg.binary,
		exitCode: -1,
	}

	logging.D(1, "Job %s executing in %q:\n%v", j.id, j.dir, cmd.String())

	if err := cmd.Start(); err != nil {
		logging.E("Job %s could not launch %q: %v", j.id, j.cfg.binary, err)
		res.outcome = LaunchFailure
		res.output = err.Error()
		res.launch = err
		return res, nil
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
		}
		logging.E("Job %s: %s failed with status %d: %v", j.id, j.cfg.binary, res.exitCode, err)

		out, decErr := j.cfg.decode.decode("stderr", stderr.Bytes())
		if decErr != nil {
			return nil, decErr
		}
		res.outcome = ToolFailure
		res.output = out
		return res, nil
	}

	out, decErr := j.cfg.decode.decode("stdout", stdout.Bytes())
	if decErr != nil {
		return nil, decErr
	}
	res.outcome = Success
	res.output = out
	res.exitCode = 0

	logging.D(1, "Job %s finished in %q", j.id, j.dir)
	return res, nil
}

// argv flattens arguments then links into process arguments.
func (j *Job) argv() []string {
	out := make([]string, 0, len(j.args)*2+len(j.links))
	for _, a := range j.args {
		out = append(out, a.argv()...)
	}
	return append(out, j.links...)
}

// environ returns the inherited environment with the locale forced, if set.
func (j *Job) environ() []string {
	env := os.Environ()
	if j.cfg.locale != "" {
		env = append(env, command.EnvLocale+"="+j.cfg.locale)
	}
	return env
}
