package ytdl

import "errors"

// Outcome classifies a finished Execute call.
type Outcome int

const (
	// Success means the downloader exited zero; the output is its stdout.
	Success Outcome = iota
	// ToolFailure means the downloader exited non-zero; the output is its stderr.
	ToolFailure
	// LaunchFailure means the process never started; the output is the launch error.
	LaunchFailure
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ToolFailure:
		return "tool-failure"
	case LaunchFailure:
		return "launch-failure"
	default:
		return "unknown"
	}
}

// Result is the immutable record of one Execute call.
type Result struct {
	dir      string
	binary   string
	output   string
	outcome  Outcome
	exitCode int
	launch   error
}

// Directory returns the directory the downloader ran in.
func (r *Result) Directory() string { return r.dir }

// Output returns stdout on Success, stderr on ToolFailure and the launch
// error text on LaunchFailure.
func (r *Result) Output() string { return r.output }

// Outcome returns the classification of the run.
func (r *Result) Outcome() Outcome { return r.outcome }

// ExitCode returns the process exit code, or -1 if the process never started
// or was killed by a signal.
func (r *Result) ExitCode() int { return r.exitCode }

// Success reports whether the downloader exited zero.
func (r *Result) Success() bool { return r.outcome == Success }

// Err returns the outcome as an error, or nil on Success.
//
// The error is a *ToolError or a *LaunchError.
func (r *Result) Err() error {
	switch r.outcome {
	case Success:
		return nil
	case ToolFailure:
		return &ToolError{Binary: r.binary, ExitCode: r.exitCode, Stderr: r.output}
	default:
		err := r.launch
		if err == nil {
			err = errors.New(r.output)
		}
		return &LaunchError{Binary: r.binary, Err: err}
	}
}
