package cfg

import (
	"errors"
	"fmt"
	"ytdl"
	"ytdl/internal/domain/keys"
	"ytdl/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// jobOptions turns the bound flags into Job options.
func jobOptions() []ytdl.Option {
	opts := make([]ytdl.Option, 0, 3)
	if viper.IsSet(keys.Binary) {
		opts = append(opts, ytdl.WithBinary(viper.GetString(keys.Binary)))
	}
	opts = append(opts, ytdl.WithLocale(viper.GetString(keys.Locale)))
	if viper.GetBool(keys.Lossy) {
		opts = append(opts, ytdl.WithDecodePolicy(ytdl.DecodeLossy))
	}
	return opts
}

// jobArgs parses the repeated --arg values.
func jobArgs() ([]ytdl.Arg, error) {
	raw := viper.GetStringSlice(keys.Args)
	args := make([]ytdl.Arg, 0, len(raw))
	for _, r := range raw {
		a, err := ytdl.ParseArg(r)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", keys.Args, r, err)
		}
		args = append(args, a)
	}
	return args, nil
}

// runJob executes the job and writes its output to the command's streams.
func runJob(cmd *cobra.Command, job *ytdl.Job) error {
	logging.I("Running %q in %q", job.String(), job.Directory())

	res, err := job.Execute()
	if err != nil {
		return err
	}

	outcome := cases.Title(language.English).String(res.Outcome().String())
	if res.Success() {
		fmt.Fprint(cmd.OutOrStdout(), res.Output())
		logging.S("%s: job %s in %q", outcome, job.ID(), res.Directory())
		return nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), res.Output())
	logging.E("%s: job %s in %q", outcome, job.ID(), res.Directory())
	return res.Err()
}

// ExitCode maps an error returned by Execute to a process exit status. A
// failing downloader's own status is passed through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var toolErr *ytdl.ToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}
