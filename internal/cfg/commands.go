package cfg

import (
	"fmt"
	"ytdl"
	"ytdl/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getCmd downloads the given links.
func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [links...]",
		Short: "Download links into a directory",
		Long: "Runs the downloader in --dir with every --arg in order, followed by the links.\n" +
			"With no links the downloader is run with the arguments alone.",
		RunE: func(cmd *cobra.Command, links []string) error {
			args, err := jobArgs()
			if err != nil {
				return err
			}
			job, err := ytdl.NewJob(viper.GetString(keys.Dir), args, links, jobOptions()...)
			if err != nil {
				return err
			}
			return runJob(cmd, job)
		},
	}
}

// versionCmd prints the downloader's version.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the downloader version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bin := ytdl.DefaultBinary()
			if viper.IsSet(keys.Binary) {
				bin = viper.GetString(keys.Binary)
			}

			out, err := ytdl.Version(jobOptions()...)
			if err != nil {
				return err
			}
			version := ytdl.VersionPattern.FindString(out)
			if version == "" {
				return fmt.Errorf("%s printed no recognizable version: %q", bin, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), bin, version)
			return nil
		},
	}
}
