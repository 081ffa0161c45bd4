package cfg

import (
	"ytdl/internal/domain/consts"
	"ytdl/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// initProgramFlags initializes user flag settings related to the core program. E.g. logging level.
func initProgramFlags(rootCmd *cobra.Command) error {
	fs := rootCmd.PersistentFlags()

	// Config file
	fs.String(keys.ConfigFile, "", "Config file (yaml, toml or json) holding any of the flags below")
	if err := bindFlag(fs, keys.ConfigFile); err != nil {
		return err
	}

	// Debug level
	fs.Int(keys.DebugLevel, -1, "Debugging level (0 - 5, -1 for none)")
	if err := bindFlag(fs, keys.DebugLevel); err != nil {
		return err
	}

	// Log file directory
	fs.String(keys.LogDir, "", "Also write logs to "+consts.LogFileName+" in this directory")
	return bindFlag(fs, keys.LogDir)
}

// initDownloaderFlags initializes user flag settings passed through to the downloader.
func initDownloaderFlags(rootCmd *cobra.Command) error {
	fs := rootCmd.PersistentFlags()

	// Working directory
	fs.StringP(keys.Dir, "d", ".", "Directory to download into (created if missing)")
	if err := bindFlag(fs, keys.Dir); err != nil {
		return err
	}

	// Downloader binary
	fs.StringP(keys.Binary, "b", "", "Downloader to run instead of the built-in default (e.g. yt-dlp)")
	if err := bindFlag(fs, keys.Binary); err != nil {
		return err
	}

	// Locale
	fs.String(keys.Locale, consts.DefaultLocale, "LC_ALL passed to the downloader (empty to inherit)")
	if err := bindFlag(fs, keys.Locale); err != nil {
		return err
	}

	// Malformed output handling
	fs.Bool(keys.Lossy, false, "Replace invalid UTF-8 in downloader output instead of failing")
	if err := bindFlag(fs, keys.Lossy); err != nil {
		return err
	}

	// Downloader arguments
	fs.StringArrayP(keys.Args, "a", nil, `Downloader argument as "flag" or "flag value" (repeatable)`)
	return bindFlag(fs, keys.Args)
}

// bindFlag binds a registered flag to the Viper key of the same name.
func bindFlag(fs *pflag.FlagSet, key string) error {
	return viper.BindPFlag(key, fs.Lookup(key))
}
