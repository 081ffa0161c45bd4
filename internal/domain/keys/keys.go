// Package keys holds the terminal input keys, which double as Viper keys.
package keys

// Files and directories.
const (
	Dir        string = "dir"
	ConfigFile string = "config-file"
	LogDir     string = "log-dir"
)

// Downloader.
const (
	Binary string = "binary"
	Locale string = "locale"
	Lossy  string = "lossy"
	Args   string = "arg"
)

// Logging.
const (
	DebugLevel string = "debug-level"
)
