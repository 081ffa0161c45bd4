package cfg

import (
	"fmt"
	"os"
	"ytdl/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// loadConfigFile loads any Viper-supported config file. Flags set on the
// command line still take precedence.
func loadConfigFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed check for config file path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config file %q is a directory, should be a file", path)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed loading config file %q: %w", path, err)
	}
	return nil
}

// logConfigSources reports which flags the loaded config file supplied.
func logConfigSources(cmd *cobra.Command) {
	logging.D(1, "Loaded config file %q", viper.ConfigFileUsed())
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		switch {
		case !viper.InConfig(f.Name):
		case f.Changed:
			logging.D(2, "Flag %q overrides config file value", f.Name)
		default:
			logging.D(2, "Flag %q taken from config file", f.Name)
		}
	})
}
