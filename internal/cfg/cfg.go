// Package cfg provides configuration and command-line interface setup for ytdl.
package cfg

import (
	"fmt"
	"strings"
	"ytdl/internal/domain/consts"
	"ytdl/internal/domain/keys"
	"ytdl/internal/utils/logging"
	"ytdl/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the ytdl command tree and binds its flags to Viper.
func NewRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           consts.ProgramName,
		Short:         "ytdl runs youtube-dl style downloaders into a chosen directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup flags from config file
			if viper.IsSet(keys.ConfigFile) {
				if err := loadConfigFile(viper.GetString(keys.ConfigFile)); err != nil {
					return err
				}
			}
			if err := validation.ValidateViperFlags(); err != nil {
				return err
			}

			logging.Init(cmd.ErrOrStderr(), viper.GetInt(keys.DebugLevel))
			if viper.ConfigFileUsed() != "" {
				logConfigSources(cmd)
			}
			if viper.IsSet(keys.LogDir) {
				if err := logging.SetupLogging(viper.GetString(keys.LogDir)); err != nil {
					logging.E("Log file was not created, proceeding without: %v", err)
				}
			}
			return nil
		},
	}

	viper.SetEnvPrefix(consts.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "log-dir" reads YTDL_LOG_DIR
	viper.AutomaticEnv()

	if err := initProgramFlags(rootCmd); err != nil {
		return nil, err
	}
	if err := initDownloaderFlags(rootCmd); err != nil {
		return nil, err
	}

	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd, nil
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	rootCmd, err := NewRootCmd()
	if err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}
	return rootCmd.Execute()
}
