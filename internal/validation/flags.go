package validation

import (
	"fmt"
	"os/exec"
	"strings"
	"ytdl/internal/domain/keys"
	"ytdl/internal/utils/logging"

	"github.com/spf13/viper"
)

const (
	offDebugLevel = -1
	maxDebugLevel = 5
)

// ValidateViperFlags verifies that the user input flags are valid, modifying them to defaults or returning errors.
func ValidateViperFlags() error {
	// Debug level
	if viper.IsSet(keys.DebugLevel) {
		lvl := viper.GetInt(keys.DebugLevel)
		switch {
		case lvl < offDebugLevel:
			viper.Set(keys.DebugLevel, offDebugLevel)
		case lvl > maxDebugLevel:
			viper.Set(keys.DebugLevel, maxDebugLevel)
		}
	}

	// Downloader binary
	if viper.IsSet(keys.Binary) {
		bin := strings.TrimSpace(viper.GetString(keys.Binary))
		if bin == "" {
			return fmt.Errorf("flag %q was set but is empty", keys.Binary)
		}
		if _, err := exec.LookPath(bin); err != nil {
			// Not fatal, the run reports a launch failure.
			logging.D(1, "Downloader %q not found in PATH: %v", bin, err)
		}
		viper.Set(keys.Binary, bin)
	}

	// Arguments
	for _, a := range viper.GetStringSlice(keys.Args) {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("empty value passed to %q", keys.Args)
		}
	}
	return nil
}
