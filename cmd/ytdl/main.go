// Package main is the entrypoint of the ytdl command.
package main

import (
	"fmt"
	"os"
	"time"
	"ytdl/internal/cfg"
	"ytdl/internal/domain/consts"
	"ytdl/internal/utils/logging"
)

// main is the main entrypoint of the program (duh!).
func main() {
	startTime := time.Now()

	err := cfg.Execute()

	endTime := time.Now()
	logging.D(1, "ytdl finished at: %v", endTime.Format(consts.TimeFormatLog))
	logging.D(1, "Time elapsed: %.2f seconds", endTime.Sub(startTime).Seconds())
	if cerr := logging.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", cerr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ytdl: %v\n", err)
		os.Exit(cfg.ExitCode(err))
	}
}
