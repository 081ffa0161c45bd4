package ytdl

import (
	"io"
	"ytdl/internal/utils/logging"
)

// SetLogOutput sends the package's log lines to w. Debug lines up to
// debugLevel (0-5) are included; -1 keeps only errors and info.
//
// Logging is off until this is called. A nil writer turns it off again.
func SetLogOutput(w io.Writer, debugLevel int) {
	logging.Init(w, debugLevel)
}
