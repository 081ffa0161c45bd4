// Package consts holds various global, unchanging values.
package consts

// Program identity.
const (
	ProgramName = "ytdl"
	LogFileName = "ytdl.log"
	EnvPrefix   = "YTDL"
)

// DefaultLocale is exported to the downloader as LC_ALL so its output is UTF-8.
const DefaultLocale = "en_US.UTF-8"

// Time formats.
const (
	TimeFormatLog   = "2006-01-02 15:04:05.00 MST"
	TimeFormatStamp = "15:04:05"
)
