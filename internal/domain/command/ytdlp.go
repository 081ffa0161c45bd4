// Package command holds the names and flags of the youtube-dl family of downloaders.
package command

// Downloader binaries. All three accept the same core flags.
const (
	YoutubeDL  = "youtube-dl"
	YoutubeDLC = "youtube-dlc"
	YTDLP      = "yt-dlp"
)

// General
const (
	Version = "--version"
)

// Environment
const (
	EnvLocale = "LC_ALL"
)
