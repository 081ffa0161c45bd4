//go:build youtubedlc

package ytdl

import "ytdl/internal/domain/command"

const defaultBinary = command.YoutubeDLC
