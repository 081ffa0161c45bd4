//go:build ytdlp && !youtubedlc

package ytdl

import "ytdl/internal/domain/command"

const defaultBinary = command.YTDLP
