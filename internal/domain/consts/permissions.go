package consts

// Permissions for files and directories ytdl might create.
const (
	// Download directories - world readable
	PermsDownloadDir = 0o755

	// Log directory and file
	PermsLogDir  = 0o755
	PermsLogFile = 0o644
)
