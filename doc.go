// Package ytdl runs youtube-dl (or one of its forks) as a subprocess.
//
// A Job pairs a download directory with the arguments and links to pass to
// the downloader. Execute blocks until the downloader exits and reports one
// of three outcomes: Success, ToolFailure or LaunchFailure.
//
//	args := []ytdl.Arg{
//		ytdl.NewArg("--quiet"),
//		ytdl.NewArgWithValue("--output", "%(title).90s.%(ext)s"),
//	}
//	job, err := ytdl.New("./downloads", args, "https://www.youtube.com/watch?v=uTO0KnDsVH0")
//	if err != nil {
//		return err
//	}
//	res, err := job.Execute()
//	if err != nil {
//		return err
//	}
//	if err := res.Err(); err != nil {
//		return err
//	}
//	fmt.Println("downloaded into", res.Directory())
//
// The downloader binary is chosen at build time: youtube-dl by default,
// yt-dlp with the "ytdlp" build tag, youtube-dlc with "youtubedlc".
package ytdl
