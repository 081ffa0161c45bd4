package ytdl

import "ytdl/internal/domain/consts"

type config struct {
	binary string
	locale string
	decode DecodePolicy
}

func defaultConfig() config {
	return config{
		binary: defaultBinary,
		locale: consts.DefaultLocale,
		decode: DecodeStrict,
	}
}

// Option configures a Job.
type Option func(*config)

// WithBinary runs name instead of the downloader chosen at build time.
// It may be a bare name looked up in PATH or a path to an executable;
// relative paths are taken from the working directory at NewJob time.
func WithBinary(name string) Option {
	return func(c *config) {
		c.binary = name
	}
}

// WithLocale sets the LC_ALL value passed to the downloader.
// An empty value leaves the inherited environment untouched.
func WithLocale(locale string) Option {
	return func(c *config) {
		c.locale = locale
	}
}

// WithDecodePolicy sets how output that is not valid UTF-8 is handled.
func WithDecodePolicy(p DecodePolicy) Option {
	return func(c *config) {
		c.decode = p
	}
}

// DefaultBinary returns the downloader name compiled into this build.
func DefaultBinary() string {
	return defaultBinary
}
