package config

const (
	defaultConfigPath       = "~/.config/srtslicer/config.toml"
	projectConfigName       = "srtslicer.toml"
	defaultFFmpegBinary     = "ffmpeg"
	defaultFFprobeBinary    = "ffprobe"
	defaultExtension        = ".wav"
	defaultFilenameEncoding = "utf-8"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		FFmpeg: FFmpeg{
			Binary:        defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
			HideBanner:    true,
			InspectSource: true,
		},
		Output: Output{
			Extension:        defaultExtension,
			FilenameEncoding: defaultFilenameEncoding,
			LockOutputDir:    true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
