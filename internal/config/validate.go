package config

import (
	"errors"
	"fmt"
	"strings"

	"srtslicer/internal/fsname"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFFmpeg(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFFmpeg() error {
	if strings.TrimSpace(c.FFmpeg.Binary) == "" {
		return errors.New("ffmpeg.binary must be set")
	}
	if c.FFmpeg.TimeoutSeconds < 0 {
		return errors.New("ffmpeg.timeout_seconds must be zero or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	ext := c.Output.Extension
	if len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("output.extension %q must be a file extension such as .wav", ext)
	}
	if _, err := fsname.Lookup(c.Output.FilenameEncoding); err != nil {
		return fmt.Errorf("output.filename_encoding: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
