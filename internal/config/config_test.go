package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"srtslicer/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SRTSLICER_FFMPEG", "")
	t.Setenv("SRTSLICER_FFPROBE", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "srtslicer", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.FFmpeg.Binary != "ffmpeg" || cfg.FFmpeg.FFprobeBinary != "ffprobe" {
		t.Fatalf("unexpected binaries: %q %q", cfg.FFmpeg.Binary, cfg.FFmpeg.FFprobeBinary)
	}
	if cfg.Output.Extension != ".wav" {
		t.Fatalf("unexpected extension: %q", cfg.Output.Extension)
	}
	if cfg.Output.FilenameEncoding != "utf-8" {
		t.Fatalf("unexpected filename encoding: %q", cfg.Output.FilenameEncoding)
	}
	if cfg.Output.Dir != "" || cfg.Paths.LogDir != "" {
		t.Fatalf("expected empty optional dirs, got %q %q", cfg.Output.Dir, cfg.Paths.LogDir)
	}
	if cfg.FFmpeg.Overwrite {
		t.Fatal("expected overwrite disabled by default")
	}
	if !cfg.FFmpeg.InspectSource {
		t.Fatal("expected source probing enabled by default")
	}
	if cfg.ClipTimeout() != 0 {
		t.Fatalf("expected no clip timeout, got %s", cfg.ClipTimeout())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "srtslicer.toml")

	type payload struct {
		FFmpeg struct {
			Binary         string `toml:"binary"`
			Overwrite      bool   `toml:"overwrite"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"ffmpeg"`
		Output struct {
			Dir       string `toml:"dir"`
			Extension string `toml:"extension"`
		} `toml:"output"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.FFmpeg.Binary = "/opt/ffmpeg/bin/ffmpeg"
	custom.FFmpeg.Overwrite = true
	custom.FFmpeg.TimeoutSeconds = 30
	custom.Output.Dir = filepath.Join(tempDir, "clips")
	custom.Output.Extension = "flac"
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.FFmpeg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected binary: %q", cfg.FFmpeg.Binary)
	}
	if !cfg.FFmpeg.Overwrite {
		t.Fatal("expected overwrite enabled")
	}
	if cfg.ClipTimeout() != 30*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.ClipTimeout())
	}
	if cfg.Output.Extension != ".flac" {
		t.Fatalf("expected extension to gain a dot, got %q", cfg.Output.Extension)
	}
	if cfg.Output.Dir != custom.Output.Dir {
		t.Fatalf("unexpected output dir: %q", cfg.Output.Dir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging values, got %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
	if !cfg.FFmpeg.HideBanner {
		t.Fatal("unset keys should keep defaults")
	}
}

func TestLoadExpandsHomeInPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[paths]\nlog_dir = \"~/logs\"\n\n[output]\ndir = \"~/clips\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Output.Dir != filepath.Join(tempHome, "clips") {
		t.Fatalf("unexpected output dir: %q", cfg.Output.Dir)
	}
}

func TestLoadEnvOverridesBinaries(t *testing.T) {
	t.Setenv("SRTSLICER_FFMPEG", "/custom/ffmpeg")
	t.Setenv("SRTSLICER_FFPROBE", "/custom/ffprobe")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FFmpeg.Binary != "/custom/ffmpeg" || cfg.FFmpeg.FFprobeBinary != "/custom/ffprobe" {
		t.Fatalf("env overrides not applied: %q %q", cfg.FFmpeg.Binary, cfg.FFmpeg.FFprobeBinary)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown encoding", "[output]\nfilename_encoding = \"klingon-8\"\n", "output.filename_encoding"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"negative timeout", "[ffmpeg]\ntimeout_seconds = -1\n", "ffmpeg.timeout_seconds"},
		{"bare dot extension", "[output]\nextension = \".\"\n", "output.extension"},
		{"unknown key", "[output]\nsuffix = \".wav\"\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error %q", tt.want, err.Error())
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Output.Extension != config.Default().Output.Extension {
		t.Fatalf("sample extension drifted from defaults: %q", cfg.Output.Extension)
	}
}
