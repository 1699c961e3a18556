// Package preflight verifies external tools and directories before a batch runs.
package preflight

import (
	"srtslicer/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes the checks relevant to splitting into outputDir. An empty
// outputDir skips the directory check.
func RunAll(cfg *config.Config, outputDir string) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckBinary("FFmpeg", cfg.FFmpeg.Binary)}

	if cfg.FFmpeg.InspectSource {
		inspector := CheckBinary("FFprobe", cfg.FFmpeg.FFprobeBinary)
		inspector.Optional = true
		results = append(results, inspector)
	}

	if outputDir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", outputDir))
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed returns the required checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r)
		}
	}
	return failed
}
