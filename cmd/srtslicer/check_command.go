package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srtslicer/internal/preflight"
	"srtslicer/internal/slicer"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var audioPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, ffprobe and the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			outputDir := cfg.Output.Dir
			if outputDir == "" && strings.TrimSpace(audioPath) != "" {
				outputDir, _ = slicer.SplitAudioPath(strings.TrimSpace(audioPath))
			}
			results := preflight.RunAll(cfg, outputDir)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, checkHeading("srtslicer check"))
			configPath := ctx.configPath
			if !ctx.configExists {
				configPath = "defaults (no file at " + ctx.configPath + ")"
			}
			fmt.Fprintln(out, checkLine("Config", toneInfo, configPath, colorize))
			fmt.Fprintln(out, checkLine("Filename encoding", toneInfo, cfg.Output.FilenameEncoding, colorize))
			fmt.Fprintln(out, checkLine("Overwrite clips", toneInfo, yesNo(cfg.FFmpeg.Overwrite), colorize))
			for _, r := range results {
				fmt.Fprintln(out, checkLine(r.Name, resultTone(r), r.Detail, colorize))
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d required check(s) failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&audioPath, "audio", "a", "", "Check the directory clips for this audio file would be written to")
	return cmd
}
