package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"srtslicer/internal/config"
	"srtslicer/internal/logging"
	"srtslicer/internal/preflight"
	"srtslicer/internal/services"
	"srtslicer/internal/slicer"
)

type inputFlags struct {
	audioPath    string
	subtitlePath string
	outputDir    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.audioPath, "audio", "a", "", "Source audio file")
	cmd.Flags().StringVarP(&f.subtitlePath, "subtitles", "s", "", "SRT subtitle file")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Write clips here instead of next to the audio")
}

// resolve prompts for missing paths and applies the output directory override.
func (f *inputFlags) resolve(cmd *cobra.Command, cfg *config.Config) (slicer.Request, error) {
	err := resolvePaths(cmd,
		pathPrompt{value: &f.audioPath, flag: "audio", prompt: "Path to the audio file: "},
		pathPrompt{value: &f.subtitlePath, flag: "subtitles", prompt: "Path to the subtitle file: "},
	)
	if err != nil {
		return slicer.Request{}, err
	}
	if dir := strings.TrimSpace(f.outputDir); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return slicer.Request{}, fmt.Errorf("resolve output dir: %w", err)
		}
		cfg.Output.Dir = expanded
	}
	return slicer.Request{
		AudioPath:    strings.TrimSpace(f.audioPath),
		SubtitlePath: strings.TrimSpace(f.subtitlePath),
	}, nil
}

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var inputs inputFlags
	var failOnError bool

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Extract one audio clip per subtitle cue",
		Long: "Split reads an SRT file and writes one clip of the audio per cue,\n" +
			"named {base}_{index}_{startMs}_{endMs}_{text}{ext}. Clips are stream\n" +
			"copied by ffmpeg, one at a time. A failed clip is reported and the\n" +
			"remaining clips are still attempted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req, err := inputs.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			ffmpegCheck := preflight.CheckBinary("FFmpeg", cfg.FFmpeg.Binary)
			if !ffmpegCheck.Passed {
				return services.Wrap(services.ErrConfiguration, "preflight", "ffmpeg", ffmpegCheck.Detail, nil)
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			s, err := slicer.New(cfg, logger)
			if err != nil {
				return err
			}

			summary, runErr := s.Run(cmd.Context(), req)
			out := cmd.OutOrStdout()
			if len(summary.Outcomes) > 0 {
				fmt.Fprintln(out, renderOutcomeTable(summary.Outcomes))
			}
			if errors.Is(runErr, slicer.ErrSubtitlesUnreadable) && !failOnError {
				logger.Error("no clips extracted",
					logging.String(logging.FieldEventType, "subtitles_unreadable"),
					logging.String("subtitles", req.SubtitlePath),
					logging.Error(runErr),
				)
				runErr = nil
			}
			if runErr != nil {
				return runErr
			}

			fmt.Fprintf(out, "Split complete: %d clips written, %d failed, %d entries skipped\n",
				summary.Succeeded, summary.Failed, len(summary.Diagnostics))
			if failOnError && summary.Failed > 0 {
				return fmt.Errorf("%d of %d clips failed", summary.Failed, summary.Planned)
			}
			return nil
		},
	}

	inputs.register(cmd)
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any clip fails or the subtitles cannot be read")
	return cmd
}
