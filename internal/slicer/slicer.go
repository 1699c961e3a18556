package slicer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"srtslicer/internal/config"
	"srtslicer/internal/fsname"
	"srtslicer/internal/logging"
	"srtslicer/internal/media/ffmpeg"
	"srtslicer/internal/media/ffprobe"
	"srtslicer/internal/services"
	"srtslicer/internal/subtitles"
)

// IssueBeyondSource marks a cue that ends after the measured end of the audio.
const IssueBeyondSource = "beyond_source"

const lockFileName = ".srtslicer.lock"

// ErrSubtitlesUnreadable marks a subtitle file that could not be opened or read.
var ErrSubtitlesUnreadable = errors.New("subtitle file unreadable")

// Extractor performs a single clip extraction.
type Extractor interface {
	Extract(ctx context.Context, req ffmpeg.ClipRequest) error
}

// InspectFunc inspects a media file.
type InspectFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Request names the two inputs of a batch.
type Request struct {
	AudioPath    string
	SubtitlePath string
}

// Prepared is a parsed and planned batch that has not been executed.
type Prepared struct {
	OutputDir   string
	Clips       []Clip
	Diagnostics []subtitles.Diagnostic
	Issues      []subtitles.Issue
}

// Outcome records the result of one extraction.
type Outcome struct {
	Clip    Clip
	Err     error
	Elapsed time.Duration
}

// Summary describes a finished (or interrupted) batch.
type Summary struct {
	RunID       string
	Planned     int
	Succeeded   int
	Failed      int
	Outcomes    []Outcome
	Diagnostics []subtitles.Diagnostic
	Issues      []subtitles.Issue
}

// Slicer runs split batches.
type Slicer struct {
	cfg       *config.Config
	logger    *slog.Logger
	encoder   *fsname.Encoder
	extractor Extractor
	inspect   InspectFunc
	newRunID  func() string
}

// Option customizes a Slicer.
type Option func(*Slicer)

// WithExtractor replaces the ffmpeg extractor.
func WithExtractor(e Extractor) Option {
	return func(s *Slicer) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithInspector replaces the ffprobe inspection.
func WithInspector(fn InspectFunc) Option {
	return func(s *Slicer) {
		if fn != nil {
			s.inspect = fn
		}
	}
}

// New constructs a Slicer from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Slicer, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "slicer", "init", "config is required", nil)
	}
	encoder, err := fsname.Lookup(cfg.Output.FilenameEncoding)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "slicer", "init", "filename encoding", err)
	}

	logger = logging.NewComponentLogger(logger, "slicer")
	s := &Slicer{
		cfg:     cfg,
		logger:  logger,
		encoder: encoder,
		extractor: ffmpeg.NewExtractor(ffmpeg.Options{
			Binary:     cfg.FFmpeg.Binary,
			Overwrite:  cfg.FFmpeg.Overwrite,
			HideBanner: cfg.FFmpeg.HideBanner,
			Timeout:    cfg.ClipTimeout(),
		}, logger),
		inspect:  ffprobe.Inspect,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Prepare parses the subtitle file and plans the clips without running ffmpeg.
func (s *Slicer) Prepare(req Request) (Prepared, error) {
	if strings.TrimSpace(req.AudioPath) == "" {
		return Prepared{}, services.Wrap(services.ErrValidation, "plan", "inputs", "audio path is required", nil)
	}
	if strings.TrimSpace(req.SubtitlePath) == "" {
		return Prepared{}, services.Wrap(services.ErrValidation, "plan", "inputs", "subtitle path is required", nil)
	}

	parsed, err := subtitles.ParseFile(req.SubtitlePath)
	if err != nil {
		return Prepared{}, services.Wrap(services.ErrValidation, "parse", "read subtitles", req.SubtitlePath, fmt.Errorf("%w: %w", ErrSubtitlesUnreadable, err))
	}

	outputDir, _ := SplitAudioPath(req.AudioPath)
	if s.cfg.Output.Dir != "" {
		outputDir = s.cfg.Output.Dir
	}
	clips, err := Plan(req.AudioPath, parsed.Cues, PlanOptions{
		OutputDir: outputDir,
		Extension: s.cfg.Output.Extension,
		Encoder:   s.encoder,
	})
	if err != nil {
		return Prepared{}, services.Wrap(services.ErrConfiguration, "plan", "encode names", "", err)
	}

	return Prepared{
		OutputDir:   outputDir,
		Clips:       clips,
		Diagnostics: parsed.Diagnostics,
		Issues:      subtitles.Check(parsed.Cues),
	}, nil
}

// Run parses, plans, and extracts every clip in order. Per-clip failures are
// logged and counted in the Summary; the returned error is reserved for
// problems that stop the whole batch (unreadable subtitles, a held output
// lock, cancellation).
func (s *Slicer) Run(ctx context.Context, req Request) (Summary, error) {
	runID := s.newRunID()
	ctx = services.WithRunID(ctx, runID)
	summary := Summary{RunID: runID}

	prepared, err := s.Prepare(req)
	if err != nil {
		return summary, err
	}
	summary.Planned = len(prepared.Clips)
	summary.Diagnostics = prepared.Diagnostics
	summary.Issues = prepared.Issues

	logger := logging.WithContext(ctx, s.logger)
	s.logParseFindings(logger, prepared)
	summary.Issues = append(summary.Issues, s.checkSourceDuration(ctx, logger, req.AudioPath, prepared.Clips)...)

	if s.cfg.Output.LockOutputDir && len(prepared.Clips) > 0 {
		unlock, err := s.lockOutputDir(prepared.OutputDir)
		if err != nil {
			return summary, err
		}
		defer unlock()
	}

	logger.Info("splitting audio",
		logging.String("audio", req.AudioPath),
		logging.String("subtitles", req.SubtitlePath),
		logging.String("output_dir", prepared.OutputDir),
		logging.Int("clips", len(prepared.Clips)),
		logging.Bool("overwrite", s.cfg.FFmpeg.Overwrite),
	)

	for _, clip := range prepared.Clips {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		clipCtx := services.WithCueIndex(services.WithStage(ctx, "extract"), clip.Cue.Index)
		clipLogger := logging.WithContext(clipCtx, s.logger)
		if clip.Err != nil {
			summary.Failed++
			summary.Outcomes = append(summary.Outcomes, Outcome{Clip: clip, Err: clip.Err})
			clipLogger.Error("clip skipped",
				logging.String(logging.FieldEventType, "clip_invalid_name"),
				logging.String("output", clip.OutputPath),
				logging.Error(clip.Err),
			)
			continue
		}

		clipLogger.Info("extracting clip",
			logging.String("start", clip.Cue.Start),
			logging.String("end", clip.Cue.End),
			logging.String("output", clip.OutputPath),
		)

		started := time.Now()
		err := s.extractor.Extract(clipCtx, ffmpeg.ClipRequest{
			Input:  req.AudioPath,
			Start:  clip.Cue.Start,
			End:    clip.Cue.End,
			Output: clip.TargetPath,
		})
		outcome := Outcome{Clip: clip, Err: err, Elapsed: time.Since(started)}
		summary.Outcomes = append(summary.Outcomes, outcome)

		if err != nil {
			summary.Failed++
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return summary, ctx.Err()
			}
			if services.IsFatal(err) {
				return summary, err
			}
			clipLogger.Error("clip extraction failed",
				logging.String(logging.FieldEventType, "clip_failed"),
				logging.String("output", clip.OutputPath),
				logging.Error(err),
			)
			continue
		}
		summary.Succeeded++
	}

	logger.Info("split complete",
		logging.Int("planned", summary.Planned),
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped_entries", len(summary.Diagnostics)),
	)
	return summary, nil
}

func (s *Slicer) logParseFindings(logger *slog.Logger, prepared Prepared) {
	for _, diag := range prepared.Diagnostics {
		logger.Warn("skipped subtitle entry",
			logging.String(logging.FieldEventType, "invalid_subtitle_index"),
			logging.Int("line", diag.Line),
			logging.String("text", diag.Text),
		)
	}
	for _, issue := range prepared.Issues {
		logger.Warn("suspicious subtitle cue",
			logging.String(logging.FieldEventType, issue.Kind),
			logging.Int(logging.FieldCueIndex, issue.Index),
			logging.String("detail", issue.Detail),
		)
	}
}

// checkSourceDuration warns about cues that end past the end of the audio.
// Inspection failures are logged and otherwise ignored.
func (s *Slicer) checkSourceDuration(ctx context.Context, logger *slog.Logger, audioPath string, clips []Clip) []subtitles.Issue {
	if !s.cfg.FFmpeg.InspectSource || len(clips) == 0 {
		return nil
	}
	result, err := s.inspect(ctx, s.cfg.FFmpeg.FFprobeBinary, audioPath)
	if err != nil {
		logger.Warn("could not inspect source audio",
			logging.String(logging.FieldEventType, "inspect_failed"),
			logging.String("audio", audioPath),
			logging.Error(err),
		)
		return nil
	}
	if result.AudioStreamCount() == 0 {
		logger.Warn("source has no audio stream",
			logging.String(logging.FieldEventType, "no_audio_stream"),
			logging.String("audio", audioPath),
		)
	}
	total := result.Duration()
	if total <= 0 {
		return nil
	}
	logger.Debug("inspected source audio", logging.Float64("duration_seconds", total.Seconds()))
	limit := total.Milliseconds()

	var issues []subtitles.Issue
	for _, clip := range clips {
		end := subtitles.Millis(clip.Cue.End)
		if end <= limit {
			continue
		}
		issue := subtitles.Issue{
			Index:  clip.Cue.Index,
			Kind:   IssueBeyondSource,
			Detail: fmt.Sprintf("ends at %s, audio ends at %s", clip.Cue.End, subtitles.FormatClock(limit)),
		}
		issues = append(issues, issue)
		logger.Warn("subtitle cue ends after the audio",
			logging.String(logging.FieldEventType, issue.Kind),
			logging.Int(logging.FieldCueIndex, issue.Index),
			logging.String("detail", issue.Detail),
		)
	}
	return issues
}

func (s *Slicer) lockOutputDir(dir string) (func(), error) {
	path := filepath.Join(dir, lockFileName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "extract", "lock output", dir, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrValidation, "extract", "lock output", fmt.Sprintf("another srtslicer run is writing to %s", dir), nil)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release output lock", logging.String("lock", path), logging.Error(err))
			return
		}
		_ = os.Remove(path)
	}, nil
}
