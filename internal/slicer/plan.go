package slicer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"srtslicer/internal/fsname"
	"srtslicer/internal/subtitles"
)

// ErrNameOutsideDir marks a clip whose caption text contains a path separator,
// which would place the clip outside the output directory.
var ErrNameOutsideDir = errors.New("clip name leaves the output directory")

// Clip is a planned extraction for one cue.
type Clip struct {
	Cue         subtitles.Cue
	StartMillis string
	EndMillis   string
	// Name is the file name without the directory.
	Name string
	// OutputPath is the UTF-8 name shown to users.
	OutputPath string
	// TargetPath is OutputPath converted to the configured filename encoding;
	// it is the name handed to ffmpeg.
	TargetPath string
	// Err is set when the clip cannot be extracted as planned.
	Err error
}

// PlanOptions controls clip naming.
type PlanOptions struct {
	// OutputDir overrides the directory derived from the audio path.
	OutputDir string
	Extension string
	Encoder   *fsname.Encoder
}

// Plan builds one clip per cue, in cue order. Names follow
// {dir}/{base}_{index}_{startMs}_{endMs}_{text}{ext}.
func Plan(audioPath string, cues []subtitles.Cue, opts PlanOptions) ([]Clip, error) {
	dir, base := SplitAudioPath(audioPath)
	if opts.OutputDir != "" {
		dir = opts.OutputDir
	}
	ext := opts.Extension
	if ext == "" {
		ext = ".wav"
	}

	clips := make([]Clip, 0, len(cues))
	for _, cue := range cues {
		clip := Clip{
			Cue:         cue,
			StartMillis: subtitles.MillisString(cue.Start),
			EndMillis:   subtitles.MillisString(cue.End),
		}
		name := fmt.Sprintf("%s_%d_%s_%s_%s%s", base, cue.Index, clip.StartMillis, clip.EndMillis, cue.Text, ext)
		clip.Name = name
		clip.OutputPath = joinClipPath(dir, name)
		if strings.ContainsRune(cue.Text, '/') || strings.ContainsRune(cue.Text, filepath.Separator) {
			clip.Err = fmt.Errorf("%w: caption %q contains a path separator", ErrNameOutsideDir, cue.Text)
		}

		target, err := opts.Encoder.Encode(clip.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("clip %d: %w", cue.Index, err)
		}
		clip.TargetPath = target
		clips = append(clips, clip)
	}
	return clips, nil
}

// joinClipPath appends name to dir without cleaning, so caption text is never
// reinterpreted as path elements. A relative dir keeps its "./" prefix and a
// name starting with '-' cannot be mistaken for an ffmpeg option.
func joinClipPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// SplitAudioPath returns the directory of audioPath and its file name without
// the final extension. Both '/' and '\' separate directories. A path without a
// directory component lives in ".".
func SplitAudioPath(audioPath string) (dir, base string) {
	sep := strings.LastIndexAny(audioPath, `/\`)
	name := audioPath
	switch {
	case sep < 0:
		dir = "."
	case sep == 0:
		dir = audioPath[:1]
		name = audioPath[1:]
	default:
		dir = audioPath[:sep]
		name = audioPath[sep+1:]
	}
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[:dot]
	}
	return dir, name
}
