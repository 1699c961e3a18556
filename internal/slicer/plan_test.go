package slicer

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"srtslicer/internal/fsname"
	"srtslicer/internal/subtitles"
)

func TestPlanNamesClips(t *testing.T) {
	cues := []subtitles.Cue{
		{Index: 2, Start: "00:00:01.500", End: "00:00:03.000", Text: "Hello "},
		{Index: 7, Start: "01:00:00.000", End: "01:00:00.001", Text: ""},
	}
	clips, err := Plan("/data/talk.wav", cues, PlanOptions{Extension: ".wav", Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if len(clips) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(clips))
	}

	want := "/data" + string(filepath.Separator) + "talk_2_000001500_000003000_Hello .wav"
	if clips[0].OutputPath != want {
		t.Fatalf("unexpected name\n got: %q\nwant: %q", clips[0].OutputPath, want)
	}
	if clips[0].TargetPath != clips[0].OutputPath {
		t.Fatalf("identity encoder changed path: %q", clips[0].TargetPath)
	}
	if clips[0].StartMillis != "000001500" || clips[0].EndMillis != "000003000" {
		t.Fatalf("unexpected millis %q %q", clips[0].StartMillis, clips[0].EndMillis)
	}
	if got := filepath.Base(clips[1].OutputPath); got != "talk_7_003600000_003600001_.wav" {
		t.Fatalf("unexpected second name %q", got)
	}
}

func TestPlanHonorsOverridesAndExtension(t *testing.T) {
	cues := []subtitles.Cue{{Index: 1, Start: "00:00:00.000", End: "00:00:01.000", Text: "a "}}
	clips, err := Plan("/data/talk.wav", cues, PlanOptions{OutputDir: "/clips", Extension: ".flac", Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	want := "/clips" + string(filepath.Separator) + "talk_1_000000000_000001000_a .flac"
	if clips[0].OutputPath != want {
		t.Fatalf("got %q want %q", clips[0].OutputPath, want)
	}
}

func TestPlanEncodesTargetPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows file names are always unicode")
	}
	encoder, err := fsname.Lookup("ISO-8859-1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	cues := []subtitles.Cue{{Index: 1, Start: "00:00:00.000", End: "00:00:01.000", Text: "café "}}
	clips, err := Plan("/data/talk.wav", cues, PlanOptions{Extension: ".wav", Encoder: encoder})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if !strings.Contains(clips[0].OutputPath, "café") {
		t.Fatalf("display path lost text: %q", clips[0].OutputPath)
	}
	if !strings.Contains(clips[0].TargetPath, "caf\xe9") {
		t.Fatalf("target path not latin-1 encoded: %q", clips[0].TargetPath)
	}
}

func TestPlanDistinctNamesPerCue(t *testing.T) {
	res, err := subtitles.Parse(strings.NewReader("1\n00:00:00,000 --> 00:00:01,000\nA\n\n2\n00:00:01,000 --> 00:00:02,000\nA\n\n3\n00:00:02,000 --> 00:00:03,000\nA\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	clips, err := Plan("a.wav", res.Cues, PlanOptions{Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	seen := map[string]bool{}
	for _, clip := range clips {
		if seen[clip.OutputPath] {
			t.Fatalf("duplicate output %q", clip.OutputPath)
		}
		seen[clip.OutputPath] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 names, got %d", len(seen))
	}
}

func TestSplitAudioPath(t *testing.T) {
	cases := []struct {
		path string
		dir  string
		base string
	}{
		{"/data/talk.wav", "/data", "talk"},
		{`C:\audio\talk.final.wav`, `C:\audio`, "talk.final"},
		{"mixed/dir\\clip.mp3", "mixed/dir", "clip"},
		{"talk.wav", ".", "talk"},
		{"/talk.wav", "/", "talk"},
		{"/data/noext", "/data", "noext"},
	}
	for _, tc := range cases {
		dir, base := SplitAudioPath(tc.path)
		if dir != tc.dir || base != tc.base {
			t.Errorf("SplitAudioPath(%q) = (%q, %q), want (%q, %q)", tc.path, dir, base, tc.dir, tc.base)
		}
	}
}

func TestPlanKeepsCaptionInsideOutputDir(t *testing.T) {
	dir := filepath.FromSlash("/data/audio")
	cues := []subtitles.Cue{{Index: 1, Start: "00:00:01.000", End: "00:00:02.000", Text: "x/../../../../tmp/evil "}}
	clips, err := Plan(filepath.Join(dir, "talk.wav"), cues, PlanOptions{Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	clip := clips[0]
	wantName := "talk_1_000001000_000002000_x/../../../../tmp/evil .wav"
	if clip.Name != wantName {
		t.Fatalf("unexpected name %q", clip.Name)
	}
	if clip.OutputPath != dir+string(filepath.Separator)+wantName {
		t.Fatalf("caption text was reinterpreted as a path: %q", clip.OutputPath)
	}
	if !errors.Is(clip.Err, ErrNameOutsideDir) {
		t.Fatalf("expected ErrNameOutsideDir, got %v", clip.Err)
	}
}

func TestPlanPlainCaptionHasNoError(t *testing.T) {
	cues := []subtitles.Cue{{Index: 1, Start: "00:00:01.000", End: "00:00:02.000", Text: "fine. text "}}
	clips, err := Plan("/data/talk.wav", cues, PlanOptions{Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if clips[0].Err != nil {
		t.Fatalf("unexpected clip error %v", clips[0].Err)
	}
}

func TestPlanRelativeAudioKeepsDotPrefix(t *testing.T) {
	cues := []subtitles.Cue{{Index: 1, Start: "00:00:00.000", End: "00:00:01.000", Text: "a "}}
	clips, err := Plan("-take.wav", cues, PlanOptions{Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	want := "." + string(filepath.Separator) + "-take_1_000000000_000001000_a .wav"
	if clips[0].OutputPath != want {
		t.Fatalf("got %q want %q", clips[0].OutputPath, want)
	}
	if strings.HasPrefix(clips[0].TargetPath, "-") {
		t.Fatalf("target path would be read as an option: %q", clips[0].TargetPath)
	}
}

func TestPlanRootDirectory(t *testing.T) {
	cues := []subtitles.Cue{{Index: 1, Start: "00:00:00.000", End: "00:00:01.000", Text: "a "}}
	clips, err := Plan("/talk.wav", cues, PlanOptions{Encoder: fsname.Identity()})
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if clips[0].OutputPath != "/talk_1_000000000_000001000_a .wav" {
		t.Fatalf("unexpected path %q", clips[0].OutputPath)
	}
}
