// Package slicer turns a subtitle file and an audio recording into one audio
// clip per subtitle cue.
//
// Plan derives the output names (base name, cue index, zero-padded start and
// end milliseconds, sanitized caption text) without touching the filesystem.
// Slicer.Run parses the subtitles, plans the clips, then invokes ffmpeg once
// per clip, strictly one after another. A failed clip is logged and recorded in
// the Summary; the batch continues with the next clip.
package slicer
