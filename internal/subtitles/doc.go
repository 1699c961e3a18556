// Package subtitles reads SRT-style caption files into ordered cue records.
//
// Parsing is lenient: an entry whose index line is not an integer is skipped
// and reported as a Diagnostic, malformed time ranges pass through untouched,
// and Check reports suspicious cues without rejecting them. Caption text is
// sanitized for use in file names as it is read.
package subtitles
