// Package services holds the cross-cutting error markers and context
// annotations shared by the parsing, planning, and extraction stages.
//
// Stage code wraps failures with Wrap so the CLI can tell a fatal
// configuration or input problem apart from a single failed clip, and attaches
// run and cue identifiers to contexts so log lines can be correlated.
package services
