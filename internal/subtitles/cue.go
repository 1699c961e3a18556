package subtitles

import "fmt"

// Cue is one parsed subtitle entry. Start and End keep the source text with the
// fractional separator normalized to a period (HH:MM:SS.mmm).
type Cue struct {
	Index int
	Start string
	End   string
	Text  string
}

// Diagnostic describes an entry the parser skipped.
type Diagnostic struct {
	Line int    // 1-based line number of the offending line
	Text string // offending line as read
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %v: %q", d.Line, d.Err, d.Text)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Result carries the parsed cues in file order together with one diagnostic per
// skipped entry.
type Result struct {
	Cues        []Cue
	Diagnostics []Diagnostic
}
