package subtitles

import "fmt"

// Issue kinds reported by Check.
const (
	IssueMalformedTimestamp = "malformed_timestamp"
	IssueEndBeforeStart     = "end_before_start"
	IssueDuplicateIndex     = "duplicate_index"
	IssueOutOfOrder         = "index_out_of_order"
	IssueEmptyText          = "empty_text"
)

// Issue is a suspicious property of a cue. Issues are advisory; nothing in the
// pipeline drops a cue because of one.
type Issue struct {
	Index  int
	Kind   string
	Detail string
}

// Check inspects parsed cues for malformed or inverted time ranges, duplicate
// or descending indices, and empty caption text.
func Check(cues []Cue) []Issue {
	var issues []Issue
	seen := make(map[int]struct{}, len(cues))
	for i, cue := range cues {
		start, errStart := ParseTimestamp(cue.Start)
		end, errEnd := ParseTimestamp(cue.End)
		switch {
		case errStart != nil:
			issues = append(issues, Issue{Index: cue.Index, Kind: IssueMalformedTimestamp, Detail: errStart.Error()})
		case errEnd != nil:
			issues = append(issues, Issue{Index: cue.Index, Kind: IssueMalformedTimestamp, Detail: errEnd.Error()})
		case end < start:
			issues = append(issues, Issue{Index: cue.Index, Kind: IssueEndBeforeStart, Detail: fmt.Sprintf("%s > %s", cue.Start, cue.End)})
		}

		if _, dup := seen[cue.Index]; dup {
			issues = append(issues, Issue{Index: cue.Index, Kind: IssueDuplicateIndex, Detail: fmt.Sprintf("index %d repeats", cue.Index)})
		}
		seen[cue.Index] = struct{}{}

		if i > 0 && cue.Index < cues[i-1].Index {
			issues = append(issues, Issue{Index: cue.Index, Kind: IssueOutOfOrder, Detail: fmt.Sprintf("follows index %d", cues[i-1].Index)})
		}
		if isBlank(cue.Text) {
			issues = append(issues, Issue{Index: cue.Index, Kind: IssueEmptyText, Detail: "no caption text"})
		}
	}
	return issues
}
