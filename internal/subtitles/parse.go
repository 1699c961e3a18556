package subtitles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// ErrInvalidIndex marks an entry whose index line is not an integer.
var ErrInvalidIndex = errors.New("invalid subtitle index")

const maxLineBytes = 1 << 20

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open subtitles: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads cue blocks separated by blank lines: an index line, a
// "START --> END" line, then caption lines up to the next blank line or EOF.
// A block whose index line has no leading integer is reported as a Diagnostic
// and skipped up to the next blank line.
// The returned error is reserved for read failures; malformed entries end up in
// Result.Diagnostics.
func Parse(r io.Reader) (Result, error) {
	lines := newLineReader(r)
	var res Result

	for {
		line, ok := lines.next()
		if !ok {
			break
		}
		if isBlank(line) {
			continue
		}

		index, ok := parseIndex(line)
		if !ok {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Line: lines.number, Text: line, Err: ErrInvalidIndex})
			lines.skipBlock()
			continue
		}

		cue := Cue{Index: index}
		timing, ok := lines.next()
		if !ok || isBlank(timing) {
			res.Cues = append(res.Cues, cue)
			continue
		}
		start, end := splitTiming(timing)
		cue.Start = strings.ReplaceAll(start, ",", ".")
		cue.End = strings.ReplaceAll(end, ",", ".")

		var text strings.Builder
		for {
			caption, ok := lines.next()
			if !ok || isBlank(caption) {
				break
			}
			text.WriteString(caption)
			text.WriteByte(' ')
		}
		cue.Text = SanitizeText(text.String())
		res.Cues = append(res.Cues, cue)
	}

	if err := lines.err(); err != nil {
		return res, fmt.Errorf("read subtitles: %w", err)
	}
	return res, nil
}

// splitTiming takes the text before the first space as the start time, skips
// the arrow separator (up to four characters ending in a space), and returns
// the rest of the line as the end time. Lines without the expected shape give
// partial or empty values.
func splitTiming(line string) (string, string) {
	start, rest, found := strings.Cut(line, " ")
	if !found {
		return start, ""
	}
	skip := 0
	for skip < len(rest) && skip < 4 {
		c := rest[skip]
		skip++
		if c == ' ' {
			break
		}
	}
	return start, rest[skip:]
}

// parseIndex reads the leading integer of an index line after optional
// whitespace; trailing characters are ignored, so "12abc" is 12.
func parseIndex(line string) (int, bool) {
	n, _, ok := leadingInt(strings.TrimLeft(line, " \t"))
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

type lineReader struct {
	scanner *bufio.Scanner
	number  int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{scanner: scanner}
}

func (l *lineReader) next() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	l.number++
	line := strings.TrimSuffix(l.scanner.Text(), "\r")
	if l.number == 1 {
		line = strings.TrimPrefix(line, "\ufeff")
	}
	return line, true
}

// skipBlock consumes lines up to and including the next blank line.
func (l *lineReader) skipBlock() {
	for {
		line, ok := l.next()
		if !ok || isBlank(line) {
			return
		}
	}
}

func (l *lineReader) err() error {
	return l.scanner.Err()
}
