package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path string, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SampleSRT is a three-cue subtitle file with one malformed index.
const SampleSRT = `1
00:00:00,500 --> 00:00:01,750
Hello?

oops
00:00:02,000 --> 00:00:03,000
skipped

2
00:00:02,000 --> 00:00:04,000
What: time* is it?

3
00:01:00,000 --> 00:01:02,500
"Bye"
`
