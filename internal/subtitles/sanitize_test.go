package subtitles

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello?", "Hello"},
		{`He said: "Stop*"`, "He said Stop"},
		{"???", ""},
		{"no change here.", "no change here."},
		{"こんにちは？ (full-width kept)", "こんにちは？ (full-width kept)"},
		{`a/b\c<d>|e`, `a/b\c<d>|e`},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTextRemovesOnlyIllegalRunes(t *testing.T) {
	input := `x?y:z*w"ü漢字 !#$%&'()+,-.;=@[]^_` + "`{}~"
	got := SanitizeText(input)
	if strings.ContainsAny(got, IllegalFilenameChars) {
		t.Fatalf("illegal characters remain in %q", got)
	}
	var want strings.Builder
	for _, r := range input {
		if !strings.ContainsRune(IllegalFilenameChars, r) {
			want.WriteRune(r)
		}
	}
	if got != want.String() {
		t.Fatalf("SanitizeText(%q) = %q, want %q", input, got, want.String())
	}
}
