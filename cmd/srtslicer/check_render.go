package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"srtslicer/internal/preflight"
)

type checkTone int

const (
	toneInfo checkTone = iota
	toneOK
	toneWarn
	toneFail
)

const ansiReset = "\x1b[0m"

var toneStyles = map[checkTone]struct {
	label string
	color string
}{
	toneInfo: {"INFO", "\x1b[34m"},
	toneOK:   {"OK", "\x1b[32m"},
	toneWarn: {"WARN", "\x1b[33m"},
	toneFail: {"ERROR", "\x1b[31m"},
}

func resultTone(r preflight.Result) checkTone {
	switch {
	case r.Passed:
		return toneOK
	case r.Optional:
		return toneWarn
	default:
		return toneFail
	}
}

// checkLine renders "  Label:   [TONE] detail", padded so the tones line up.
func checkLine(label string, tone checkTone, detail string, colorize bool) string {
	style := toneStyles[tone]
	line := fmt.Sprintf("  %-18s [%s]", label+":", style.label)
	if detail != "" {
		line += " " + detail
	}
	if colorize {
		line = style.color + line + ansiReset
	}
	return line
}

func checkHeading(title string) string {
	return title + "\n" + strings.Repeat("=", len(title))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
