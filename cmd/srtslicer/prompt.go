package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// interactiveInput reports whether prompts may be shown on r.
var interactiveInput = func(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type pathPrompt struct {
	value  *string
	flag   string
	prompt string
}

// resolvePaths fills empty path flags by prompting on stdin. Without a
// terminal the missing flag is reported instead.
func resolvePaths(cmd *cobra.Command, prompts ...pathPrompt) error {
	var reader *bufio.Reader
	for _, p := range prompts {
		if strings.TrimSpace(*p.value) != "" {
			continue
		}
		if !interactiveInput(cmd.InOrStdin()) {
			return fmt.Errorf("--%s is required when stdin is not a terminal", p.flag)
		}
		if reader == nil {
			reader = bufio.NewReader(cmd.InOrStdin())
		}
		value, err := promptLine(reader, cmd.OutOrStdout(), p.prompt)
		if err != nil {
			return fmt.Errorf("read %s: %w", p.flag, err)
		}
		if value == "" {
			return fmt.Errorf("no %s path entered", p.flag)
		}
		*p.value = value
	}
	return nil
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return cleanPromptPath(line), nil
}

// cleanPromptPath trims whitespace and one pair of surrounding quotes, which
// terminals add when a file is dropped onto the window.
func cleanPromptPath(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			value = value[1 : len(value)-1]
		}
	}
	return value
}
