package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"srtslicer/internal/logging"
	"srtslicer/internal/services"
)

// commandContext is swapped in tests to run a helper process instead of ffmpeg.
var commandContext = exec.CommandContext

const outputTailBytes = 2048

// ClipRequest describes one extraction. Start and End are passed to ffmpeg as
// written in the subtitle file.
type ClipRequest struct {
	Input  string
	Start  string
	End    string
	Output string
}

// Options controls how ffmpeg is invoked.
type Options struct {
	Binary     string
	Overwrite  bool
	HideBanner bool
	// Timeout bounds a single extraction. Zero waits indefinitely.
	Timeout time.Duration
}

// CommandRunner executes name with args and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Extractor cuts clips out of a source file using stream copy.
type Extractor struct {
	opts   Options
	logger *slog.Logger
	run    CommandRunner
}

// NewExtractor constructs an extractor. An empty binary resolves to "ffmpeg" on PATH.
func NewExtractor(opts Options, logger *slog.Logger) *Extractor {
	opts.Binary = strings.TrimSpace(opts.Binary)
	if opts.Binary == "" {
		opts.Binary = "ffmpeg"
	}
	return &Extractor{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "ffmpeg"),
		run:    defaultCommandRunner,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (e *Extractor) WithCommandRunner(r CommandRunner) {
	if e != nil && r != nil {
		e.run = r
	}
}

// Binary returns the ffmpeg executable the extractor invokes.
func (e *Extractor) Binary() string {
	return e.opts.Binary
}

// BuildArgs returns the ffmpeg argument vector for req. The request part is
// always "-i <input> -ss <start> -to <end> -c copy <output>", preceded by the
// global flags selected in opts.
func BuildArgs(req ClipRequest, opts Options) []string {
	args := make([]string, 0, 14)
	if opts.HideBanner {
		args = append(args, "-hide_banner")
	}
	args = append(args, "-nostdin")
	if opts.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	return append(args,
		"-i", req.Input,
		"-ss", req.Start,
		"-to", req.End,
		"-c", "copy",
		req.Output,
	)
}

// Extract runs ffmpeg synchronously for req. A non-zero exit is returned as an
// error marked services.ErrExternalTool carrying the exit code and the tail of
// ffmpeg's output.
func (e *Extractor) Extract(ctx context.Context, req ClipRequest) error {
	if e == nil {
		return errors.New("ffmpeg extractor not initialized")
	}
	if strings.TrimSpace(req.Input) == "" {
		return services.Wrap(services.ErrValidation, "extract", "ffmpeg", "input path is required", nil)
	}
	if strings.TrimSpace(req.Output) == "" {
		return services.Wrap(services.ErrValidation, "extract", "ffmpeg", "output path is required", nil)
	}

	runCtx := ctx
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	args := BuildArgs(req, e.opts)
	logging.WithContext(ctx, e.logger).Debug("executing ffmpeg",
		logging.String("binary", e.opts.Binary),
		logging.Strings("args", args),
	)

	output, err := e.run(runCtx, e.opts.Binary, args...)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, "extract", "ffmpeg", fmt.Sprintf("exceeded %s", e.opts.Timeout), err)
	}

	message := fmt.Sprintf("exit code %d", ExitCode(err))
	if tail := outputTail(output); tail != "" {
		message += ": " + tail
	}
	return services.Wrap(services.ErrExternalTool, "extract", "ffmpeg", message, err)
}

// ExitCode extracts the process exit status from err, or -1 when err does not
// come from a process that ran to completion.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func outputTail(output []byte) string {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) > outputTailBytes {
		trimmed = trimmed[len(trimmed)-outputTailBytes:]
	}
	lines := strings.Split(string(trimmed), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := commandContext(ctx, name, args...) //nolint:gosec
	return cmd.CombinedOutput()
}
