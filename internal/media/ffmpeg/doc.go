// Package ffmpeg runs stream-copy clip extractions with the ffmpeg command-line
// tool.
//
// Commands are built as argument vectors and executed without a shell, so
// paths containing quotes, dollar signs, or backticks reach ffmpeg verbatim.
// Extractor executes one request at a time and blocks until ffmpeg exits.
package ffmpeg
