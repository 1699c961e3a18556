// Package main hosts the srtslicer CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once per invocation, builds
// the structured logger, and hands the subtitle and audio paths to the
// internal slicer. Interactive prompts only appear when stdin is a terminal;
// scripted runs pass --audio and --subtitles instead.
package main
