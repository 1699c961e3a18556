package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"srtslicer/internal/slicer"
	"srtslicer/internal/subtitles"
)

// newClipTable returns a rounded table whose listed 1-based columns are right
// aligned.
func newClipTable(header table.Row, rightAligned ...int) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, column := range rightAligned {
		configs = append(configs, table.ColumnConfig{
			Number:      column,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)
	return tw
}

func renderPlanTable(clips []slicer.Clip) string {
	tw := newClipTable(table.Row{"#", "Start", "End", "Start ms", "End ms", "File"}, 1, 4, 5)
	for _, clip := range clips {
		tw.AppendRow(table.Row{
			clip.Cue.Index,
			clip.Cue.Start,
			clip.Cue.End,
			clip.StartMillis,
			clip.EndMillis,
			clip.Name,
		})
	}
	return tw.Render()
}

func renderOutcomeTable(outcomes []slicer.Outcome) string {
	tw := newClipTable(table.Row{"#", "Start", "End", "Status", "Took", "File"}, 1, 5)
	for _, outcome := range outcomes {
		status := "ok"
		if outcome.Err != nil {
			status = "failed"
		}
		tw.AppendRow(table.Row{
			outcome.Clip.Cue.Index,
			outcome.Clip.Cue.Start,
			outcome.Clip.Cue.End,
			status,
			outcome.Elapsed.Round(10 * time.Millisecond).String(),
			outcome.Clip.Name,
		})
	}
	return tw.Render()
}

func renderFindings(clips []slicer.Clip, diags []subtitles.Diagnostic, issues []subtitles.Issue) []string {
	var lines []string
	for _, clip := range clips {
		if clip.Err != nil {
			lines = append(lines, fmt.Sprintf("error: cue %d will not be extracted: %v", clip.Cue.Index, clip.Err))
		}
	}
	for _, d := range diags {
		lines = append(lines, fmt.Sprintf("skipped line %d: %q is not a cue index", d.Line, d.Text))
	}
	for _, issue := range issues {
		lines = append(lines, fmt.Sprintf("warning: cue %d: %s (%s)", issue.Index, issue.Detail, issue.Kind))
	}
	return lines
}
