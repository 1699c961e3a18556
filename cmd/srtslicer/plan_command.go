package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"srtslicer/internal/logging"
	"srtslicer/internal/slicer"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var inputs inputFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the clips split would create without running ffmpeg",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req, err := inputs.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			s, err := slicer.New(cfg, logging.NewNop())
			if err != nil {
				return err
			}
			prepared, err := s.Prepare(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Output directory: %s\n", prepared.OutputDir)
			if len(prepared.Clips) == 0 {
				fmt.Fprintln(out, "No subtitle cues found")
			} else {
				fmt.Fprintln(out, renderPlanTable(prepared.Clips))
			}
			for _, line := range renderFindings(prepared.Clips, prepared.Diagnostics, prepared.Issues) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "%d clips planned\n", len(prepared.Clips))
			return nil
		},
	}

	inputs.register(cmd)
	return cmd
}
