package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgresolve/internal/deps"
	"imgresolve/internal/preflight"
	"imgresolve/internal/textutil"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			source := ctx.configPath
			if !ctx.configExists {
				source += " (not found, using defaults)"
			}
			fmt.Fprintf(out, "Config: %s\n", source)

			statuses := preflight.CheckTools(cfg)
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "OK"
				if !status.Available {
					state = "MISSING"
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					yesNo(!status.Optional),
					state,
					status.Description,
					status.Detail,
				})
			}
			fmt.Fprintln(out, textutil.RenderTable(
				[]string{"Tool", "Command", "Required", "Status", "Purpose", "Detail"},
				rows,
				nil,
			))
			return deps.MissingRequired(statuses)
		},
	}
}
