package cli

import (
	"claimguide/internal/format"
	"claimguide/internal/wizard"

	"github.com/spf13/cobra"
)

type stepRow struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Kind     string `json:"kind"`
}

func newStepsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the wizard steps in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]stepRow, 0, len(wizard.Steps))
			for i, s := range wizard.Steps {
				rows = append(rows, stepRow{
					Index:    i,
					ID:       string(s.ID),
					Title:    s.Title,
					Subtitle: s.Subtitle,
					Kind:     s.KindName(),
				})
			}
			return writeOut(cmd, app, rows)
		},
	}
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
