package cli

import (
	"claimguide/internal/report"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "List the document catalog",
		Long:  "List the fixed catalog of documents the checklist step tracks, with their keys and groups.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, report.Catalog)
		},
	}
}
