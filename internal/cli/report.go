package cli

import (
	"fmt"
	"time"

	"claimguide/internal/model"
	"claimguide/internal/report"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		outPath     string
		openBrowser bool
		asData      bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a readiness report",
		Long: `Generate the printable readiness report.

Session state lives only inside the interactive wizard, so this command
renders the empty-session report: every form item missing, every catalog
document outstanding, and the base mandatory attachments. It is mainly useful
as a blank checklist to print, and for scripting against the report shape
with --data-only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := report.Generate(model.ClaimForm{}, model.Checklist{}, time.Now())

			if asData {
				return writeOut(cmd, app, r)
			}

			doc := report.RenderHTML(r)
			if outPath != "" {
				if err := (report.FilePresenter{Path: outPath}).Present(doc); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), outPath)
			}
			if openBrowser {
				if err := (report.BrowserPresenter{}).Present(doc); err != nil {
					return err
				}
			}
			if outPath == "" && !openBrowser {
				fmt.Fprint(cmd.OutOrStdout(), doc)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the HTML report to this path")
	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the report in the default browser")
	cmd.Flags().BoolVar(&asData, "data-only", false, "Emit the structured report instead of HTML")

	return cmd
}
