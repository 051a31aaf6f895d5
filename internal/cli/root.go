package cli

import (
	"strings"

	"claimguide/internal/format"
	"claimguide/internal/tui"

	"github.com/spf13/cobra"
)

// App carries persistent flag state shared by all commands.
type App struct {
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "claimguide",
		Short:        "Guided assistant for preparing a long-term-care insurance claim",
		SilenceUsage: true,
		// Unmatched positionals fall through to RunE, which shows help
		// instead of an "unknown command" error.
		Args: cobra.ArbitraryArgs,
		Example: strings.TrimSpace(`
  # Start the interactive wizard
  claimguide

  # Print an (empty-session) readiness report to stdout
  claimguide report

  # Write the report to a file and open it in the browser
  claimguide report --out report.html --open

  # Scriptable metadata
  claimguide steps
  claimguide docs
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive wizard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run()
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", format.Names[0], "Output format ("+strings.Join(format.Names, "|")+")")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")

	cmd.AddCommand(newReportCmd(app))
	cmd.AddCommand(newStepsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}
