package cli

import (
	"github.com/spf13/cobra"

	"github.com/volfs/volfs/internal/operation"
)

func newLsCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ls -V NAME [flags] [FILE...]",
		Short: "List files inside a volume",
		Long: `Lists the named paths inside the volume, or the volume root when no paths
are given. Listings go to stdout untouched, so the output pipes cleanly;
diagnostics stay on stderr.

Examples:
  volfs ls -V data
  volfs ls -V data releases/v1
  volfs ls -q -V data | wc -l`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, operation.List, opts, args)
		},
	}
}
