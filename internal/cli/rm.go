package cli

import (
	"github.com/spf13/cobra"

	"github.com/volfs/volfs/internal/operation"
)

func newRmCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm -V NAME [flags] FILE...",
		Short: "Remove files from a volume",
		Long: `Removes the named files from the volume. Paths are taken relative to the
volume root and may not reach outside it. A missing path fails the
invocation and the helper's message names the offending path.

With -R directories are removed recursively; without it the helper refuses
directories, exactly like rm.

Examples:
  volfs rm -V data old-notes.txt
  volfs rm -V data -R stale/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, operation.Remove, opts, args)
		},
	}
}
