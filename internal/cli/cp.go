package cli

import (
	"github.com/spf13/cobra"

	"github.com/volfs/volfs/internal/operation"
)

func newCpCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cp -V NAME [flags] FILE...",
		Short: "Copy files from the source directory into a volume",
		Long: `Copies the named files, resolved against the source directory, into the
volume. Paths are taken relative to the source directory and may not reach
outside it. Symbolic links are followed so the volume receives file content,
never dangling links.

With -t the files land under that directory inside the volume instead of the
volume root. With -R directories are copied recursively; without it the
helper refuses directories, exactly like cp.

Examples:
  volfs cp -V data notes.txt
  volfs cp -V data -R dist
  volfs cp -V data -t releases/v1 dist/app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, operation.Copy, opts, args)
		},
	}
}
