package cli

import (
	"github.com/spf13/cobra"

	"github.com/volfs/volfs/internal/operation"
)

func newTermCmd(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "term -V NAME [flags]",
		Short: "Open an interactive shell inside a volume",
		Long: `Starts the helper image's default shell with the volume mounted read-write
at /volume and the source directory read-only at /host. The session gets a
pseudo-TTY when stdin and stdout are terminals; otherwise input is piped
through, so scripted sessions work too.

Exiting the shell ends the helper; nothing of it survives the session.

Examples:
  volfs term -V data
  echo 'ls /volume' | volfs term -V data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, operation.Terminal, opts, args)
		},
	}
}
