// Package cli wires the command surface: one subcommand per verb, shared
// flags, and the translation from parsed arguments to a validated Operation.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/volfs/volfs/internal/config"
	"github.com/volfs/volfs/internal/constants"
	"github.com/volfs/volfs/internal/docker"
	"github.com/volfs/volfs/internal/logging"
	"github.com/volfs/volfs/internal/operation"
	"github.com/volfs/volfs/internal/terminal"
)

var version = "0.1.0"

// App carries the seams the commands run against. The zero value uses the
// real container runtime and stderr diagnostics.
type App struct {
	// Runner overrides the container runtime. Nil means the CLI runner
	// for the configured runtime binary.
	Runner docker.Runner

	// LogWriter overrides the diagnostic stream. Nil means stderr.
	LogWriter io.Writer
}

// NewRootCmd builds the volfs command tree.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "volfs",
		Short: "Manage the contents of container-runtime named volumes",
		Long: `volfs copies files into, removes files from, lists, and opens a shell on
Docker named volumes. Each invocation runs exactly one short-lived helper
container with the volume mounted at ` + constants.VolumeMountPoint + ` and the source
directory mounted read-only at ` + constants.SourceMountPoint + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// ArbitraryArgs keeps cobra from rejecting an unknown verb before
		// the flags parse, so -h and --help short-circuit verb membership.
		// The unknown verb then lands in RunE below.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &operation.UsageError{Constraint: "missing command: expected one of cp, rm, ls, term"}
			}
			return &operation.UsageError{Constraint: fmt.Sprintf("unknown command %q", args[0])}
		},
	}

	opts.register(root.PersistentFlags())

	root.AddCommand(
		newCpCmd(app, opts),
		newRmCmd(app, opts),
		newLsCmd(app, opts),
		newTermCmd(app, opts),
		newVersionCmd(),
	)

	return root
}

// rootOptions holds every flag value. One instance is shared by the verb
// commands; each invocation parses exactly once.
type rootOptions struct {
	volume     string
	source     string
	target     string
	user       string
	recursive  bool
	verbose    bool
	quiet      bool
	configPath string
	dryRun     bool
}

func (o *rootOptions) register(flags *pflag.FlagSet) {
	flags.StringVarP(&o.volume, "volume", "V", "", "name of the target volume (required)")
	flags.StringVarP(&o.source, "source", "s", "", "host directory mounted read-only as the helper's working directory (default: current directory)")
	flags.StringVarP(&o.target, "target", "t", "", "directory under the volume root that cp writes into (default: volume root)")
	flags.StringVarP(&o.user, "user", "u", "", "user the helper runs as; files it creates in the volume are owned by this user (default: root, overridable in settings)")
	flags.BoolVarP(&o.recursive, "recursive", "R", false, "let cp and rm descend into directories")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "echo the constructed runtime command line")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "suppress diagnostics")
	flags.StringVar(&o.configPath, "config", "", "path to a settings file")
	flags.BoolVar(&o.dryRun, "dry-run", false, "print the runtime command line instead of running it")
}

// makeOperation materializes the Operation for one invocation, applying the
// defaults settings provide, and validates it.
func (o *rootOptions) makeOperation(verb operation.Verb, args []string, settings config.Settings) (operation.Operation, error) {
	if o.verbose && o.quiet {
		return operation.Operation{}, &operation.UsageError{Constraint: "flags -v and -q are mutually exclusive"}
	}
	verbosity := operation.Normal
	switch {
	case o.verbose:
		verbosity = operation.Verbose
	case o.quiet:
		verbosity = operation.Quiet
	}

	source := o.source
	if source == "" {
		wd, err := os.Getwd()
		if err != nil {
			return operation.Operation{}, &operation.UsageError{
				Constraint: fmt.Sprintf("cannot resolve the current directory, pass -s DIR: %v", err),
			}
		}
		source = wd
	}
	source, err := filepath.Abs(source)
	if err != nil {
		return operation.Operation{}, &operation.UsageError{
			Constraint: fmt.Sprintf("invalid source directory %q: %v", o.source, err),
		}
	}

	user := o.user
	if user == "" {
		user = settings.User
	}

	op := operation.Operation{
		Verb:          verb,
		Volume:        o.volume,
		SourceDir:     source,
		TargetSubpath: o.target,
		User:          user,
		Recursive:     o.recursive,
		Verbosity:     verbosity,
		Files:         args,
	}
	if err := op.Validate(); err != nil {
		return operation.Operation{}, err
	}
	return op, nil
}

// run is the pipeline every verb command goes through: resolve settings,
// materialize and validate the Operation, then hand it to the executor.
func (a *App) run(cmd *cobra.Command, verb operation.Verb, opts *rootOptions, args []string) error {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return &operation.UsageError{Constraint: err.Error()}
	}

	op, err := opts.makeOperation(verb, args, settings)
	if err != nil {
		return err
	}

	if opts.dryRun {
		name := constants.ContainerNamePrefix + uuid.NewString()
		tty := op.Verb == operation.Terminal && terminal.Interactive()
		cmdArgs := docker.BuildArgs(op, settings.Image, name, tty)
		fmt.Fprintln(cmd.OutOrStdout(), docker.CommandLine(settings.Runtime, cmdArgs))
		return nil
	}

	runner := a.Runner
	if runner == nil {
		runner = docker.NewCLIRunner(settings.Runtime)
	}

	executor := docker.NewExecutor(runner, settings, a.logger(op.Verbosity))
	return executor.Execute(cmd.Context(), op)
}

func (a *App) logger(v operation.Verbosity) zerolog.Logger {
	if a.LogWriter != nil {
		return logging.NewWithWriter(v, a.LogWriter, true)
	}
	return logging.New(v)
}

// ExitCode translates an Execute error into the documented process status:
// 0 on success, the usage code for contract violations, the infrastructure
// code when no helper could run, and the helper's own code otherwise.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	var opErr *docker.OperationError
	if errors.As(err, &opErr) {
		return opErr.ExitCode
	}
	var infraErr *docker.InfrastructureError
	if errors.As(err, &infraErr) {
		return constants.ExitInfrastructure
	}
	// Everything else surfaced before a helper existed: our own usage
	// errors plus cobra's flag and argument parse failures.
	return constants.ExitUsage
}
