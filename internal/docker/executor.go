// Package docker turns a validated Operation into exactly one helper
// container run and classifies everything that can go wrong with it.
package docker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/volfs/volfs/internal/config"
	"github.com/volfs/volfs/internal/constants"
	"github.com/volfs/volfs/internal/operation"
	"github.com/volfs/volfs/internal/terminal"
	"github.com/volfs/volfs/internal/volume"
)

const (
	// runtimeFailureCode is what `docker run` exits with when the run
	// itself failed (bad mount, unpullable image) and no helper ran.
	runtimeFailureCode = 125

	// interruptCode is 128+SIGINT, the normal way an interactive shell
	// ends when the user hits Ctrl-C at the prompt.
	interruptCode = 130
)

// Executor runs Operations. Exactly one helper process is created per
// Execute call and it never outlives the call.
type Executor struct {
	runner   Runner
	settings config.Settings
	logger   zerolog.Logger

	// Stdio is wired through to the helper. Defaults to this process's
	// own streams.
	Stdio Stdio

	// TTY reports whether a terminal session may allocate a pseudo-TTY.
	TTY func() bool
}

// NewExecutor returns an Executor running helpers through runner with the
// given settings.
func NewExecutor(runner Runner, settings config.Settings, logger zerolog.Logger) *Executor {
	return &Executor{
		runner:   runner,
		settings: settings,
		logger:   logger,
		Stdio: Stdio{
			In:  os.Stdin,
			Out: os.Stdout,
			Err: os.Stderr,
		},
		TTY: terminal.Interactive,
	}
}

// Execute runs op to completion. It returns nil only when the helper exited
// zero; Terminal also treats an interrupted session as a normal ending.
func (e *Executor) Execute(ctx context.Context, op operation.Operation) error {
	// Preflight: both checks fail without any helper process existing.
	if err := e.runner.Installed(); err != nil {
		return &InfrastructureError{Reason: "container runtime is not installed", Err: err}
	}
	if err := e.runner.Ping(ctx); err != nil {
		return &InfrastructureError{Reason: "container runtime daemon is not reachable", Err: err}
	}

	name := constants.ContainerNamePrefix + uuid.NewString()
	args := BuildArgs(op, e.settings.Image, name, op.Verb == operation.Terminal && e.TTY())

	e.logger.Info().
		Str("verb", string(op.Verb)).
		Str("volume", op.Volume).
		Str("user", op.User).
		Msg("running helper container")
	e.logger.Debug().
		Str("command", CommandLine(e.settings.Runtime, args)).
		Msg("constructed runtime command line")

	stdio := e.Stdio
	if op.Verb != operation.Terminal {
		stdio.In = nil
	}

	code, err := e.runner.Run(ctx, args, stdio)
	if err != nil {
		return &InfrastructureError{Reason: "failed to run the helper", Err: err}
	}

	switch {
	case code == 0:
		return nil
	case code == runtimeFailureCode:
		return &InfrastructureError{Reason: fmt.Sprintf("container runtime could not start the helper (exit %d)", code)}
	case op.Verb == operation.Terminal && code == interruptCode:
		e.logger.Debug().Msg("terminal session interrupted, treating as normal exit")
		return nil
	default:
		return &OperationError{Verb: op.Verb, ExitCode: code}
	}
}

// BuildArgs constructs the complete runtime argument vector for op, minus
// the binary itself. Every value stays its own token; nothing is ever
// joined into a shell string, and "--" closes the helper's option list so
// a file operand can never be read as an option.
func BuildArgs(op operation.Operation, image, name string, tty bool) []string {
	args := []string{
		"run",
		"--rm",
		"--name", name,
		"-v", op.SourceDir + ":" + constants.SourceMountPoint + ":ro",
		"-v", op.Volume + ":" + constants.VolumeMountPoint,
		"-w", constants.SourceMountPoint,
		"--user", op.User,
	}

	switch op.Verb {
	case operation.Copy:
		args = append(args, image, "cp", "-L")
		if op.Recursive {
			args = append(args, "-R")
		}
		args = append(args, "--")
		args = append(args, op.Files...)
		args = append(args, volume.ResolveTarget(constants.VolumeMountPoint, op.TargetSubpath))

	case operation.Remove:
		args = append(args, image, "rm")
		if op.Recursive {
			args = append(args, "-r")
		}
		args = append(args, "--")
		args = append(args, volume.ResolveTargets(constants.VolumeMountPoint, op.Files)...)

	case operation.List:
		args = append(args, image, "ls", "--")
		if len(op.Files) == 0 {
			args = append(args, constants.VolumeMountPoint)
		} else {
			args = append(args, volume.ResolveTargets(constants.VolumeMountPoint, op.Files)...)
		}

	case operation.Terminal:
		// No command vector: the image's default shell takes over.
		if tty {
			args = append(args, "-it", image)
		} else {
			args = append(args, "-i", image)
		}
	}

	return args
}

// CommandLine renders the runtime invocation for humans. Display only; the
// process is always started from the argument vector.
func CommandLine(runtime string, args []string) string {
	return runtime + " " + strings.Join(args, " ")
}
