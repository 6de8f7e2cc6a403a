package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/volfs/volfs/internal/constants"
)

// Stdio carries the streams wired into the runtime process.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Runner abstracts the container runtime binary so everything above it can
// be exercised without a runtime installed.
type Runner interface {
	// Installed verifies the runtime binary can be found.
	Installed() error

	// Ping verifies the runtime daemon answers.
	Ping(ctx context.Context) error

	// Run invokes the runtime with the given argument vector, streams
	// stdio through for the duration, and returns the process exit code.
	// A non-zero exit code is not an error here; err is reserved for
	// failing to run the binary at all.
	Run(ctx context.Context, args []string, stdio Stdio) (int, error)
}

// CLIRunner drives the container runtime through its command-line client.
type CLIRunner struct {
	// Binary is the runtime client, a name resolved via PATH or an
	// absolute path.
	Binary string
}

// NewCLIRunner returns a runner for the given runtime binary.
func NewCLIRunner(binary string) *CLIRunner {
	return &CLIRunner{Binary: binary}
}

func (r *CLIRunner) Installed() error {
	if _, err := exec.LookPath(r.Binary); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", r.Binary, err)
	}
	return nil
}

func (r *CLIRunner) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.PingTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Binary, "info")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%s info timed out after %v", r.Binary, constants.PingTimeout)
	}
	return err
}

func (r *CLIRunner) Run(ctx context.Context, args []string, stdio Stdio) (int, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	// The terminal already delivers SIGINT to the whole foreground
	// process group, so the runtime client receives it on its own.
	// Swallowing it here keeps this process alive to collect the
	// helper's exit code. SIGTERM is addressed to this process alone
	// and gets forwarded.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				if sig == syscall.SIGTERM {
					_ = cmd.Process.Signal(sig)
				}
			case <-done:
				return
			}
		}
	}()
	defer func() {
		signal.Stop(sigCh)
		close(done)
	}()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// A negative code means the client died to a signal without
		// exiting; there is no helper exit code to pass through.
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
	}
	return 0, err
}
