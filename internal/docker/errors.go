package docker

import (
	"fmt"

	"github.com/volfs/volfs/internal/operation"
)

// InfrastructureError means no helper process could do its work at all: the
// runtime binary is missing, the daemon is unreachable, or the run attempt
// failed before the helper command executed. It is fatal for the invocation
// and maps to its own exit code, disjoint from helper exit codes.
type InfrastructureError struct {
	Reason string
	Err    error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

// OperationError means the helper ran and exited non-zero. Its stderr was
// already streamed through to the user; ExitCode becomes the invocation's
// own exit status.
type OperationError struct {
	Verb     operation.Verb
	ExitCode int
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s helper exited with status %d", e.Verb, e.ExitCode)
}
